// Package cmd provides the sqlex command-line interface: seeding the
// practice database, generating reference fingerprints, checking
// candidate queries and running batch tests.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/config"
	"github.com/kokko-ng/sql-exercises/present"
)

var (
	configPath  string
	plainOutput bool
)

// errVerdictFailed signals a failed check whose verdict was already
// rendered; Execute maps it to a non-zero exit without printing again.
var errVerdictFailed = errors.New("check failed")

var rootCmd = &cobra.Command{
	Use:   "sqlex",
	Short: "SQL exercise platform: seed, fingerprint and check learner queries",
	Long: `sqlex seeds a sample database, builds reference fingerprints from
trusted solution queries, and validates learner-submitted queries against
them without ever revealing the reference answers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and maps errors to a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errVerdictFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "force plain-text output")
}

func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := cfg.LoadDefault(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setup() (config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := cfg.LoggerConfig.Build()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func presenter() present.Presenter {
	return present.New(os.Stdout, plainOutput)
}

// resolveUnit falls back to the ambient unit for interactive commands
// when none was passed explicitly.
func resolveUnit(flag string) string {
	if flag != "" {
		return flag
	}
	return config.DefaultUnit()
}
