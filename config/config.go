package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// UnitEnvVar names the ambient default unit for interactive use. Batch
// flows always pass a unit explicitly and never consult it.
const UnitEnvVar = "SQL_EXERCISES_UNIT"

// UnknownUnit is the sentinel used when no unit was given anywhere.
const UnknownUnit = "unknown"

type PathsConfig struct {
	Database     string `json:"database"`
	Fingerprints string `json:"fingerprints"`
	Solutions    string `json:"solutions"`
}

func (c *PathsConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Fingerprints, validation.Required),
		validation.Field(&c.Solutions, validation.Required),
	)
}

const (
	minSeedRows = 1
	maxSeedRows = 100000
)

type SeedConfig struct {
	Seed        int64 `json:"seed"`
	Departments int   `json:"departments"`
	Employees   int   `json:"employees"`
	Customers   int   `json:"customers"`
	Products    int   `json:"products"`
	Orders      int   `json:"orders"`
	Projects    int   `json:"projects"`
	Users       int   `json:"users"`
	Sessions    int   `json:"sessions"`
	MetricDays  int   `json:"metricDays"`
}

func (c *SeedConfig) Validate() error {
	rowRule := []validation.Rule{
		validation.Required,
		validation.Min(minSeedRows),
		validation.Max(maxSeedRows),
	}
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Departments, rowRule...),
		validation.Field(&c.Employees, rowRule...),
		validation.Field(&c.Customers, rowRule...),
		validation.Field(&c.Products, rowRule...),
		validation.Field(&c.Orders, rowRule...),
		validation.Field(&c.Projects, rowRule...),
		validation.Field(&c.Users, rowRule...),
		validation.Field(&c.Sessions, rowRule...),
		validation.Field(&c.MetricDays, rowRule...),
	)
}

type Config struct {
	LoggerConfig zap.Config  `json:"logger"`
	Paths        PathsConfig `json:"paths"`
	Seed         SeedConfig  `json:"seed"`
}

func (c *Config) Validate() error {
	if err := c.Paths.Validate(); err != nil {
		return err
	}
	if err := c.Seed.Validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return err
		}
		return c.Validate()
	default:
		return fmt.Errorf("unknown configuration file extension: %s", ext)
	}
}

const defaultConfigFile = "config.json"

// LoadDefault reads config.json when present and otherwise falls back
// to built-in defaults, so the CLI works out of the box.
func (c *Config) LoadDefault() error {
	err := c.LoadFromFile(defaultConfigFile)
	if errors.Is(err, fs.ErrNotExist) {
		*c = Default()
		return nil
	}
	return err
}

// Default returns the configuration used when no config file exists.
// Seed values mirror the canonical practice dataset.
func Default() Config {
	logger := zap.NewProductionConfig()
	logger.Encoding = "console"
	logger.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	logger.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger.DisableStacktrace = true

	return Config{
		LoggerConfig: logger,
		Paths: PathsConfig{
			Database:     filepath.Join("data", "practice.db"),
			Fingerprints: filepath.Join("data", "fingerprints"),
			Solutions:    "exercises",
		},
		Seed: SeedConfig{
			Seed:        42,
			Departments: 8,
			Employees:   120,
			Customers:   200,
			Products:    150,
			Orders:      500,
			Projects:    25,
			Users:       300,
			Sessions:    800,
			MetricDays:  120,
		},
	}
}

// DefaultUnit resolves the ambient unit for interactive calls that did
// not pass one explicitly.
func DefaultUnit() string {
	if unit := os.Getenv(UnitEnvVar); unit != "" {
		return unit
	}
	return UnknownUnit
}
