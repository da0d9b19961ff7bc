// Package seed creates and populates the practice database. It is the
// only package that opens the database in write mode; everything else
// connects read-only. Generation is deterministic for a fixed seed, so
// rebuilding the database never invalidates stored fingerprints.
package seed

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/kokko-ng/sql-exercises/config"
)

// anchor is the fixed "today" all generated dates are relative to.
// A wall-clock anchor would change row content between rebuilds.
var anchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

type Seeder struct {
	cfg    config.SeedConfig
	rng    *rand.Rand
	logger *zap.Logger
}

func New(cfg config.SeedConfig, logger *zap.Logger) *Seeder {
	return &Seeder{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}
}

// Create builds a fresh practice database at path, replacing any
// existing file.
func (s *Seeder) Create(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove existing database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	employees, err := s.generateEmployees(tx)
	if err != nil {
		return fmt.Errorf("generate employees data: %w", err)
	}
	if err := s.generateEcommerce(tx); err != nil {
		return fmt.Errorf("generate ecommerce data: %w", err)
	}
	if err := s.generateAnalytics(tx); err != nil {
		return fmt.Errorf("generate analytics data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info(
		"practice database created",
		zap.String("path", path),
		zap.Int("employees", employees),
	)

	return nil
}

// dateBetween returns a deterministic date in [daysAgoMax, daysAgoMin]
// days before the anchor.
func (s *Seeder) dateBetween(daysAgoMax, daysAgoMin int) time.Time {
	days := daysAgoMin + s.rng.Intn(daysAgoMax-daysAgoMin+1)
	return anchor.AddDate(0, 0, -days)
}

func (s *Seeder) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

func (s *Seeder) between(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
