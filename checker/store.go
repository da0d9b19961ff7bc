package checker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ReferenceEntry is the stored identity of one exercise's correct result:
// the reference fingerprint plus non-revealing hints.
type ReferenceEntry struct {
	Fingerprint
	Hints []string `json:"hints"`
}

// ReferenceTable maps exercise id to its reference entry for one unit.
type ReferenceTable map[string]ReferenceEntry

// Store persists one reference table per unit as a JSON file.
type Store struct {
	dir    string
	logger *zap.Logger
}

func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Path returns the reference file location for a unit.
func (s *Store) Path(unit string) string {
	return filepath.Join(s.dir, unit+".json")
}

// Load reads a unit's reference table. A missing or unreadable file
// degrades to an empty table so checking of other units is unaffected.
func (s *Store) Load(unit string) ReferenceTable {
	data, err := os.ReadFile(s.Path(unit))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(
				"failed to read reference file",
				zap.String("unit", unit),
				zap.Error(err),
			)
		}
		return ReferenceTable{}
	}

	var table ReferenceTable
	if err := json.Unmarshal(data, &table); err != nil {
		s.logger.Warn(
			"corrupt reference file, treating unit as empty",
			zap.String("unit", unit),
			zap.Error(err),
		)
		return ReferenceTable{}
	}

	return table
}

// Save replaces a unit's reference table atomically: the table is written
// to a temporary file and renamed into place, so a crash mid-write cannot
// leave a partial file behind.
func (s *Store) Save(unit string, table ReferenceTable) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create fingerprint directory: %w", err)
	}

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reference table for %s: %w", unit, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, unit+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary reference file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write reference table for %s: %w", unit, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary reference file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path(unit)); err != nil {
		return fmt.Errorf("replace reference file for %s: %w", unit, err)
	}

	return nil
}
