// Package solutions loads per-unit reference solution manifests: YAML
// files mapping exercise ids to trusted SQL text and optional hint lists.
package solutions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoManifest reports a unit without a solutions file.
var ErrNoManifest = errors.New("no solutions manifest")

// Unit holds one unit's reference solutions and hints.
type Unit struct {
	ID        string              `yaml:"-"`
	Exercises map[string]string   `yaml:"exercises"`
	Hints     map[string][]string `yaml:"hints"`
}

// ExerciseIDs returns the unit's exercise ids in sorted order, which is
// the deterministic order every batch flow iterates in.
func (u Unit) ExerciseIDs() []string {
	ids := make([]string, 0, len(u.Exercises))
	for id := range u.Exercises {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dir is a directory of unit manifests, one <unit>.yaml per unit.
type Dir struct {
	path string
}

func NewDir(path string) Dir {
	return Dir{path: path}
}

// List returns every discoverable unit id, sorted.
func (d Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read solutions directory: %w", err)
	}

	var units []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			units = append(units, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(units)
	return units, nil
}

// Load parses one unit's manifest. Blank queries are dropped so a
// placeholder entry never produces a reference fingerprint.
func (d Dir) Load(unit string) (Unit, error) {
	path := filepath.Join(d.path, unit+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Unit{}, fmt.Errorf("%w for unit %s", ErrNoManifest, unit)
		}
		return Unit{}, fmt.Errorf("read solutions manifest %s: %w", path, err)
	}

	u := Unit{ID: unit}
	if err := yaml.Unmarshal(data, &u); err != nil {
		return Unit{}, fmt.Errorf("parse solutions manifest %s: %w", path, err)
	}

	for id, query := range u.Exercises {
		if strings.TrimSpace(query) == "" {
			delete(u.Exercises, id)
		}
	}
	if len(u.Exercises) == 0 {
		return Unit{}, fmt.Errorf("solutions manifest for unit %s contains no exercises", unit)
	}

	return u, nil
}
