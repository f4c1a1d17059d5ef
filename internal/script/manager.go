//go:build !no_scripts

package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInvalidID is returned for script IDs that are not plain file stems.
var ErrInvalidID = errors.New("script: invalid id")

// validID checks that a script ID is safe to use as a filename component.
func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}

// Manager reads scripts from a directory.
type Manager struct {
	dir    string
	logger *slog.Logger
}

func NewManager(dir string, logger *slog.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scripts dir: %w", err)
	}
	return &Manager{dir: dir, logger: logger}, nil
}

// List returns every readable .lua file in the directory ordered by ID.
func (m *Manager) List() ([]*Script, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read scripts dir: %w", err)
	}

	var scripts []*Script
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".lua") {
			continue
		}
		s, err := m.parseFile(filepath.Join(m.dir, e.Name()))
		if err != nil {
			m.logger.Warn("skipping script", "file", e.Name(), "err", err)
			continue
		}
		scripts = append(scripts, s)
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].ID < scripts[j].ID })
	return scripts, nil
}

// Get returns a single script by ID (filename stem).
func (m *Manager) Get(id string) (*Script, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return m.parseFile(filepath.Join(m.dir, id+".lua"))
}

// parseFile reads a script. Without a metadata header the script is
// enabled and named after its file.
func (m *Manager) parseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filepath.Base(path), ".lua")
	s := &Script{
		ID:       id,
		Meta:     Meta{Name: id, Enabled: true},
		Code:     string(data),
		FilePath: path,
	}

	first, rest, _ := strings.Cut(s.Code, "\n")
	if header, ok := strings.CutPrefix(strings.TrimSpace(first), "-- {"); ok {
		if err := json.Unmarshal([]byte("{"+header), &s.Meta); err != nil {
			return nil, fmt.Errorf("metadata: %w", err)
		}
		if s.Meta.Name == "" {
			s.Meta.Name = id
		}
		// Keep the line so Lua error positions match the file.
		s.Code = "\n" + rest
	}
	return s, nil
}
