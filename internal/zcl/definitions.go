package zcl

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// definitionFile is the layout of files in the definitions directory. JSON
// files are read with the same decoder since YAML is a superset of JSON.
type definitionFile struct {
	Clusters []ClusterDef `yaml:"clusters"`
}

// LoadDefinitions reads custom cluster definitions from every *.yaml, *.yml
// and *.json file in dir, in name order. A missing directory yields no
// definitions and no error.
func LoadDefinitions(dir string, logger *slog.Logger) ([]ClusterDef, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("no definitions directory", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read definitions dir: %w", err)
	}

	var defs []ClusterDef
	files := 0
	for _, e := range entries {
		if e.IsDir() || !slices.Contains([]string{".yaml", ".yml", ".json"}, filepath.Ext(e.Name())) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var df definitionFile
		if err := yaml.Unmarshal(data, &df); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		defs = append(defs, df.Clusters...)
		files++
		logger.Info("loaded definition file", "path", e.Name(), "clusters", len(df.Clusters))
	}
	logger.Info("definitions loaded", "files", files, "clusters", len(defs))
	return defs, nil
}
