package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yshiga/tenjiban/internal/venue"
)

// AliasConfig holds extra alias clusters loaded from a YAML file.
// Each entry is one cluster: a list of variants naming the same venue
// or exhibition program.
type AliasConfig struct {
	Venues      [][]string `yaml:"venues"`
	Exhibitions [][]string `yaml:"exhibitions"`
}

// LoadAliases reads extra alias clusters from path. A missing file is
// not an error; it yields an empty AliasConfig.
func LoadAliases(path string) (*AliasConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &AliasConfig{}, nil
		}
		return nil, err
	}

	aliases := &AliasConfig{}
	if err := yaml.Unmarshal(data, aliases); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}
	return aliases, nil
}

// BuildVenueTable constructs the immutable classification table from
// the built-in clusters plus any configured alias file. Call once at
// process start; the resulting table is shared read-only.
func BuildVenueTable(cfg *Config) (*venue.Table, error) {
	table := venue.DefaultTable()
	if cfg == nil || cfg.AliasFile == "" {
		return table, nil
	}

	aliases, err := LoadAliases(cfg.AliasFile)
	if err != nil {
		return nil, err
	}
	if len(aliases.Venues) == 0 && len(aliases.Exhibitions) == 0 {
		return table, nil
	}
	return table.Extend(aliases.Venues, aliases.Exhibitions), nil
}
