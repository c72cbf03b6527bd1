package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// AllowedAnnounceHosts is the allowlist of hosts an announce_url
	// may point at. Submissions linking elsewhere are rejected.
	AllowedAnnounceHosts []string `json:"allowed_announce_hosts,omitempty"`

	// AliasFile is an optional YAML file of extra venue/exhibition
	// alias clusters, overlaid on the built-in tables at startup.
	AliasFile string `json:"alias_file,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is locked" errors).
	// 0 means use sql.DB default (unlimited). Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of type names to disable entirely.
	// All tools belonging to disabled types are excluded from registration.
	// Known types: "event". Unknown type names are logged as warnings.
	DisabledTypes []string `json:"disabled_types,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AllowedAnnounceHosts: []string{
			"x.com",
			"twitter.com",
			"instagram.com",
			"www.instagram.com",
			"threads.net",
			"www.threads.net",
		},
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tenjiban.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; the announce-host list
// is replaced wholesale when the overlay sets one (an allowlist must
// be able to shrink), while the disable lists are merged.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.AliasFile = overlay.AliasFile
	if result.AliasFile == "" {
		result.AliasFile = base.AliasFile
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.AllowedAnnounceHosts = cleanStringSlice(overlay.AllowedAnnounceHosts)
	if len(result.AllowedAnnounceHosts) == 0 {
		result.AllowedAnnounceHosts = cleanStringSlice(base.AllowedAnnounceHosts)
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

// AllowsAnnounceHost reports whether the given host is on the
// announce-URL allowlist. Comparison is case-insensitive.
func (c *Config) AllowsAnnounceHost(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range c.AllowedAnnounceHosts {
		if strings.ToLower(allowed) == host {
			return true
		}
	}
	return false
}

// cleanStringSlice trims whitespace and removes empties and duplicates.
func cleanStringSlice(values []string) []string {
	return mergeStringSlice(values, nil)
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
