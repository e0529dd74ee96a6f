// Package config provides application configuration management for the
// indexing and ranking engine: corpus/data directory resolution, default
// query behavior, and caching preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/corpuslab/vsmsearch/internal/constants"
)

// Config holds application configuration settings.
type Config struct {
	// CorpusDir is the directory of *.txt documents to index.
	CorpusDir string `yaml:"corpus_dir"`

	// DataDir is the directory the persisted snapshot is read from / written to.
	DataDir string `yaml:"data_dir"`

	// SynonymsPath optionally names an external synonym thesaurus file.
	// Neither the index build nor snapshot loading reads it, so the
	// published synonym map stays empty whatever this is set to.
	SynonymsPath string `yaml:"synonyms_path,omitempty"`

	// DefaultK is the result count used when a caller doesn't specify one.
	DefaultK int `yaml:"default_k"`

	// CacheEnabled determines whether search result caching is active.
	CacheEnabled bool `yaml:"cache_enabled"`
}

// DefaultConfig returns a Config with sensible defaults, rooted at the
// current working directory.
func DefaultConfig() *Config {
	return &Config{
		CorpusDir:    "corpus",
		DataDir:      "data",
		DefaultK:     constants.DefaultK,
		CacheEnabled: true,
	}
}

// LoadFile reads YAML overrides from path on top of DefaultConfig. A
// missing file is not an error; callers that want a config file to be
// mandatory should os.Stat first.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.CorpusDir == "" {
		return fmt.Errorf("CorpusDir cannot be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DataDir cannot be empty")
	}
	if c.DefaultK < constants.MinK || c.DefaultK > constants.MaxK {
		return fmt.Errorf("DefaultK must be in [%d, %d], got %d", constants.MinK, constants.MaxK, c.DefaultK)
	}
	return nil
}

// ResolveDataDir returns the configured DataDir if it exists, otherwise
// falls back to a handful of conventional locations, mirroring the
// fallback-search pattern used for locating on-disk resources.
func (c *Config) ResolveDataDir() string {
	if info, err := os.Stat(c.DataDir); err == nil && info.IsDir() {
		return c.DataDir
	}

	fallbacks := []string{
		"data",
		filepath.Join(".", "data"),
		filepath.Join("var", "vsmsearch", "data"),
	}
	for _, p := range fallbacks {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return c.DataDir
}
