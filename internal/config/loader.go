package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers should handle it according to whether the path was
// explicitly specified by the user: an explicit missing file is an
// error, a missing discovered file is normal.
var ErrConfigNotFound = errors.New("configuration file not found")

// PageConfig holds per-page overrides. Pages are keyed by input file
// name (or the page identifier embedded in the markup).
type PageConfig struct {
	// Categories overrides the global category filter for this page.
	Categories []string `yaml:"categories,omitempty"`

	// SkipEnrichment disables host enrichment for this page's issues.
	SkipEnrichment bool `yaml:"skipEnrichment,omitempty"`
}

// File represents the structure of the .framelytics configuration file.
type File struct {
	// Categories is the global category allow-list. CLI flags win over
	// this when both are given.
	Categories []string `yaml:"categories,omitempty"`

	// Parallel enables concurrent checker execution by default.
	Parallel bool `yaml:"parallel,omitempty"`

	// Pages maps page identifiers to their overrides.
	Pages map[string]PageConfig `yaml:"pages,omitempty"`
}

// LoadConfigFile loads the YAML configuration from a file. If the file
// does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	if cf.Pages == nil {
		cf.Pages = make(map[string]PageConfig)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following
// order:
//  1. If configPath is specified, use it directly
//  2. .framelytics in the current directory
//  3. .framelytics in the user's home directory
//  4. framelytics/config.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Merge applies file-level settings to the config. CLI-set values keep
// priority: the file only fills fields the flags left at their zero
// values.
func (c *Config) Merge(cf *File) {
	if cf == nil {
		return
	}
	c.PageConfigs = cf
	if len(c.Categories) == 0 {
		c.Categories = cf.Categories
	}
	if !c.Parallel {
		c.Parallel = cf.Parallel
	}
}
