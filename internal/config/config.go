// Package config loads aliquot settings from a .aliquot.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory when
// no explicit path is given.
const FileName = ".aliquot.yaml"

// Supported values for Bits and Format.
var (
	SupportedBits    = []int{16, 32, 64, 128}
	SupportedFormats = []string{"text", "json"}
)

// AliquotConfig holds the run settings. Keys absent from a file keep
// their DefaultConfig values.
type AliquotConfig struct {
	// MaxSteps bounds the length of a computed sequence.
	MaxSteps int `yaml:"max_steps"`

	// MaxValue is the decimal value ceiling. Empty means the maximum
	// of the selected width; it is parsed once the width is known.
	MaxValue string `yaml:"max_value"`

	// CacheSize is the total cache budget, shared evenly by workers.
	CacheSize int `yaml:"cache_size"`

	Threads int    `yaml:"threads"`
	Bits    int    `yaml:"bits"`
	Format  string `yaml:"format"`

	// Path is the file the config was read from, if any.
	Path string `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *AliquotConfig {
	return &AliquotConfig{
		MaxSteps:  1_000_000,
		CacheSize: 1_000_000,
		Threads:   1,
		Bits:      64,
		Format:    "text",
	}
}

// Load reads the config at path on top of DefaultConfig. With an
// empty path it reads FileName from the working directory, and a
// missing file there is not an error.
func Load(path string) (*AliquotConfig, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency. Errors name the config
// file when the settings were read from one.
func (c *AliquotConfig) Validate() error {
	var problem string
	switch {
	case c.Threads < 1:
		problem = fmt.Sprintf("threads must be at least 1, got %d", c.Threads)
	case c.MaxSteps < 1:
		problem = fmt.Sprintf("max_steps must be at least 1, got %d", c.MaxSteps)
	case c.CacheSize < 0:
		problem = fmt.Sprintf("cache_size must not be negative, got %d", c.CacheSize)
	case !slices.Contains(SupportedBits, c.Bits):
		problem = fmt.Sprintf("bits must be 16, 32, 64, or 128, got %d", c.Bits)
	case !slices.Contains(SupportedFormats, c.Format):
		problem = fmt.Sprintf("invalid format %q: must be 'text' or 'json'", c.Format)
	default:
		return nil
	}
	if c.Path != "" {
		return fmt.Errorf("config file %s: %s", c.Path, problem)
	}
	return errors.New(problem)
}
