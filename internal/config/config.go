// Package config loads the cache's (sets, entriesPerSet, policy) shape from
// a human-editable file and merges it with defaults and caller overrides,
// the way a deployable command-line tool loads its configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Policy names recognized in a config file or on the command line.
const (
	PolicyLRU      = "lru"
	PolicyMRU      = "mru"
	PolicySmallest = "smallest"
)

// ErrInvalidConfig is returned for any problem that makes a Config
// unusable: a bad file, a malformed value, or an out-of-range field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config mirrors the shape a Cache is built with, plus the policy name used
// to pick an InvalidatorFactory for it.
type Config struct {
	Sets          int    `json:"sets" yaml:"sets"`
	EntriesPerSet int    `json:"entriesPerSet" yaml:"entriesPerSet"`
	Policy        string `json:"policy" yaml:"policy"`
}

// Default returns the built-in configuration used when no file and no
// override supplies a value.
func Default() Config {
	return Config{Sets: 16, EntriesPerSet: 4, Policy: PolicyLRU}
}

// Overrides carries CLI-supplied values. A zero field means "not set"; Sets
// and EntriesPerSet of 0 and an empty Policy are therefore indistinguishable
// from absent, so an override cannot set a dimension to 0; a negative value
// is applied and then rejected by validation.
type Overrides struct {
	Sets          int
	EntriesPerSet int
	Policy        string
}

// Load resolves a Config from, in increasing precedence: Default(), the
// file at path (if path is non-empty; a missing file is not an error, a
// malformed one is), then override. The file format is chosen by
// extension: ".yaml"/".yml" parses as YAML, anything else is treated as
// JSON-with-comments (JSONC) and run through hujson first. The result is
// validated before it is returned.
func Load(path string, override Overrides) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if fileCfg != nil {
			cfg = merge(cfg, *fileCfg)
		}
	}

	cfg = merge(cfg, Config{
		Sets:          override.Sets,
		EntriesPerSet: override.EntriesPerSet,
		Policy:        override.Policy,
	})

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	var cfg Config

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s as YAML: %v", ErrInvalidConfig, path, err)
		}
	default:
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %s as JSONC: %v", ErrInvalidConfig, path, err)
		}
		if err := json.Unmarshal(standardized, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s as JSON: %v", ErrInvalidConfig, path, err)
		}
	}

	return &cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Sets != 0 {
		base.Sets = overlay.Sets
	}
	if overlay.EntriesPerSet != 0 {
		base.EntriesPerSet = overlay.EntriesPerSet
	}
	if overlay.Policy != "" {
		base.Policy = overlay.Policy
	}
	return base
}

func validate(cfg Config) error {
	if cfg.Sets < 1 {
		return fmt.Errorf("%w: sets must be at least 1, got %d", ErrInvalidConfig, cfg.Sets)
	}
	if cfg.EntriesPerSet < 1 {
		return fmt.Errorf("%w: entriesPerSet must be at least 1, got %d", ErrInvalidConfig, cfg.EntriesPerSet)
	}
	switch cfg.Policy {
	case PolicyLRU, PolicyMRU, PolicySmallest:
	default:
		return fmt.Errorf("%w: policy must be one of lru, mru, smallest, got %q", ErrInvalidConfig, cfg.Policy)
	}
	return nil
}
