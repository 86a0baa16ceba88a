package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/version-stamp/internal/release"
)

// Config holds the release descriptor as stored next to the build scripts.
type Config struct {
	// Major is the first numeric version component.
	Major int `yaml:"major"`
	// Minor is the second numeric version component.
	Minor int `yaml:"minor"`
	// Micro is the third numeric version component.
	Micro int `yaml:"micro"`
	// Kind is the release stage: alpha, beta, rc or release.
	Kind string `yaml:"kind"`
	// Serial numbers pre-releases within a stage.
	Serial int `yaml:"serial"`
}

const (
	// DefaultConfigFilename is the default filename for the release descriptor.
	DefaultConfigFilename = "version-stamp-release.yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeComponent is returned when a numeric component is below zero.
	errNegativeComponent = errors.New("version components must be non-negative")
	// errUnknownKind is returned when the release kind is not one of the four stages.
	errUnknownKind = errors.New("release kind must be one of: alpha, beta, rc, release")
)

// Load reads a release descriptor from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read release descriptor: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal release descriptor: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes a release descriptor to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal release descriptor: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write release descriptor: %w", err)
	}

	return nil
}

// Validate checks numeric components and the release kind.
// Unlike the library's contract panic, malformed file input is a
// recoverable error reported to the operator.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Major < 0 || cfg.Minor < 0 || cfg.Micro < 0 || cfg.Serial < 0 {
		return errNegativeComponent
	}

	if _, ok := release.ParseKind(cfg.Kind); !ok {
		return fmt.Errorf("%w, got %q", errUnknownKind, cfg.Kind)
	}

	return nil
}

// Descriptor converts the validated configuration into a release descriptor.
func (cfg *Config) Descriptor() release.Descriptor {
	kind, _ := release.ParseKind(cfg.Kind)

	return release.Descriptor{
		Major:  cfg.Major,
		Minor:  cfg.Minor,
		Micro:  cfg.Micro,
		Kind:   kind,
		Serial: cfg.Serial,
	}
}
