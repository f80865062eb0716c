// Package config loads the scorch.toml project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

const (
	FileName     = "scorch.toml"
	DefaultEntry = "examples/test.sr"
)

type Config struct {
	Project ProjectConfig `toml:"project"`
	Parser  ParserConfig  `toml:"parser"`
}

type ProjectConfig struct {
	Name string `toml:"name"`
	// Entry is the source parsed when no file is given, relative to the
	// directory holding scorch.toml.
	Entry string `toml:"entry"`
	// Requires is a semver constraint on the scorch version, e.g. ">= 0.1".
	Requires string `toml:"requires"`
}

type ParserConfig struct {
	PrecedenceClimbing bool `toml:"precedence_climbing"`
}

func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Entry: DefaultEntry,
		},
	}
}

// FindAndLoad looks for scorch.toml in startDir and its parents. Without one
// it returns the default configuration and an empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := FindConfigFile(startDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}

	config, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	return config, path, nil
}

func FindConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads a configuration file. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return nil, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if config.Project.Entry == "" {
		config.Project.Entry = DefaultEntry
	}

	return config, nil
}

// EntryPath resolves the entry file against the directory of configPath.
func (c *Config) EntryPath(configPath string) string {
	if configPath == "" || filepath.IsAbs(c.Project.Entry) {
		return c.Project.Entry
	}

	return filepath.Join(filepath.Dir(configPath), c.Project.Entry)
}

// VersionError is returned by Check when the running version does not meet
// the project's requirement.
type VersionError struct {
	Requires string
	Version  string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("project requires scorch %s, running %s", e.Requires, e.Version)
}

// Check verifies version against the project's requirement. An empty
// requirement accepts any version.
func (c *Config) Check(version string) error {
	if strings.TrimSpace(c.Project.Requires) == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Project.Requires)
	if err != nil {
		return fmt.Errorf("config: requires %q: %w", c.Project.Requires, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("config: version %q: %w", version, err)
	}

	if !constraint.Check(v) {
		return &VersionError{Requires: c.Project.Requires, Version: version}
	}

	return nil
}
