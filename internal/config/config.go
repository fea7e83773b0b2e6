package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when no config file exists at the searched locations.
var ErrNoConfig = errors.New("no config file")

// FileConfig is the on-disk configuration shape for bracecheck. Unset fields
// stay nil so callers can tell "absent" from "zero".
type FileConfig struct {
	StatementMode   *string `yaml:"statement_mode" toml:"statement_mode"`
	Severity        *string `yaml:"severity" toml:"severity"`
	Include         *string `yaml:"include" toml:"include"`
	Exclude         *string `yaml:"exclude" toml:"exclude"`
	MaxBytes        *int64  `yaml:"max_bytes" toml:"max_bytes"`
	Enable          *string `yaml:"enable" toml:"enable"`
	Disable         *string `yaml:"disable" toml:"disable"`
	Threads         *int    `yaml:"threads" toml:"threads"`
	NoColor         *bool   `yaml:"no_color" toml:"no_color"`
	DefaultExcludes *bool   `yaml:"default_excludes" toml:"default_excludes"`
	// Language names the chroma lexer used for files no lexer claims.
	Language *string `yaml:"language" toml:"language"`
	FailOn   *string `yaml:"fail_on" toml:"fail_on"`
}

var localNames = []string{
	".bracecheck.yml", ".bracecheck.yaml", ".bracecheck.toml",
	"bracecheck.yml", "bracecheck.yaml", "bracecheck.toml",
}

// LoadFile reads a config file. Files ending in .toml are decoded as TOML,
// everything else as YAML.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), &cfg); err != nil {
			return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in root. Dotfiles win over
// plain names, YAML over TOML.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range localNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// LoadGlobal loads the global config file from the XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, ErrNoConfig
	}
	for _, name := range []string{"config.yml", "config.yaml", "config.toml"} {
		p := filepath.Join(base, "bracecheck", name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// GetStatementMode returns the configured mode or "" when unset.
func (fc FileConfig) GetStatementMode() string {
	if fc.StatementMode == nil {
		return ""
	}
	return *fc.StatementMode
}

// GetSeverity returns the configured severity or "" when unset.
func (fc FileConfig) GetSeverity() string {
	if fc.Severity == nil {
		return ""
	}
	return *fc.Severity
}
