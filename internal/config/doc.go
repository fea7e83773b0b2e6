// Package config loads bracecheck configuration from local and global YAML
// (or TOML) files with precedence rules. It is internal; CLI code maps flags
// and files into engine configuration.
package config
