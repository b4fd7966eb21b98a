// Package config contains the configuration types and loading logic.
package config

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `toml:"level" mapstructure:"level"`
	Format     string `toml:"format" mapstructure:"format"`
	File       string `toml:"file" mapstructure:"file"`
	MaxSize    int    `toml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `toml:"max_age" mapstructure:"max_age"`
	Compress   bool   `toml:"compress" mapstructure:"compress"`
}

// MimeConfig controls how extensions are resolved.
type MimeConfig struct {
	// Strict limits lookups to registered types.
	Strict bool `toml:"strict" mapstructure:"strict"`
	// HostDB enables the operating system MIME database.
	HostDB bool `toml:"host_db" mapstructure:"host_db"`
	// TypesFiles are extra mime.types files, later files win.
	TypesFiles []string `toml:"types_files" mapstructure:"types_files"`
}

// Config is the top-level configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" mapstructure:"logging"`
	Mime    MimeConfig    `toml:"mime" mapstructure:"mime"`
}
