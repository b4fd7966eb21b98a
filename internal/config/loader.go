package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. EXT2MIME_MIME_STRICT.
	EnvPrefix = "EXT2MIME"
	// EnvConfigFile names the variable holding the optional TOML file path.
	EnvConfigFile = EnvPrefix + "_CONFIG"
)

var (
	ErrInvalidLevel  = errors.New("invalid logging level")
	ErrInvalidFormat = errors.New("invalid logging format")
)

var log = logrus.New()

// SetLogger replaces the package-level logger.
func SetLogger(l *logrus.Logger) { log = l }

// Load reads configuration from defaults, an optional TOML file and
// EXT2MIME_* environment variables, in increasing precedence. An empty
// configFile skips the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		if !fileExists(configFile) {
			return nil, fmt.Errorf("configuration file not found: %s", configFile)
		}
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	applyDefaults(&conf)

	if err := Validate(&conf); err != nil {
		return nil, err
	}

	if configFile != "" {
		log.Debugf("Configuration loaded from %s", configFile)
	}
	return &conf, nil
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	conf := &Config{Mime: MimeConfig{HostDB: true}}
	applyDefaults(conf)
	return conf
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
	v.SetDefault("logging.compress", false)

	v.SetDefault("mime.strict", false)
	v.SetDefault("mime.host_db", true)
	v.SetDefault("mime.types_files", []string{})
}

func applyDefaults(conf *Config) {
	if conf.Logging.Level == "" {
		conf.Logging.Level = "warn"
	}
	if conf.Logging.Format == "" {
		conf.Logging.Format = "text"
	}
	if conf.Logging.MaxSize == 0 {
		conf.Logging.MaxSize = 10
	}
	if conf.Logging.MaxBackups == 0 {
		conf.Logging.MaxBackups = 3
	}
	if conf.Logging.MaxAge == 0 {
		conf.Logging.MaxAge = 28
	}
	if conf.Mime.TypesFiles == nil {
		conf.Mime.TypesFiles = []string{}
	}
}

// Validate checks values that would otherwise fail late.
func Validate(c *Config) error {
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Logging.Format)
	}
	for _, path := range c.Mime.TypesFiles {
		if !fileExists(path) {
			return fmt.Errorf("mime.types_files: %s does not exist", path)
		}
	}
	return nil
}

// TOML encodes the configuration in the layout Load reads.
func (c *Config) TOML() (string, error) {
	b, err := toml.Marshal(*c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(b), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
