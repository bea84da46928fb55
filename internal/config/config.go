// Package config loads the YAML service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// SourceConfig declares one scripture edition to register at startup.
type SourceConfig struct {
	// Key is the registry key the edition is served under. Defaults to
	// the edition's own key when empty.
	Key string `yaml:"key,omitempty"`

	// Driver selects the loader: "sqlite" or "osis".
	Driver string `yaml:"driver"`

	// Path is the edition file on disk.
	Path string `yaml:"path"`
}

// LexiconConfig declares one lexicon archive to load at startup.
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// TLSCert and TLSKey enable TLS when both are set.
	TLSCert string `yaml:"tls_cert,omitempty"`
	TLSKey  string `yaml:"tls_key,omitempty"`
}

// CacheConfig holds the value cache settings.
type CacheConfig struct {
	// MaxSize is the entry cap. Zero disables caching.
	MaxSize int `yaml:"max_size"`

	// TTL expires entries after this duration. Zero means no expiry.
	TTL time.Duration `yaml:"ttl"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Cache    CacheConfig     `yaml:"cache"`
	Log      LogConfig       `yaml:"log"`
	Sources  []SourceConfig  `yaml:"sources,omitempty"`
	Lexicons []LexiconConfig `yaml:"lexicons,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8741,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			MaxSize: 4096,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML configuration file. Fields the file omits keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewParse("config", path, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.NewValidation("server.port", "must be between 0 and 65535")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.NewValidation("server", "tls_cert and tls_key must be set together")
	}
	if c.Cache.MaxSize < 0 {
		return errors.NewValidation("cache.max_size", "must not be negative")
	}
	for i, s := range c.Sources {
		switch s.Driver {
		case "sqlite", "osis":
		default:
			return errors.NewValidation("sources", "unknown driver "+s.Driver)
		}
		if s.Path == "" {
			return errors.NewValidation("sources", fmt.Sprintf("source %d has no path", i))
		}
	}
	return nil
}
