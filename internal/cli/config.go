package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tinct/pkg/color"
)

// Cache backends selectable in config.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Archive backends selectable in config.
const (
	archiveBackendFile   = "file"
	archiveBackendMemory = "memory"
	archiveBackendMongo  = "mongo"
)

// Config holds the user configuration loaded from ~/.config/tinct/config.toml.
// Command-line flags override config values; config values override defaults.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Archive  ArchiveConfig  `toml:"archive"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig sets default search options for the color command.
type DefaultsConfig struct {
	// Strategy is the default coloring strategy name.
	Strategy string `toml:"strategy"`

	// MaxExpansions caps search work. Zero means unlimited.
	MaxExpansions int `toml:"max_expansions"`
}

// CacheConfig selects the coloring result cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "none".
	Backend string `toml:"backend"`

	// RedisAddr is the redis address for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// ArchiveConfig selects the run archive backend.
type ArchiveConfig struct {
	// Backend is one of "file", "memory", "mongo".
	Backend string `toml:"backend"`

	// MongoURI is the connection string for the mongo backend.
	MongoURI string `toml:"mongo_uri"`
}

// ServerConfig holds serve command defaults.
type ServerConfig struct {
	// Addr is the HTTP listen address.
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Strategy: color.NameBranchBound,
		},
		Cache:   CacheConfig{Backend: cacheBackendFile, RedisAddr: "localhost:6379"},
		Archive: ArchiveConfig{Backend: archiveBackendFile},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// configPath returns the config file location (~/.config/tinct/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Archive.Backend {
	case archiveBackendFile, archiveBackendMemory, archiveBackendMongo:
	default:
		return fmt.Errorf("unknown archive backend %q", c.Archive.Backend)
	}
	if _, err := color.Parse[string](c.Defaults.Strategy); err != nil {
		return err
	}
	return nil
}
