package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := DefaultConfig()
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[defaults]
strategy = "progressive"
max_expansions = 5000

[cache]
backend = "redis"
redis_addr = "cache.internal:6379"

[archive]
backend = "mongo"
mongo_uri = "mongodb://db.internal:27017"

[server]
addr = ":9090"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Defaults.Strategy != "progressive" {
		t.Errorf("Strategy = %q, want %q", cfg.Defaults.Strategy, "progressive")
	}
	if cfg.Defaults.MaxExpansions != 5000 {
		t.Errorf("MaxExpansions = %d, want 5000", cfg.Defaults.MaxExpansions)
	}
	if cfg.Cache.Backend != cacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, cacheBackendRedis)
	}
	if cfg.Archive.MongoURI != "mongodb://db.internal:27017" {
		t.Errorf("MongoURI = %q", cfg.Archive.MongoURI)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":7070"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":7070")
	}
	if cfg.Defaults.Strategy != DefaultConfig().Defaults.Strategy {
		t.Errorf("Strategy = %q, want default", cfg.Defaults.Strategy)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad cache backend", "[cache]\nbackend = \"memcached\"\n"},
		{"bad archive backend", "[archive]\nbackend = \"dynamo\"\n"},
		{"bad strategy", "[defaults]\nstrategy = \"greedy\"\n"},
		{"malformed toml", "[defaults\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() should fail")
			}
		})
	}
}
