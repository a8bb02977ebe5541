package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(100*1024), cfg.Server.MaxBodyBytes)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "./store", cfg.Storage.Dir)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFile_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=4000\nSTORAGE_DRIVER=file\nSTORAGE_DIR=/tmp/store\nSERVER_READ_TIMEOUT=5s\nLOG_FORMAT=pretty\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/store", cfg.Storage.Dir)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "pretty", cfg.Log.Format)
}

func TestLoadFile_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4000\n"), 0o644))
	t.Setenv("PORT", "5000")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Server.Port)
}

func TestLoad_UsesEnvFileVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_DIR=/srv/data\n"), 0o644))
	t.Setenv("ENV_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.Data.Dir)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "3000", MaxBodyBytes: 1024},
			Storage: StorageConfig{Driver: StorageMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid memory config", mutate: func(c *Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "PORT is required"},
		{name: "zero body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: "MAX_BODY_BYTES"},
		{name: "unknown gin mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "GIN_MODE"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "postgres" }, wantErr: "STORAGE_DRIVER must be one of"},
		{name: "file driver without dir", mutate: func(c *Config) { c.Storage.Driver = StorageFile }, wantErr: "STORAGE_DIR is required"},
		{name: "file driver with dir", mutate: func(c *Config) { c.Storage.Driver = StorageFile; c.Storage.Dir = "/tmp" }},
		{name: "default dirs with file driver", mutate: func(c *Config) {
			c.Storage.Driver = StorageFile
			c.Storage.Dir = "./store"
			c.Data.Dir = "./data"
		}},
		{name: "store inside data dir", mutate: func(c *Config) {
			c.Storage.Driver = StorageFile
			c.Storage.Dir = "./data/store"
			c.Data.Dir = "./data"
		}, wantErr: "must not be inside DATA_DIR"},
		{name: "store is data dir", mutate: func(c *Config) {
			c.Storage.Driver = StorageFile
			c.Storage.Dir = "data/"
			c.Data.Dir = "./data"
		}, wantErr: "must not be inside DATA_DIR"},
		{name: "sibling with shared prefix", mutate: func(c *Config) {
			c.Storage.Driver = StorageFile
			c.Storage.Dir = "./data-store"
			c.Data.Dir = "./data"
		}},
		{name: "memory driver ignores dirs", mutate: func(c *Config) {
			c.Storage.Dir = "./data/store"
			c.Data.Dir = "./data"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
