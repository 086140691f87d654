package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, []string{"localhost:6379"}, cfg.RedisEndpoints)
	assert.Equal(t, 24*time.Hour, cfg.SRDCacheTTL)
	assert.Empty(t, cfg.OTelEndpoint)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SPELLWIZARD_PORT", "6000")
	t.Setenv("SPELLWIZARD_STORAGE", "sqlite")
	t.Setenv("SPELLWIZARD_SQLITE_PATH", "/tmp/spells.db")
	t.Setenv("SPELLWIZARD_REDIS_ENDPOINTS", "redis-a:6379,redis-b:6379")
	t.Setenv("SPELLWIZARD_LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/spells.db", cfg.SQLitePath)
	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, cfg.RedisEndpoints)
	assert.NotNil(t, newLogger(cfg))
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown storage", env: map[string]string{"SPELLWIZARD_STORAGE": "postgres"}, wantErr: "storage"},
		{name: "bad port", env: map[string]string{"SPELLWIZARD_PORT": "70000"}, wantErr: "port"},
		{name: "bad log level", env: map[string]string{"SPELLWIZARD_LOG_LEVEL": "loud"}, wantErr: "logLevel"},
		{name: "unparseable port", env: map[string]string{"SPELLWIZARD_PORT": "abc"}, wantErr: "environment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadServerConfigValidatesPortFlag(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		cmd := &cobra.Command{Use: "server"}
		cmd.Flags().Int("port", 50051, "")
		require.NoError(t, cmd.Flags().Parse(args))
		return cmd
	}

	cfg, err := loadServerConfig(newCmd("--port", "7000"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)

	for _, port := range []string{"0", "70000"} {
		_, err := loadServerConfig(newCmd("--port", port))
		assert.True(t, errors.IsInvalidArgument(err), "port %s: %v", port, err)
	}
}
