package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrdraft/draft-bot-discord/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_APP_ID", "12345")
	t.Setenv("DISCORD_OWNER_ID", "67890")
	t.Setenv("DEBUG_DUMP_DIR", "/var/dumps")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Discord.Token)
	assert.Equal(t, "12345", cfg.Discord.AppID)
	assert.Equal(t, "67890", cfg.Discord.OwnerID)
	assert.Equal(t, "https://netrunnerdb.com/api/2.0/public", cfg.NRDB.BaseURL)
	assert.Equal(t, "/var/dumps", cfg.Debug.DumpDir)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_APP_ID", "12345")
	t.Setenv("DEBUG_DUMP_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Debug.DumpDir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "12345")

	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_APP_ID", "")

	_, err = config.Load()
	require.Error(t, err)
}
