package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, ":9091", cfg.Server.MetricsAddr)
	require.Equal(t, "development", cfg.Server.Env)
	require.Equal(t, "./data", cfg.Data.Dir)
	require.Equal(t, "claude-opus-4-5", cfg.Anthropic.Model)
	require.EqualValues(t, 8192, cfg.Anthropic.MaxTokens)
	require.Equal(t, 2*time.Minute, cfg.Anthropic.Timeout)
	require.Equal(t, "local", cfg.Archive.Provider)
	require.False(t, cfg.IsProduction())
}

func TestLoadLegacyEnvNames(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-key")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_USERNAME", "admin")
	t.Setenv("APP_PASSWORD_HASH", "JDJiJDEy")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	require.Equal(t, "sk-test-key", cfg.Anthropic.APIKey)
	require.Equal(t, "env-secret", cfg.Session.Secret)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Equal(t, "JDJiJDEy", cfg.Admin.PasswordHash)
	require.True(t, cfg.IsProduction())
}

func TestLoadPrefixedEnvNames(t *testing.T) {
	t.Setenv("LEXAI_SERVER_ADDR", ":9000")
	t.Setenv("LEXAI_ARCHIVE_PROVIDER", "s3")
	t.Setenv("LEXAI_ARCHIVE_BUCKET", "lexai-contracts")

	cfg := Load()

	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, "s3", cfg.Archive.Provider)
	require.Equal(t, "lexai-contracts", cfg.Archive.Bucket)
}

func TestCORSOrigins(t *testing.T) {
	var cfg Config
	cfg.Server.CORSOrigins = "http://localhost:3000, https://lexai.example.com ,"
	require.Equal(t,
		[]string{"http://localhost:3000", "https://lexai.example.com"},
		cfg.CORSOrigins())
}

func TestIsProductionCaseInsensitive(t *testing.T) {
	var cfg Config
	cfg.Server.Env = "Production"
	require.True(t, cfg.IsProduction())
	cfg.Server.Env = "staging"
	require.False(t, cfg.IsProduction())
}
