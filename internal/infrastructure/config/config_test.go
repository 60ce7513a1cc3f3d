package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "bizmaster-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "bizmaster_users.db", cfg.Database.Path)
	assert.Equal(t, 8*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 10000.0, cfg.Seed.StartingCash)
	assert.Equal(t, 50.0, cfg.Seed.StartingPrice)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	assert.NotEmpty(t, cfg.HTTP.CORSAllowMethods)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("development fills in a fallback secret", func(t *testing.T) {
		cfg := base()

		require.NoError(t, cfg.validate())
		assert.NotEmpty(t, cfg.JWT.Secret)
	})

	t.Run("production requires a strong secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Admin.Password = "something-else"

		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects the default admin password", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"

		assert.Error(t, cfg.validate())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		cfg := base()
		cfg.Log.Level = "verbose"

		assert.Error(t, cfg.validate())
	})
}

func TestEnvHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
