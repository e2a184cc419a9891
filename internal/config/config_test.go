package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_BASE_URL", "http://localhost:3000")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, "charchitd", cfg.Admin.Login)
	assert.Equal(t, "http://localhost:3000/admin/callback", cfg.OAuth.RedirectURL)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Empty(t, cfg.Events.NatsURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("GO_ENV", "production")
	t.Setenv("GITHUB_REDIRECT_URL", "https://example.com/admin/callback")

	cfg := Load()

	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "https://example.com/admin/callback", cfg.OAuth.RedirectURL)
	assert.True(t, cfg.IsProduction())
}
