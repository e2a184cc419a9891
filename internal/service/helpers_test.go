package service

import (
	"testing"

	"portfolio-be/internal/config"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/repository/memory"
)

func newTestStore(t *testing.T) *contentstore.Store {
	t.Helper()
	return contentstore.New(memory.NewKeyValueRepository(), contentstore.NewAcknowledger(contentstore.AckTTL), logger.NewNopLogger())
}

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{
		Password:    "admin123",
		JWTSecret:   "test_secret",
		UserID:      "1",
		Login:       "charchitd",
		DisplayName: "Charchit Dhawan",
		AvatarURL:   "/images/hero_portrait.jpg",
	}
}

func nopLogger() logger.ILogger {
	return logger.NewNopLogger()
}
