package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADDR", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("MAX_ROOMS", "")
	t.Setenv("READ_TIMEOUT", "")
	t.Setenv("WRITE_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.SecretKey)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 1000, cfg.MaxRooms)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADDR", ":9090")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("MAX_ROOMS", "5")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("WRITE_TIMEOUT", "3s")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.MaxRooms)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.WriteTimeout)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_ROOMS", "lots")
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()

	assert.Equal(t, 1000, cfg.MaxRooms)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
