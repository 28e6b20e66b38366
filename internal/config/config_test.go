package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "0 9 * * *", cfg.ReminderCron)
	assert.False(t, cfg.RemindersEnabled())
}

func TestNewConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
}

func TestNewConfigTokenTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL_DAYS", "1")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)

	t.Setenv("TOKEN_TTL_DAYS", "zero")
	_, err = NewConfig()
	require.Error(t, err)
}

func TestRemindersEnabled(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.RemindersEnabled())
}
