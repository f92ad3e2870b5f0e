package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Player 1", cfg.PlayerOne)
	assert.Equal(t, "Player 2", cfg.PlayerTwo)
	assert.Empty(t, cfg.Script)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "console", File: "spellduel.log"}, cfg.Logging)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPELLDUEL_PLAYER_ONE", "Alice")
	t.Setenv("SPELLDUEL_PLAYER_TWO", "Bob")
	t.Setenv("SPELLDUEL_SCRIPT", "duel.yaml")
	t.Setenv("SPELLDUEL_TELEMETRY", "false")
	t.Setenv("SPELLDUEL_LOG_LEVEL", "debug")
	t.Setenv("SPELLDUEL_LOG_FORMAT", "json")
	t.Setenv("SPELLDUEL_LOG_FILE", "/tmp/duel.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Alice", cfg.PlayerOne)
	assert.Equal(t, "Bob", cfg.PlayerTwo)
	assert.Equal(t, "duel.yaml", cfg.Script)
	assert.False(t, cfg.Telemetry)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", File: "/tmp/duel.log"}, cfg.Logging)
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("SPELLDUEL_TELEMETRY", "maybe")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	valid := Config{
		PlayerOne: "Alice",
		PlayerTwo: "Bob",
		Logging:   LoggingConfig{Level: "warn", Format: "json"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty player one", mutate: func(c *Config) { c.PlayerOne = "  " }, wantErr: "player one name is empty"},
		{name: "empty player two", mutate: func(c *Config) { c.PlayerTwo = "" }, wantErr: "player two name is empty"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: `unknown log level "trace"`},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: `unknown log format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
