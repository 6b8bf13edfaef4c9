package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TAMS_BASE_URL", "")
	t.Setenv("TAMS_TIMEOUT_SECONDS", "")
	t.Setenv("AGENTS_SOURCE", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.TAMS.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.TAMS.Timeout)
	assert.Equal(t, AgentSourceAPI, cfg.Agents.Source)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TAMS_BASE_URL", "https://tams.internal:9443")
	t.Setenv("TAMS_TIMEOUT_SECONDS", "5")
	t.Setenv("AGENTS_SOURCE", "fixture")
	t.Setenv("SESSION_IDLE_TTL_MINUTES", "not-a-number")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://tams.internal:9443", cfg.TAMS.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.TAMS.Timeout)
	assert.Equal(t, AgentSourceFixture, cfg.Agents.Source)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
}

func TestLoad_RejectsUnknownAgentSource(t *testing.T) {
	t.Setenv("TAMS_BASE_URL", "")
	t.Setenv("AGENTS_SOURCE", "redis")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENTS_SOURCE")
}

func TestLoad_RejectsBadBaseURL(t *testing.T) {
	t.Setenv("TAMS_BASE_URL", "localhost")
	t.Setenv("AGENTS_SOURCE", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAMS_BASE_URL")
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("TAMS_BASE_URL", "")
	t.Setenv("AGENTS_SOURCE", "")
	t.Setenv("TAMS_TIMEOUT_SECONDS", "0")

	_, err := Load()

	require.Error(t, err)
}
