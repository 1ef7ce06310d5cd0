package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "llama3-70b-8192", cfg.Backends.GroqScoringModel)
	assert.Equal(t, "llama3-8b-8192", cfg.Backends.GroqNarrativeModel)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Backends.GroqBaseURL)
	assert.True(t, cfg.Features.KeywordBreakdown)
	assert.True(t, cfg.Features.Chat)
	assert.False(t, cfg.Report.ASCIIOnly)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("FEATURE_CHAT", "false")
	t.Setenv("REPORT_ASCII_ONLY", "true")
	t.Setenv("BACKEND_TIMEOUT", "90s")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Backends.GeminiModel)
	assert.False(t, cfg.Features.Chat)
	assert.True(t, cfg.Report.ASCIIOnly)
	assert.Equal(t, "1m30s", cfg.Backends.RequestTimeout.String())
}

func TestGetDatabaseDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "matcher_test")

	cfg := Load()

	dsn := cfg.GetDatabaseDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=matcher_test")
	assert.Contains(t, dsn, "sslmode=disable")
}
