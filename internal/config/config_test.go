package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "RENDER_DPI", "MAX_OCR_CONCURRENT", "EXTRACT_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(50*1024*1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 200, cfg.Processing.RenderDPI)
	assert.Equal(t, 500, cfg.Processing.MaxPDFPages)
	assert.Equal(t, int64(2), cfg.Processing.MaxOCRConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.Processing.ExtractTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RENDER_DPI", "300")
	t.Setenv("MAX_OCR_CONCURRENT", "4")
	t.Setenv("EXTRACT_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 300, cfg.Processing.RenderDPI)
	assert.Equal(t, int64(4), cfg.Processing.MaxOCRConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Processing.ExtractTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RENDER_DPI", "very high")
	t.Setenv("EXTRACT_TIMEOUT", "whenever")

	cfg := Load()

	assert.Equal(t, 200, cfg.Processing.RenderDPI)
	assert.Equal(t, 5*time.Minute, cfg.Processing.ExtractTimeout)
}
