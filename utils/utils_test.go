package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"message-dispatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should layer the file under environment overrides", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "dispatch.yaml")
		req.NoError(os.WriteFile(path, []byte(`
endpoint_url: https://example.com/from-file
transport_mode: opaque
timeout: 3s
source: kiosk
`), 0o600))

		t.Setenv("DISPATCH_TIMEOUT", "7s")
		t.Setenv("DISPATCH_FORMAT", "markdown")

		cfg, err := LoadConfig(path, true)
		req.NoError(err)
		req.Equal("https://example.com/from-file", cfg.EndpointURL)
		req.Equal(models.TransportOpaque, cfg.TransportMode)
		req.Equal(7*time.Second, cfg.Timeout)
		req.Equal("kiosk", cfg.Source)
		req.Equal("markdown", cfg.Format)
		req.NoError(cfg.Validate())
	})

	t.Run("should fall back to defaults when the optional file is absent", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultConfig.Timeout, cfg.Timeout)
		assert.Equal(t, models.DefaultConfig.TransportMode, cfg.TransportMode)
	})

	t.Run("should fail when a required file is absent", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("should report malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: [nope"), 0o600))
		_, err := LoadConfig(path, true)
		assert.Error(t, err)
	})
}

func TestMarshalConfig(t *testing.T) {
	out, err := MarshalConfig(models.Config{EndpointURL: "https://example.com", Timeout: 10 * time.Second})
	require.NoError(t, err)
	assert.Contains(t, string(out), "endpoint_url: https://example.com")
	assert.Contains(t, string(out), "timeout: 10s")
}

func TestNewLogger(t *testing.T) {
	t.Run("should discard when no sink is allowed", func(t *testing.T) {
		logger, err := NewLogger("info", "", false)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(0))
	})

	t.Run("should write to the given file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "dispatch.log")
		logger, err := NewLogger("debug", path, false)
		require.NoError(t, err)
		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello")
	})

	t.Run("should reject unknown levels", func(t *testing.T) {
		_, err := NewLogger("chatty", "", true)
		assert.Error(t, err)
	})
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "250 ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5 sec", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "1.2K", FormatNumber(1200))
	assert.Equal(t, "héllo...", TruncateString("héllo wörld", 8))
	assert.Equal(t, "short", TruncateString("short", 8))
	assert.Equal(t, "a b c", SingleLine(" a\n b\t\tc "))
	assert.True(t, ParseBoolFlag("Y"))
	assert.False(t, ParseBoolFlag("n"))
}
