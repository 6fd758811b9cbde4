package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("should fill defaults", func(t *testing.T) {
		req := require.New(t)
		cfg := Config{EndpointURL: "https://example.com/hook"}

		req.NoError(cfg.Validate())
		req.Equal(TransportStandard, cfg.TransportMode)
		req.Equal(10*time.Second, cfg.Timeout)
		req.Equal("web_app", cfg.Source)
		req.Equal("text", cfg.Format)
		req.Equal("info", cfg.LogLevel)
	})

	t.Run("should normalise the transport mode", func(t *testing.T) {
		cfg := Config{EndpointURL: "https://example.com", TransportMode: " OPAQUE "}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, TransportOpaque, cfg.TransportMode)
	})

	t.Run("should not need an endpoint in simulated mode", func(t *testing.T) {
		cfg := Config{TransportMode: TransportSimulated}
		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "missing endpoint", cfg: Config{}, field: "endpoint_url"},
		{name: "missing endpoint in opaque mode", cfg: Config{TransportMode: TransportOpaque}, field: "endpoint_url"},
		{name: "malformed endpoint", cfg: Config{EndpointURL: "not a url"}, field: "EndpointURL"},
		{name: "unknown mode", cfg: Config{EndpointURL: "https://example.com", TransportMode: "smoke-signal"}, field: "TransportMode"},
		{name: "unknown log level", cfg: Config{EndpointURL: "https://example.com", LogLevel: "loud"}, field: "LogLevel"},
	}
	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewOutboundPayload(t *testing.T) {
	local := time.FixedZone("CEST", 2*60*60)
	now := time.Date(2026, 10, 17, 11, 0, 0, 123_000_000, local)

	p := NewOutboundPayload("\n  Hello there  \t", now, PayloadMetadata{Source: "web_app", Format: "text"})

	assert.Equal(t, "2026-10-17T09:00:00.123Z", p.Timestamp)
	assert.Equal(t, "Hello there", p.Content)
	assert.Equal(t, PayloadMetadata{Source: "web_app", Format: "text"}, p.Metadata)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}

func TestErrors(t *testing.T) {
	vErr := &ValidationError{Field: "draft", Message: "empty"}
	assert.ErrorIs(t, vErr, ErrEmptyDraft)

	txErr := &TransmissionError{Stage: "response", StatusCode: 500, Err: ErrInvalidTransition}
	assert.Contains(t, txErr.Error(), "status 500")
	assert.ErrorIs(t, txErr, ErrInvalidTransition)
}
