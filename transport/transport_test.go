package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"message-dispatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func samplePayload() models.OutboundPayload {
	return models.NewOutboundPayload("  Hello  ", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		models.PayloadMetadata{Source: "web_app", Format: "text"})
}

func TestHTTPTransport_Standard(t *testing.T) {
	t.Run("should post JSON and succeed on 2xx", func(t *testing.T) {
		req := require.New(t)

		var gotContentType, gotRequestID string
		var got models.OutboundPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			gotRequestID = r.Header.Get("X-Request-ID")
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		tr := NewHTTPTransport(srv.URL, models.TransportStandard, srv.Client(), nil)
		err := tr.Send(context.Background(), "req-1", samplePayload())

		req.NoError(err)
		req.Equal("application/json", gotContentType)
		req.Equal("req-1", gotRequestID)
		req.Equal("Hello", got.Content)
		req.Equal("2026-01-02T03:04:05.000Z", got.Timestamp)
		req.Equal("web_app", got.Metadata.Source)
		req.Equal("text", got.Metadata.Format)
	})

	t.Run("should fail on non-2xx with the status attached", func(t *testing.T) {
		req := require.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		tr := NewHTTPTransport(srv.URL, models.TransportStandard, srv.Client(), nil)
		err := tr.Send(context.Background(), "req-2", samplePayload())

		var txErr *models.TransmissionError
		req.ErrorAs(err, &txErr)
		req.Equal(http.StatusInternalServerError, txErr.StatusCode)
		req.Equal("response", txErr.Stage)
		req.Contains(err.Error(), "boom")
	})

	t.Run("should fail when the endpoint is unreachable", func(t *testing.T) {
		req := require.New(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		tr := NewHTTPTransport(url, models.TransportStandard, &http.Client{}, nil)
		err := tr.Send(context.Background(), "req-3", samplePayload())

		var txErr *models.TransmissionError
		req.ErrorAs(err, &txErr)
		req.Equal("request", txErr.Stage)
	})

	t.Run("should honour the context deadline", func(t *testing.T) {
		req := require.New(t)
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		tr := NewHTTPTransport(srv.URL, models.TransportStandard, srv.Client(), nil)
		err := tr.Send(ctx, "req-4", samplePayload())

		req.Error(err)
		req.True(errors.Is(err, context.DeadlineExceeded))
	})
}

func TestHTTPTransport_Opaque(t *testing.T) {
	t.Run("should treat any completed call as success", func(t *testing.T) {
		req := require.New(t)
		var gotContentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		tr := NewHTTPTransport(srv.URL, models.TransportOpaque, srv.Client(), nil)
		err := tr.Send(context.Background(), "req-5", samplePayload())

		req.NoError(err)
		req.Equal("text/plain", gotContentType)
		req.Equal(models.TransportOpaque, tr.Mode())
	})

	t.Run("should still fail when the call itself errors", func(t *testing.T) {
		req := require.New(t)
		tr := NewHTTPTransport("http://127.0.0.1:0/unreachable", models.TransportOpaque, &http.Client{}, nil)
		err := tr.Send(context.Background(), "req-6", samplePayload())

		var txErr *models.TransmissionError
		req.ErrorAs(err, &txErr)
	})
}

func TestSimulatedTransport(t *testing.T) {
	t.Run("should succeed after the delay", func(t *testing.T) {
		tr := NewSimulatedTransport(10*time.Millisecond, false, nil)
		start := time.Now()
		err := tr.Send(context.Background(), "sim-1", samplePayload())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("should fail when configured to", func(t *testing.T) {
		tr := NewSimulatedTransport(time.Millisecond, true, nil)
		err := tr.Send(context.Background(), "sim-2", samplePayload())
		assert.ErrorIs(t, err, errSimulatedFailure)
	})

	t.Run("should stop early when the context is cancelled", func(t *testing.T) {
		tr := NewSimulatedTransport(time.Hour, false, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := tr.Send(ctx, "sim-3", samplePayload())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.Config
		want    models.TransportMode
		wantErr bool
	}{
		{name: "standard", cfg: models.Config{TransportMode: models.TransportStandard, EndpointURL: "http://x"}, want: models.TransportStandard},
		{name: "opaque", cfg: models.Config{TransportMode: models.TransportOpaque, EndpointURL: "http://x"}, want: models.TransportOpaque},
		{name: "simulated", cfg: models.Config{TransportMode: models.TransportSimulated}, want: models.TransportSimulated},
		{name: "unknown", cfg: models.Config{TransportMode: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Mode())
		})
	}
}
