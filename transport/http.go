package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"message-dispatch/models"

	"go.uber.org/zap"
)

const (
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain"

	// maxErrorBody bounds how much of a failed response is kept for the error message
	maxErrorBody = 512
)

// HTTPTransport POSTs the JSON-encoded payload to a fixed endpoint
type HTTPTransport struct {
	endpoint string
	mode     models.TransportMode
	client   *http.Client
	logger   *zap.Logger
}

func NewHTTPTransport(endpoint string, mode models.TransportMode, client *http.Client, logger *zap.Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTransport{
		endpoint: endpoint,
		mode:     mode,
		client:   client,
		logger:   logger,
	}
}

func (t *HTTPTransport) Mode() models.TransportMode {
	return t.mode
}

// Send performs a single POST. The deadline comes from ctx.
func (t *HTTPTransport) Send(ctx context.Context, requestID string, payload models.OutboundPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &models.TransmissionError{Stage: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return &models.TransmissionError{Stage: "request", Err: err}
	}

	// Opaque mode mirrors a no-cors browser request, which only allows simple content types
	if t.mode == models.TransportOpaque {
		req.Header.Set("Content-Type", contentTypePlain)
	} else {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	t.logger.Debug("posting payload",
		zap.String("request_id", requestID),
		zap.String("endpoint", t.endpoint),
		zap.String("mode", string(t.mode)),
		zap.Int("bytes", len(body)))

	resp, err := t.client.Do(req)
	if err != nil {
		return &models.TransmissionError{Stage: "request", Err: err}
	}
	defer resp.Body.Close()

	if t.mode == models.TransportOpaque {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &models.TransmissionError{
			Stage:      "response",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s: %s", resp.Status, bytes.TrimSpace(snippet)),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
