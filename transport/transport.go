//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=../mocks/mock_transport.go -package=mocks
package transport

import (
	"context"
	"fmt"
	"net/http"

	"message-dispatch/models"

	"go.uber.org/zap"
)

// Transport delivers one outbound payload to the configured endpoint.
// Implementations perform exactly one attempt per call and never retry.
type Transport interface {
	Send(ctx context.Context, requestID string, payload models.OutboundPayload) error
	Mode() models.TransportMode
}

// New builds the transport strategy selected by cfg.TransportMode
func New(cfg models.Config, logger *zap.Logger) (Transport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.TransportMode {
	case models.TransportStandard, models.TransportOpaque:
		if cfg.TransportMode == models.TransportOpaque {
			logger.Warn("opaque transport selected: responses are not inspected and every completed call counts as delivered",
				zap.String("endpoint", cfg.EndpointURL))
		}
		return NewHTTPTransport(cfg.EndpointURL, cfg.TransportMode, &http.Client{}, logger), nil
	case models.TransportSimulated:
		return NewSimulatedTransport(cfg.SimulatedDelay, cfg.SimulateFailure, logger), nil
	}

	return nil, fmt.Errorf("unknown transport mode %q", cfg.TransportMode)
}
