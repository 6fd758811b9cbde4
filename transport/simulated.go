package transport

import (
	"context"
	"errors"
	"time"

	"message-dispatch/models"

	"go.uber.org/zap"
)

var errSimulatedFailure = errors.New("simulated delivery failure")

// SimulatedTransport stands in for a real endpoint during demos and tests
type SimulatedTransport struct {
	delay  time.Duration
	fail   bool
	logger *zap.Logger
}

func NewSimulatedTransport(delay time.Duration, fail bool, logger *zap.Logger) *SimulatedTransport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedTransport{delay: delay, fail: fail, logger: logger}
}

func (t *SimulatedTransport) Mode() models.TransportMode {
	return models.TransportSimulated
}

func (t *SimulatedTransport) Send(ctx context.Context, requestID string, payload models.OutboundPayload) error {
	t.logger.Debug("simulating delivery",
		zap.String("request_id", requestID),
		zap.Duration("delay", t.delay),
		zap.Int("content_length", len(payload.Content)))

	timer := time.NewTimer(t.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return &models.TransmissionError{Stage: "request", Err: ctx.Err()}
	case <-timer.C:
	}

	if t.fail {
		return &models.TransmissionError{Stage: "response", Err: errSimulatedFailure}
	}
	return nil
}
