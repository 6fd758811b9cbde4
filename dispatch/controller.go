// Package dispatch holds the compose → confirm → send → animate workflow.
//
// The Controller is not safe for concurrent use: a single owner (the TUI
// update loop or the send command) drives every transition. Only the
// transmission itself runs elsewhere, through Attempt.Run, and it reads
// nothing but the immutable payload.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"message-dispatch/models"
	"message-dispatch/transport"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const failureMessage = "Failed to send message."

// Controller owns the draft and the dispatch state
type Controller struct {
	state     State
	draft     string
	inFlight  *Attempt
	transport transport.Transport
	meta      models.PayloadMetadata
	timeout   time.Duration
	now       func() time.Time
	newID     func() string
	observer  func(Event)
	logger    *zap.Logger
}

type Option func(*Controller)

func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithMetadata(meta models.PayloadMetadata) Option {
	return func(c *Controller) { c.meta = meta }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock replaces time.Now for payload timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithObserver registers a hook that receives every emitted event
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) { c.observer = fn }
}

func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

func NewController(t transport.Transport, opts ...Option) *Controller {
	c := &Controller{
		state:     StateComposing,
		transport: t,
		meta: models.PayloadMetadata{
			Source: models.DefaultConfig.Source,
			Format: models.DefaultConfig.Format,
		},
		timeout: models.DefaultConfig.Timeout,
		now:     time.Now,
		newID:   uuid.NewString,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewControllerFromConfig wires metadata and timeout from cfg
func NewControllerFromConfig(cfg models.Config, t transport.Transport, opts ...Option) *Controller {
	base := []Option{
		WithMetadata(models.PayloadMetadata{Source: cfg.Source, Format: cfg.Format}),
		WithTimeout(cfg.Timeout),
	}
	return NewController(t, append(base, opts...)...)
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Draft() string {
	return c.draft
}

// AnimationActive is the activation signal read by the overlay
func (c *Controller) AnimationActive() bool {
	return c.state == StateAnimating
}

// InFlight returns the attempt being transmitted, or nil
func (c *Controller) InFlight() *Attempt {
	return c.inFlight
}

// CanSend reports whether RequestSend would open the confirmation gate
func (c *Controller) CanSend() bool {
	return c.state == StateComposing && !models.IsBlank(c.draft)
}

// SetDraft replaces the draft verbatim in any state
func (c *Controller) SetDraft(text string) {
	c.draft = text
}

// RequestSend opens the confirmation gate. A blank draft is rejected with a
// ValidationError and the state stays Composing.
func (c *Controller) RequestSend() error {
	if c.state != StateComposing {
		return c.invalid("request send")
	}
	if models.IsBlank(c.draft) {
		return &models.ValidationError{Field: "draft", Message: "message must not be empty"}
	}
	c.transition(StateAwaitingConfirmation)
	return nil
}

// Cancel closes the confirmation gate without side effects
func (c *Controller) Cancel() error {
	if c.state != StateAwaitingConfirmation {
		return c.invalid("cancel")
	}
	c.transition(StateComposing)
	return nil
}

// Confirm moves to Sending and returns the single attempt to run
func (c *Controller) Confirm() (*Attempt, error) {
	if c.state != StateAwaitingConfirmation {
		return nil, c.invalid("confirm")
	}

	attempt := &Attempt{
		ID:        c.newID(),
		Payload:   models.NewOutboundPayload(c.draft, c.now(), c.meta),
		transport: c.transport,
		timeout:   c.timeout,
	}
	c.inFlight = attempt
	c.transition(StateSending)

	c.logger.Debug("payload built",
		zap.String("request_id", attempt.ID),
		zap.String("timestamp", attempt.Payload.Timestamp),
		zap.String("content", attempt.Payload.Content),
		zap.String("source", attempt.Payload.Metadata.Source),
		zap.String("format", attempt.Payload.Metadata.Format))

	return attempt, nil
}

// Resolve records the outcome of the in-flight attempt. Success clears the
// draft and requests the animation; failure keeps the draft and asks for a
// notification.
func (c *Controller) Resolve(attempt *Attempt, sendErr error) (Event, error) {
	if c.state != StateSending {
		return Event{}, c.invalid("resolve")
	}
	if attempt == nil || attempt != c.inFlight {
		return Event{}, models.ErrStaleAttempt
	}
	c.inFlight = nil

	var ev Event
	if sendErr == nil {
		c.draft = ""
		c.transition(StateAnimating)
		ev = Event{Kind: EventAnimationRequested, RequestID: attempt.ID}
		c.logger.Info("message dispatched", zap.String("request_id", attempt.ID))
	} else {
		c.transition(StateComposing)
		ev = Event{Kind: EventNotifyFailure, RequestID: attempt.ID, Message: failureMessage, Err: sendErr}
		c.logger.Warn("message dispatch failed", zap.String("request_id", attempt.ID), zap.Error(sendErr))
	}

	if c.observer != nil {
		c.observer(ev)
	}
	return ev, nil
}

// OnOverlayComplete returns to Composing once the celebration has finished
func (c *Controller) OnOverlayComplete() error {
	if c.state != StateAnimating {
		return c.invalid("complete overlay")
	}
	c.transition(StateComposing)
	return nil
}

func (c *Controller) transition(to State) {
	c.logger.Debug("dispatch state change", zap.Stringer("from", c.state), zap.Stringer("to", to))
	c.state = to
}

func (c *Controller) invalid(op string) error {
	return fmt.Errorf("%s from %s: %w", op, c.state, models.ErrInvalidTransition)
}

// Attempt is one transmission of one payload
type Attempt struct {
	ID        string
	Payload   models.OutboundPayload
	transport transport.Transport
	timeout   time.Duration
}

// Run performs the transmission under the configured timeout. Every failure
// is returned as a *models.TransmissionError.
func (a *Attempt) Run(ctx context.Context) error {
	if a.transport == nil {
		return &models.TransmissionError{Stage: "request", Err: errors.New("no transport configured")}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	err := a.transport.Send(ctx, a.ID, a.Payload)
	if err == nil {
		return nil
	}

	var txErr *models.TransmissionError
	if errors.As(err, &txErr) {
		return err
	}
	return &models.TransmissionError{Stage: "request", Err: err}
}

// ConfirmAndSend confirms, runs the attempt and resolves it in one blocking
// call. It is meant for callers without an event loop.
func (c *Controller) ConfirmAndSend(ctx context.Context) (Event, error) {
	attempt, err := c.Confirm()
	if err != nil {
		return Event{}, err
	}
	return c.Resolve(attempt, attempt.Run(ctx))
}
