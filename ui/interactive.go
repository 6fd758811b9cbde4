package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"message-dispatch/dispatch"
	"message-dispatch/models"
	"message-dispatch/overlay"
	"message-dispatch/utils"

	"go.uber.org/zap"
)

// ErrCancelled is returned when the user declines the confirmation prompt
var ErrCancelled = errors.New("send cancelled")

// Session drives the dispatch workflow on a plain terminal
type Session struct {
	in          *bufio.Reader
	out         io.Writer
	overlayOpts []overlay.Option
	logger      *zap.Logger
}

type SessionOption func(*Session)

func WithSessionLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithSessionOverlay(opts ...overlay.Option) SessionOption {
	return func(s *Session) {
		s.overlayOpts = opts
	}
}

func NewSession(in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PromptInput prompts the user for one line of input with a default value
func (s *Session) PromptInput(prompt, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(s.out, ColorSection("%s [default: %s]: "), prompt, ColorHighlight(defaultValue))
	} else {
		fmt.Fprint(s.out, ColorSection(prompt+": "))
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Debug("reading input", zap.Error(err))
	}
	input := strings.TrimRight(line, "\r\n")

	if input == "" {
		return defaultValue
	}
	return input
}

// PromptConfirm asks a yes/no question, defaulting to no
func (s *Session) PromptConfirm(question string) bool {
	return utils.ParseBoolFlag(s.PromptInput(question+" (y/N)", ""))
}

// Send runs compose → confirm → send → animate once for text. A failed
// transmission is reported through the returned event, not the error.
func (s *Session) Send(ctx context.Context, c *dispatch.Controller, text string, assumeYes bool) (dispatch.Event, error) {
	c.SetDraft(text)
	if err := c.RequestSend(); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(s.out, ColorError("  Message is empty, nothing to send."))
		}
		return dispatch.Event{}, err
	}

	PrintSectionHeader(s.out, "Are you sure?")
	fmt.Fprintln(s.out, ColorInfo("  This action will format your message and send it to the external server."))
	fmt.Fprintf(s.out, "  %s\n", ColorDimText("“"+utils.TruncateString(utils.SingleLine(c.Draft()), 48)+"”"))
	if !assumeYes && !s.PromptConfirm("  Yes, send it?") {
		if err := c.Cancel(); err != nil {
			return dispatch.Event{}, err
		}
		fmt.Fprintln(s.out, ColorWarning("  Cancelled."))
		PrintSectionFooter(s.out)
		return dispatch.Event{}, ErrCancelled
	}
	PrintSectionFooter(s.out)

	fmt.Fprintln(s.out, ColorInfo("  Sending..."))
	ev, err := c.ConfirmAndSend(ctx)
	if err != nil {
		return ev, err
	}

	switch ev.Kind {
	case dispatch.EventNotifyFailure:
		fmt.Fprintln(s.out, ColorError("  ✗ "+ev.Message))
		if ev.Err != nil {
			fmt.Fprintln(s.out, ColorDimText("    "+ev.Err.Error()))
		}
	case dispatch.EventAnimationRequested:
		fmt.Fprintln(s.out, ColorSuccess("  ✓ Message sent!"))
		if err := s.celebrate(ctx, c); err != nil {
			return ev, err
		}
	}
	return ev, nil
}

// celebrate prints one particle batch and holds Animating until the overlay
// countdown completes
func (s *Session) celebrate(ctx context.Context, c *dispatch.Controller) error {
	done := make(chan struct{})
	ov := overlay.New(func() { close(done) }, s.overlayOpts...)
	if !ov.Activate() {
		return c.OnOverlayComplete()
	}

	fmt.Fprintln(s.out, "  "+ColorSuccess(ParticleStrip(ov.Particles())))

	select {
	case <-done:
	case <-ctx.Done():
		ov.Deactivate()
		s.logger.Debug("celebration interrupted", zap.Error(ctx.Err()))
	}
	return c.OnOverlayComplete()
}
