package tui

import (
	"message-dispatch/dispatch"
	"message-dispatch/overlay"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	dialogCancel = iota
	dialogConfirm
)

// maxSummaryLines bounds the session log kept in memory
const maxSummaryLines = 500

// Model represents the main TUI model. The dispatch state itself lives in the
// controller; the model only keeps what is needed to draw it.
type Model struct {
	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	// Workflow
	controller  *dispatch.Controller
	overlay     *overlay.Overlay
	overlayDone chan struct{}
	field       *overlay.Field

	// Confirmation dialog
	dialogCursor int

	// Failure notification, cleared on the next key press
	notice    string
	noticeErr error

	// Session log for right pane
	outputSummary      []string
	outputScrollOffset int
	sentCount          int
	failedCount        int

	// UI components
	textarea textarea.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	endpoint string
	mode     string
	logger   *zap.Logger
}

type Option func(*Model)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithOverlayOptions tunes the celebration (duration, randomness)
func WithOverlayOptions(opts ...overlay.Option) Option {
	return func(m *Model) {
		m.overlay = overlay.New(m.signalOverlayDone, opts...)
	}
}

// WithEndpoint is shown in the header only
func WithEndpoint(endpoint, mode string) Option {
	return func(m *Model) {
		m.endpoint = endpoint
		m.mode = mode
	}
}

// NewModel creates a new TUI model around controller
func NewModel(controller *dispatch.Controller, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	m := Model{
		controller:    controller,
		overlayDone:   make(chan struct{}, 1),
		textarea:      ta,
		spinner:       sp,
		help:          help.New(),
		keys:          newKeyMap(),
		dialogCursor:  dialogConfirm,
		outputSummary: []string{},
		logger:        zap.NewNop(),
	}
	m.overlay = overlay.New(m.signalOverlayDone)

	for _, opt := range opts {
		opt(&m)
	}

	m.textarea.SetValue(controller.Draft())
	return m
}

// signalOverlayDone runs on the overlay's timer goroutine. The channel is
// shared by every copy of the model, so capturing it here is safe.
func (m Model) signalOverlayDone() {
	select {
	case m.overlayDone <- struct{}{}:
	default:
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// State is the controller's current dispatch state
func (m Model) State() dispatch.State {
	return m.controller.State()
}
