package dispatch

// State is the current step of the dispatch workflow
type State int

const (
	StateComposing State = iota
	StateAwaitingConfirmation
	StateSending
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateComposing:
		return "composing"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateSending:
		return "sending"
	case StateAnimating:
		return "animating"
	}
	return "unknown"
}

// EventKind identifies an output command for the presentation layer
type EventKind int

const (
	EventNone EventKind = iota
	EventAnimationRequested
	EventNotifyFailure
)

func (k EventKind) String() string {
	switch k {
	case EventAnimationRequested:
		return "animation_requested"
	case EventNotifyFailure:
		return "notify_failure"
	}
	return "none"
}

// Event is emitted when a transmission resolves
type Event struct {
	Kind      EventKind
	RequestID string
	Message   string // human readable, set for EventNotifyFailure
	Err       error
}
