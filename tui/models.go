// Package tui is the interactive front end of the dispatcher.
//
// The package is split by concern:
//
//   - state.go: Model struct and NewModel
//   - update.go: Update() and message routing
//   - view.go: View() and pane layout
//   - compose_state.go: draft editing and the send action
//   - dispatch_states.go: confirmation dialog, sending and animating screens
//   - celebration.go: particle canvas drawn while the overlay is active
//   - session_summary.go: right pane session log
//   - commands.go, animation.go: tea.Cmd producers and their messages
//   - keys.go, styles.go: key bindings and lipgloss styles
package tui
