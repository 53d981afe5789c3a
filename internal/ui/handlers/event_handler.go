package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
)

// StatusTimeout is how long informational messages stay in the status bar
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar if it still shows the message it was scheduled for
type ClearStatusMsg struct {
	Message string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.SetError(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		} else {
			h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
		}

	case eventbus.ConfigSavedEvent:
		// Keep errors visible; a later save does not fix them
		if h.state.IsError {
			return nil
		}
		return h.flash(fmt.Sprintf("Saved %s", filepath.Base(e.Path)))

	case eventbus.StateReloadedEvent:
		return h.flash(fmt.Sprintf("Reloaded %s: %d items, %d per view, index %d",
			filepath.Base(e.Path), e.State.ItemsTotal, e.State.ItemsPerView, e.State.CurrentIndex))
	}

	return nil
}

// flash shows msg and schedules it to be cleared
func (h *EventHandler) flash(msg string) tea.Cmd {
	h.state.SetStatus(msg)
	return ClearStatusAfter(msg, StatusTimeout)
}

// ClearStatusAfter returns a command that clears msg after d
func ClearStatusAfter(msg string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}
