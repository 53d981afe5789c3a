package ui

import (
	"carousel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// stateFileChangedMsg is sent when the watcher sees the state file change on disk
type stateFileChangedMsg struct{}

// watchErrMsg is sent when the watcher cannot be started or fails
type watchErrMsg struct {
	err error
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}
