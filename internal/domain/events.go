package domain

import "carousel/internal/carousel"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventStateChanged  EventType = "StateChanged"
	EventStateReloaded EventType = "StateReloaded"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// StateChangedEvent is emitted after a navigation or reset changed the index
type StateChangedEvent struct {
	Direction carousel.Direction // empty for a reset
	Previous  carousel.State
	Current   carousel.State
}

func (e StateChangedEvent) Type() EventType { return EventStateChanged }

// StateReloadedEvent is emitted when the state file was edited outside the viewer
type StateReloadedEvent struct {
	Path  string
	State carousel.State
}

func (e StateReloadedEvent) Type() EventType { return EventStateReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	State carousel.State
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
