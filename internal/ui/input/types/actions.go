package types

import "carousel/internal/carousel"

// Navigation actions
type NavigateAction struct {
	Direction carousel.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

type ResetAction struct{}

func (a ResetAction) Type() string { return "reset" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type ToggleOffsetAction struct{}

func (a ToggleOffsetAction) Type() string { return "toggle_offset" }

type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
