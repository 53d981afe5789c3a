package state

// AppState contains the UI state that lives outside the carousel snapshot
type AppState struct {
	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup
	ShowOffset       bool
	ConfirmReset     bool
	StatusMessage    string // status bar message
	IsError          bool   // whether the status message reports a failure
}

// NewAppState creates a new application state
func NewAppState(showOffset bool) *AppState {
	return &AppState{
		ShowOffset: showOffset,
		Height:     24, // Default
		Width:      80,
	}
}

// SetStatus replaces the status line with an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.IsError = false
}

// SetError replaces the status line with an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.IsError = true
}

func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.IsError = false
}

// ToggleHelp shows or hides the help popup, resetting its scroll position
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ScrollHelp moves the help popup by delta lines, never above the top
func (s *AppState) ScrollHelp(delta int) {
	s.HelpScrollOffset = max(s.HelpScrollOffset+delta, 0)
}

func (s *AppState) ToggleOffset() {
	s.ShowOffset = !s.ShowOffset
}
