package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
)

// watchStateCmd blocks until the state file changes. The model re-arms it
// after every message so exactly one wait is pending at a time.
func watchStateCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return stateFileChangedMsg{}
		case err := <-w.Errors():
			return watchErrMsg{err: err}
		}
	}
}
