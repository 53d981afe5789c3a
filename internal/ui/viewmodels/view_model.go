package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"carousel/internal/carousel"
	"carousel/internal/ui/input/types"
	"carousel/internal/ui/services/navigation"
	"carousel/internal/ui/state"
	"carousel/internal/ui/views"
)

// SaveTracker reports whether a state is already on disk
type SaveTracker interface {
	IsSaved(s carousel.State) bool
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state *state.AppState
	nav   *navigation.Service
	saved SaveTracker
	help  help.Model
	keys  types.KeyMap
}

// NewViewModel creates a new view model. saved may be nil when nothing is persisted.
func NewViewModel(appState *state.AppState, nav *navigation.Service, saved SaveTracker, keys types.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		nav:   nav,
		saved: saved,
		help:  help.New(),
		keys:  keys,
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// BuildViewState creates a ViewState for rendering. helpContent is only
// used while the help popup is open.
func (vm *ViewModel) BuildViewState(helpContent string) views.ViewState {
	pos, err := vm.nav.Position()

	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Position:      pos,
		PositionErr:   err,
		StatusMessage: vm.state.StatusMessage,
		IsError:       vm.state.IsError,
		Dirty:         vm.saved != nil && !vm.saved.IsSaved(pos.State),
		ShowOffset:    vm.state.ShowOffset,
		ShowHelp:      vm.state.ShowHelp,
		ConfirmReset:  vm.state.ConfirmReset,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
	if vm.state.ShowHelp {
		vs.HelpContent = helpContent
	}
	return vs
}
