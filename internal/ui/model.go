package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/logic"
	"carousel/internal/ui/handlers"
	"carousel/internal/ui/input"
	inputtypes "carousel/internal/ui/input/types"
	"carousel/internal/ui/services/navigation"
	"carousel/internal/ui/state"
	"carousel/internal/ui/viewmodels"
	"carousel/internal/ui/views"
)

// saveResultMsg reports the outcome of an explicit save
type saveResultMsg struct {
	path string
	err  error
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	help   help.Model
	keys   inputtypes.KeyMap

	store     logic.StateStore
	nav       *navigation.Service
	persister *logic.StatePersister
	watcher   *config.Watcher

	// Handlers
	renderer     *views.Renderer        // view renderer
	viewModel    *viewmodels.ViewModel  // view model for rendering
	helpRenderer *HelpRenderer          // help popup and pager content
	eventHandler *handlers.EventHandler // event processing handler
	inputHandler *input.Handler         // input handling
	helpOps      *HelpOps               // pager operations

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. persister may be nil, in which case
// nothing is written to disk.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.StateStore, persister *logic.StatePersister) *Model {
	appState := state.NewAppState(cfg.UISettings.ShowOffset)
	keys := inputtypes.DefaultKeyMap()
	nav := navigation.NewService(store, bus)

	var saved viewmodels.SaveTracker
	if persister != nil {
		saved = persister
	}

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		keys:         keys,
		store:        store,
		nav:          nav,
		persister:    persister,
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, nav, saved, keys),
		helpRenderer: NewHelpRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(keys),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetWatcher makes the model reload the state whenever the watcher reports a change
func (m *Model) SetWatcher(w *config.Watcher) {
	m.watcher = w
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return watchStateCmd(m.watcher)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		ctx := &input.ModelContext{Store: m.store}
		actions := m.inputHandler.HandleKey(msg, ctx)
		m.state.ConfirmReset = m.inputHandler.CurrentMode() == inputtypes.ModeResetConfirm

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleHelpKey handles keys while the help popup is open
func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "?", "esc", "q":
		m.state.ToggleHelp()
	case "up", "k":
		m.state.ScrollHelp(-1)
	case "down", "j":
		m.state.ScrollHelp(1)
	case "H":
		m.state.ToggleHelp()
		return m.openHelpPager()
	}
	return nil
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if _, err := m.nav.Navigate(a.Direction); err != nil {
			return m.eventHandler.HandleEvent(eventbus.ErrorEvent{Message: "navigation failed", Err: err})
		}
		if m.state.IsError {
			m.state.ClearStatus()
		}

	case inputtypes.ResetAction:
		if _, err := m.nav.Reset(); err != nil {
			return m.eventHandler.HandleEvent(eventbus.ErrorEvent{Message: "reset failed", Err: err})
		}

	case inputtypes.ToggleHelpAction:
		m.state.ToggleHelp()

	case inputtypes.OpenHelpPagerAction:
		return m.openHelpPager()

	case inputtypes.ToggleOffsetAction:
		m.state.ToggleOffset()

	case inputtypes.SaveAction:
		return m.saveCmd()

	case inputtypes.StatusAction:
		m.state.SetStatus(a.Message)
		return handlers.ClearStatusAfter(a.Message, handlers.StatusTimeout)

	case inputtypes.QuitAction:
		save := !a.Force && m.config.UISettings.AutosaveOnExit
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}

	return nil
}

// openHelpPager shows the full help in ov, or in the popup when there is no terminal to hand over
func (m *Model) openHelpPager() tea.Cmd {
	if m.helpOps == nil {
		m.state.ToggleHelp()
		return nil
	}
	return showHelpPagerCmd(m.helpOps, m.helpRenderer.RenderHelpContentPlain())
}

func (m *Model) saveCmd() tea.Cmd {
	if m.persister == nil {
		m.state.SetError("Error: no state file to save to")
		return nil
	}
	persister := m.persister
	path := persister.Path()
	return func() tea.Msg {
		return saveResultMsg{path: path, err: persister.Persist()}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case stateFileChangedMsg:
		return m, tea.Batch(m.reload(), watchStateCmd(m.watcher))

	case watchErrMsg:
		log.Printf("State watcher error: %v", msg.err)
		m.state.SetError(fmt.Sprintf("Error: watching state file: %v", msg.err))
		return m, watchStateCmd(m.watcher)

	case saveResultMsg:
		if msg.err != nil {
			log.Printf("Save failed: %v", msg.err)
			m.state.SetError(fmt.Sprintf("Error: save failed: %v", msg.err))
			return m, nil
		}
		saved := "Saved"
		if msg.path != "" {
			saved = fmt.Sprintf("Saved %s", filepath.Base(msg.path))
		}
		m.state.SetStatus(saved)
		return m, handlers.ClearStatusAfter(saved, handlers.StatusTimeout)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ToggleHelp()
		}
		return m, nil

	case handlers.ClearStatusMsg:
		if m.state.StatusMessage == msg.Message {
			m.state.ClearStatus()
		}
		return m, nil

	case quitMsg:
		if msg.saveConfig && m.persister != nil {
			if err := m.persister.Persist(); err != nil {
				log.Printf("Autosave on exit failed: %v", err)
			}
		}
		return m, tea.Quit

	default:
		return m, nil
	}
}

// reload picks up an external edit of the state file
func (m *Model) reload() tea.Cmd {
	if m.persister == nil {
		return nil
	}

	state, changed, err := m.persister.Reload()
	if err != nil {
		log.Printf("Reload failed: %v", err)
		m.state.SetError(fmt.Sprintf("Error: reload failed: %v", err))
		return nil
	}
	if !changed {
		return nil
	}

	// A reload cancels a pending reset confirmation
	m.inputHandler.Reset()
	m.state.ConfirmReset = false

	event := eventbus.StateReloadedEvent{Path: m.persister.Path(), State: state}
	if m.bus != nil {
		m.bus.Publish(event)
	}
	return m.eventHandler.HandleEvent(event)
}

// View renders the UI
func (m *Model) View() string {
	m.viewModel.SetHelp(m.help)

	helpContent := ""
	if m.state.ShowHelp {
		helpContent = m.helpRenderer.renderHelpContent(m.state.Height, m.state.HelpScrollOffset)
	}
	return m.renderer.Render(m.viewModel.BuildViewState(helpContent))
}
