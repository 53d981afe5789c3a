package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/ui/input/types"
	"carousel/internal/ui/services/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Position      navigation.Position
	PositionErr   error
	StatusMessage string
	IsError       bool
	Dirty         bool
	ShowOffset    bool
	ShowHelp      bool
	HelpContent   string
	ConfirmReset  bool
	ConfigPath    string
	HelpModel     help.Model
	Keys          types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	stripRender *StripRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		stripRender: NewStripRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(state.HelpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	availableWidth := termWidth - 4

	content := &strings.Builder{}

	logo := r.styles.Title.Render("carousel")
	if state.Dirty {
		logo = lipgloss.JoinHorizontal(lipgloss.Top, logo, "  ", r.styles.StatusDirty.Render("[unsaved]"))
	}
	content.WriteString(logo)
	content.WriteString("\n")

	if state.ConfirmReset {
		content.WriteString(r.styles.Confirm.Render("Reset to the first item? (y/n): "))
		content.WriteString("\n\n")
	}

	if state.PositionErr != nil {
		content.WriteString(r.styles.StatusError.Render(fmt.Sprintf("Invalid carousel: %v", state.PositionErr)))
		content.WriteString("\n")
	} else {
		content.WriteString(r.stripRender.RenderStrip(state.Position, availableWidth))
		content.WriteString("\n\n")
		content.WriteString(r.stripRender.RenderTrack(state.Position))
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(r.stripRender.RenderRange(state.Position)))
		content.WriteString("\n")

		if state.ShowOffset {
			offset := fmt.Sprintf("index %d · offset %g%% · %s",
				state.Position.State.CurrentIndex, state.Position.Offset, state.Position.Transform)
			content.WriteString(r.styles.Offset.Render(offset))
			content.WriteString("\n")
		}
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.IsError {
			style = style.Foreground(r.styles.StatusError.GetForeground())
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	helpText := r.styles.Help.Render(state.HelpModel.View(state.Keys))

	// Pad to push the help line to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}
