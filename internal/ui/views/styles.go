package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	InfoBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Card          lipgloss.Style
	CardCurrent   lipgloss.Style
	CardEmpty     lipgloss.Style
	Arrow         lipgloss.Style
	TrackOn       lipgloss.Style
	TrackOff      lipgloss.Style
	Offset        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusDirty   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Align(lipgloss.Center, lipgloss.Center),
		CardCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Foreground(lipgloss.Color("226")).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center),
		CardEmpty: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Faint(true).
			Align(lipgloss.Center, lipgloss.Center),
		Arrow:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		TrackOn:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		TrackOff:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Offset:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusDirty:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
