package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carousel/internal/ui/services/navigation"
)

const (
	minCardWidth = 4
	maxCardWidth = 16
	cardHeight   = 3
)

// StripRenderer draws the window of placeholder items and the track below it
type StripRenderer struct {
	styles *Styles
}

// NewStripRenderer creates a new strip renderer
func NewStripRenderer(styles *Styles) *StripRenderer {
	return &StripRenderer{styles: styles}
}

// CardWidth fits itemsPerView cards plus both arrows into width
func CardWidth(width, itemsPerView int) int {
	if itemsPerView < 1 {
		return minCardWidth
	}
	// 2 cells of border per card, 1 gap between cards, 2 cells per arrow
	avail := width - 4 - (itemsPerView - 1) - itemsPerView*2
	w := avail / itemsPerView
	return min(max(w, minCardWidth), maxCardWidth)
}

// RenderStrip renders the visible cards between the two arrows. Empty slots
// on a partial last page are drawn blank so the cards never shift.
func (sr *StripRenderer) RenderStrip(pos navigation.Position, width int) string {
	per := pos.State.ItemsPerView
	cardWidth := CardWidth(width, per)

	parts := []string{sr.styles.Arrow.Render("◀ ")}
	for slot := 0; slot < per; slot++ {
		if slot > 0 {
			parts = append(parts, " ")
		}
		if slot >= len(pos.Visible) {
			parts = append(parts, sr.styles.CardEmpty.Width(cardWidth).Height(cardHeight).Render(""))
			continue
		}

		idx := pos.Visible[slot]
		style := sr.styles.Card
		if idx == pos.State.CurrentIndex {
			style = sr.styles.CardCurrent
		}
		parts = append(parts, style.Width(cardWidth).Height(cardHeight).Render(fmt.Sprintf("#%d", idx+1)))
	}
	parts = append(parts, sr.styles.Arrow.Render(" ▶"))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// RenderTrack renders one marker per item, lit inside the window
func (sr *StripRenderer) RenderTrack(pos navigation.Position) string {
	inWindow := make(map[int]bool, len(pos.Visible))
	for _, idx := range pos.Visible {
		inWindow[idx] = true
	}

	markers := make([]string, 0, pos.State.ItemsTotal)
	for i := 0; i < pos.State.ItemsTotal; i++ {
		if inWindow[i] {
			markers = append(markers, sr.styles.TrackOn.Render("■"))
		} else {
			markers = append(markers, sr.styles.TrackOff.Render("□"))
		}
	}
	return strings.Join(markers, " ")
}

// RenderRange describes the window in words, e.g. "items 7-9 of 9 · page 3/3"
func (sr *StripRenderer) RenderRange(pos navigation.Position) string {
	if len(pos.Visible) == 0 {
		return fmt.Sprintf("no items · page %d/%d", pos.Page+1, pos.Pages)
	}
	first := pos.Visible[0] + 1
	last := pos.Visible[len(pos.Visible)-1] + 1
	span := fmt.Sprintf("item %d", first)
	if last != first {
		span = fmt.Sprintf("items %d-%d", first, last)
	}
	return fmt.Sprintf("%s of %d · page %d/%d", span, pos.State.ItemsTotal, pos.Page+1, pos.Pages)
}
