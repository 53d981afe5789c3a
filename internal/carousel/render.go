package carousel

import (
	"fmt"
	"strconv"
)

// Context is the interactivity payload a page embeds for the slider.
type Context struct {
	Transform    string `json:"transform"`
	ItemsTotal   int    `json:"itemsTotal"`
	ItemsPerView int    `json:"itemsPerView"`
	CurrentIndex int    `json:"currentIndex"`
}

// NewContext builds the interactivity payload for s.
func NewContext(s State) (Context, error) {
	transform, err := Transform(s)
	if err != nil {
		return Context{}, err
	}
	return Context{
		Transform:    transform,
		ItemsTotal:   s.ItemsTotal,
		ItemsPerView: s.ItemsPerView,
		CurrentIndex: s.CurrentIndex,
	}, nil
}

// Transform renders the display offset as a CSS transform, e.g. "translateX(-200%)".
func Transform(s State) (string, error) {
	offset, err := DisplayOffsetPercent(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("translateX(%s%%)", strconv.FormatFloat(offset, 'f', -1, 64)), nil
}

// StyleVars renders the custom properties the editor wrapper carries.
func StyleVars(s State) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("--items-per-view: %d; --current-index: %d", s.ItemsPerView, s.CurrentIndex), nil
}

// Visible lists the item indices inside the window. The last page may hold
// fewer than ItemsPerView items. Like DisplayOffsetPercent it uses
// CurrentIndex as given, so a window shifted past either end of the set
// exposes only the items it still overlaps.
func Visible(s State) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	start := max(s.CurrentIndex, 0)
	end := min(s.CurrentIndex+s.ItemsPerView, s.ItemsTotal)
	if end <= start {
		return []int{}, nil
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out, nil
}

// Pages is the number of window-sized pages needed to cover every item.
func Pages(s State) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return (s.ItemsTotal + s.ItemsPerView - 1) / s.ItemsPerView, nil
}

// Page is the zero-based page the window's first item falls on, rounded
// down. It follows DisplayOffsetPercent: offset = -Page*100 on a page boundary.
func Page(s State) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	page := s.CurrentIndex / s.ItemsPerView
	if s.CurrentIndex%s.ItemsPerView != 0 && s.CurrentIndex < 0 {
		page--
	}
	return page, nil
}
