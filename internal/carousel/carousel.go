// Package carousel implements the index and offset controller behind a
// content slider: a window of ItemsPerView items that pages over ItemsTotal
// items and wraps at both ends.
//
// Every function here is pure. Callers own the State values, persist them
// however they like and pass a fresh snapshot on each call.
package carousel

import "fmt"

// State is a snapshot of a carousel.
type State struct {
	ItemsTotal   int `json:"itemsTotal"`
	ItemsPerView int `json:"itemsPerView"`
	CurrentIndex int `json:"currentIndex"`
}

// Direction is a navigation intent.
type Direction string

const (
	// Forward moves the window one page towards lower indices.
	Forward Direction = "forward"
	// Back moves the window one page towards higher indices.
	Back Direction = "back"
)

// ParseDirection converts a direction name into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch Direction(name) {
	case Forward, Back:
		return Direction(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// New returns the initial state for a carousel with the given counts.
func New(itemsTotal, itemsPerView int) (State, error) {
	s := State{ItemsTotal: itemsTotal, ItemsPerView: itemsPerView}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Validate reports whether the item counts allow navigation. CurrentIndex is
// not checked; the transitions always reduce it into range.
func (s State) Validate() error {
	if s.ItemsTotal < 1 {
		return &ConfigError{Field: "itemsTotal", Value: s.ItemsTotal}
	}
	if s.ItemsPerView < 1 {
		return &ConfigError{Field: "itemsPerView", Value: s.ItemsPerView}
	}
	return nil
}

// MoveForward shifts the window one page towards lower indices, wrapping
// past zero to the end of the set.
func MoveForward(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	s.CurrentIndex = euclidMod(s.CurrentIndex-s.ItemsPerView+s.ItemsTotal, s.ItemsTotal)
	return s, nil
}

// MoveBack shifts the window one page towards higher indices, wrapping past
// the end of the set to its start.
func MoveBack(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	s.CurrentIndex = euclidMod(s.CurrentIndex+s.ItemsPerView, s.ItemsTotal)
	return s, nil
}

// Move dispatches to MoveForward or MoveBack.
func Move(s State, dir Direction) (State, error) {
	switch dir {
	case Forward:
		return MoveForward(s)
	case Back:
		return MoveBack(s)
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownDirection, string(dir))
}

// Reset returns the state with the window back on the first item.
func Reset(s State) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	s.CurrentIndex = 0
	return s, nil
}

// DisplayOffsetPercent is the horizontal translation of the item strip, in
// percent of the window width.
func DisplayOffsetPercent(s State) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.CurrentIndex == 0 {
		return 0, nil
	}
	return -float64(s.CurrentIndex) * (100 / float64(s.ItemsPerView)), nil
}

// euclidMod never returns a negative result for n > 0.
func euclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
