package navigation

import (
	"carousel/internal/carousel"
	"carousel/internal/eventbus"
	"carousel/internal/logic"
)

// Service applies navigation intents to the shared carousel state
type Service struct {
	store logic.StateStore
	bus   eventbus.EventBus
}

// NewService creates a new navigation service
func NewService(store logic.StateStore, bus eventbus.EventBus) *Service {
	return &Service{
		store: store,
		bus:   bus,
	}
}

// Current returns the current snapshot
func (s *Service) Current() carousel.State {
	return s.store.Get()
}

// Navigate moves the window in a direction. On error the stored state is left untouched.
func (s *Service) Navigate(direction Direction) (carousel.State, error) {
	prev := s.store.Get()
	next, err := carousel.Move(prev, direction)
	if err != nil {
		s.publishError("navigation failed", err)
		return prev, err
	}
	s.commit(direction, prev, next)
	return next, nil
}

// Reset moves the window back to the first item
func (s *Service) Reset() (carousel.State, error) {
	prev := s.store.Get()
	next, err := carousel.Reset(prev)
	if err != nil {
		s.publishError("reset failed", err)
		return prev, err
	}
	s.commit("", prev, next)
	return next, nil
}

// Position derives everything the renderer draws from the current snapshot
func (s *Service) Position() (Position, error) {
	state := s.store.Get()

	offset, err := carousel.DisplayOffsetPercent(state)
	if err != nil {
		return Position{State: state}, err
	}
	transform, err := carousel.Transform(state)
	if err != nil {
		return Position{State: state}, err
	}
	page, err := carousel.Page(state)
	if err != nil {
		return Position{State: state}, err
	}
	pages, err := carousel.Pages(state)
	if err != nil {
		return Position{State: state}, err
	}
	visible, err := carousel.Visible(state)
	if err != nil {
		return Position{State: state}, err
	}

	return Position{
		State:     state,
		Offset:    offset,
		Transform: transform,
		Page:      page,
		Pages:     pages,
		Visible:   visible,
	}, nil
}

func (s *Service) commit(direction Direction, prev, next carousel.State) {
	if prev == next {
		return
	}
	s.store.Set(next)
	if s.bus != nil {
		s.bus.Publish(eventbus.StateChangedEvent{
			Direction: direction,
			Previous:  prev,
			Current:   next,
		})
	}
}

func (s *Service) publishError(message string, err error) {
	if s.bus != nil {
		s.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
}
