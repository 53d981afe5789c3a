package logic

import "carousel/internal/carousel"

// StateStore holds the current carousel snapshot for the running process
type StateStore interface {
	Get() carousel.State
	Set(state carousel.State)
}
