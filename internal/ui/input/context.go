package input

import (
	"carousel/internal/carousel"
	"carousel/internal/logic"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store logic.StateStore
}

// State returns the current carousel snapshot
func (c *ModelContext) State() carousel.State {
	return c.Store.Get()
}
