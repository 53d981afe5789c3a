package navigation

import "carousel/internal/carousel"

// Direction represents movement directions
type Direction = carousel.Direction

const (
	DirectionForward = carousel.Forward
	DirectionBack    = carousel.Back
)

// Position is what the view needs to draw the current window
type Position struct {
	State     carousel.State
	Offset    float64
	Transform string
	Page      int
	Pages     int
	Visible   []int
}
