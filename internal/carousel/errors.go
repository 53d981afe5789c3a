package carousel

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a carousel cannot be navigated or
// positioned because its item counts are unusable.
var ErrInvalidConfiguration = errors.New("invalid carousel configuration")

// ErrUnknownDirection is returned by Move for a direction other than Forward or Back.
var ErrUnknownDirection = errors.New("unknown carousel direction")

// ConfigError names the field that made a state unusable. It always matches
// ErrInvalidConfiguration through errors.Is.
type ConfigError struct {
	Field string
	Value int
}

// Error satisfies [error].
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s must be at least 1, got %d", ErrInvalidConfiguration, e.Field, e.Value)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
