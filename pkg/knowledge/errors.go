package knowledge

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no summary exists for a topic.
var ErrNotFound = errors.New("knowledge: topic not found")

// LookupError wraps a transport or protocol failure from the summary source.
type LookupError struct {
	Topic string
	Err   error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("knowledge: lookup %q: %v", e.Topic, e.Err)
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error { return e.Err }
