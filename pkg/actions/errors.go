package actions

import "fmt"

// DispatchError wraps a failed outward side effect. The router answers with
// an apology and never retries.
type DispatchError struct {
	Action string
	Err    error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("actions: %s: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *DispatchError) Unwrap() error { return e.Err }
