package stt

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recognition contract.
var (
	// ErrNoSpeech means nothing was heard or understood within the capture
	// window. Benign: the caller retries on its next loop iteration.
	ErrNoSpeech = errors.New("stt: no speech detected")

	// ErrServiceUnavailable means the recognition backend is unreachable.
	ErrServiceUnavailable = errors.New("stt: recognition service unavailable")

	// ErrClosed is returned when listening on a closed recognizer.
	ErrClosed = errors.New("stt: recognizer closed")
)

// BackendError wraps a transport or protocol failure from the recognition
// backend. It matches ErrServiceUnavailable under errors.Is.
type BackendError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("stt: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error { return e.Err }

// Is reports ErrServiceUnavailable so callers can classify with errors.Is.
func (e *BackendError) Is(target error) bool {
	return target == ErrServiceUnavailable
}
