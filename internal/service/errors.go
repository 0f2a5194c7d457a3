package service

import "fmt"

// ValidationError reports a malformed or missing draft field. It is
// detected before any store I/O, so a draft that fails validation never
// leaves partial state anywhere.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreError wraps a failed blob or record store operation. Failures are
// surfaced to the caller unchanged and never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
