package service

import "fmt"

// ValidationError reports missing or malformed caller input. Handlers map
// it to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a backing-store fault. Handlers map it to HTTP 500
// with a generic message; the wrapped detail is for the server log only.
// "Record not found" is never a StorageError - repositories return nil for
// that, and callers treat it as an expected branch.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
