package repos

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("repos: not found")

// PersistenceError wraps any failure of the backing store: connection loss,
// constraint and foreign-key violations.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("repos: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
