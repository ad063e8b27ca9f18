// Package errors accumulates failures that should be reported together rather
// than one at a time, such as the failing cases of a harness run, and turns
// recovered panics into errors.
package errors

import (
	"errors"
	"fmt"
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

// ErrPanicRecovery wraps the value recovered from a panic.
var ErrPanicRecovery = errors.New("recovered from panic")

// FromPanic converts a recovered panic value and an optional stack trace into
// an error wrapping ErrPanicRecovery. If the value is itself an error it is
// wrapped too. Returns nil if rec is nil.
func FromPanic(rec any, stack []byte) error {
	if rec == nil {
		return nil
	}

	var err error
	if recErr, ok := rec.(error); ok {
		err = fmt.Errorf("%w: %w", ErrPanicRecovery, recErr)
	} else {
		err = fmt.Errorf("%w: %v", ErrPanicRecovery, rec)
	}

	if stack != nil {
		return fmt.Errorf("%w\nstack trace:\n%s", err, stack)
	}

	return err
}
