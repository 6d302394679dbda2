package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStatusValue is the sentinel for status strings outside the status set.
	ErrInvalidStatusValue = errors.New("invalid status value")

	// ErrIllegalTransition is the sentinel for moves the transition table forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// InvalidStatusValueError reports a status string that could not be parsed.
type InvalidStatusValueError struct {
	Value string
}

// NewInvalidStatusValueError creates an InvalidStatusValueError for value.
func NewInvalidStatusValueError(value string) *InvalidStatusValueError {
	return &InvalidStatusValueError{Value: value}
}

func (e *InvalidStatusValueError) Error() string {
	return fmt.Sprintf("%s: %q is not one of %s", ErrInvalidStatusValue, e.Value, validNames())
}

func (e *InvalidStatusValueError) Unwrap() error {
	return ErrInvalidStatusValue
}

// IllegalTransitionError reports a rejected move between two statuses.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

func validNames() string {
	names := make([]string, 0, len(statusNames))
	for _, s := range Statuses() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
