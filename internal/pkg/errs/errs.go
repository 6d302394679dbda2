package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrDataIntegrity     = errors.New("data integrity violation")
)

// withCause appends the cause, if any, to a formatted message.
func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize keeps user supplied values on a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// ObjectNotFoundError reports that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// NotAuthorizedError reports an identity or ownership mismatch.
// Subject is the identity that attempted the operation.
type NotAuthorizedError struct {
	Subject string
	Reason  string
	Cause   error
}

func NewNotAuthorizedError(subject, reason string) *NotAuthorizedError {
	return &NotAuthorizedError{Subject: subject, Reason: reason}
}

func NewNotAuthorizedErrorWithCause(subject, reason string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Subject: subject, Reason: reason, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrNotAuthorized, sanitize(e.Subject), e.Reason), e.Cause)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// DataIntegrityError reports an owned resource that must exist but is missing,
// e.g. a user without a cart.
type DataIntegrityError struct {
	Resource string
	OwnerID  any
	Cause    error
}

func NewDataIntegrityError(resource string, ownerID any) *DataIntegrityError {
	return &DataIntegrityError{Resource: resource, OwnerID: ownerID}
}

func NewDataIntegrityErrorWithCause(resource string, ownerID any, cause error) *DataIntegrityError {
	return &DataIntegrityError{Resource: resource, OwnerID: ownerID, Cause: cause}
}

func (e *DataIntegrityError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is missing for owner %s",
		ErrDataIntegrity, e.Resource, sanitize(e.OwnerID)), e.Cause)
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
