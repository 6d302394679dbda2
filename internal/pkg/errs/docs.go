// Package errs provides the standardized error types of the marketplace order core.
// Every error kind follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) that callers match with errors.Is
//   - a struct type carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The kinds cover input validation (ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError), missing entities (ObjectNotFoundError), identity and
// ownership mismatches (NotAuthorizedError) and owned resources that are expected
// to exist but do not (DataIntegrityError).
package errs
