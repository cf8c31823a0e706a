// Package errs provides standardized error types for the freight application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: for when a referenced entity cannot be found
//   - ValueIsInvalidError: for when a request violates a business precondition
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsOutOfRangeError: for when a value falls outside its bounds
//   - InvalidStateTransitionError: for status changes rejected by a state machine
//   - ConcurrentUpdateError: for compare-and-swap writes lost to a concurrent operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// Keeping InvalidStateTransitionError distinct from ValueIsInvalidError lets
// callers distinguish "bad data" from "wrong state" when mapping errors to
// transport responses.
package errs
