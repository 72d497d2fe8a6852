// Package errs provides standardized error types for the foodex backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying error details
//   - constructor functions with and without an underlying cause
//   - an Error() method formatting the message
//   - an Unwrap() method returning the sentinel, enabling errors.Is
//
// Domain-specific errors (duplicate email, invalid transition, forbidden, ...)
// live in their owning packages; this package covers the generic categories
// they build on: not found, invalid value, out of range, required value, and
// optimistic version conflicts.
package errs
