// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows a consistent shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Domain-specific business errors (transition rules, PIN checks, stock
// shortages) live next to their aggregates; this package only carries the
// cross-cutting taxonomy: required/invalid/out-of-range values, missing
// objects, and storage-level failures.
package errs
