// Package errs provides the application's standardized error types.
//
// Each error type pairs a struct carrying details with a sentinel variable
// (e.g. ErrValueIsRequired) that the struct's Unwrap returns, so callers can
// classify failures with errors.Is without depending on concrete types.
// Constructors exist with and without an underlying cause, and messages are
// flattened to a single line for log friendliness.
package errs
