// Package errors provides the structured error type used by the seqkit
// driver, configuration and validation layers.
//
// The operators in package seq never wrap errors: a failing callable's error
// reaches the caller unchanged. Outer layers attach context with AppError,
// keeping the original error reachable through Unwrap.
package errors
