// Package errors defines error types for the mariadb client driver.
//
// This package provides structured error types that wrap different failure
// scenarios when driving the mariadb command-line client. All error types
// support error unwrapping and can be checked using errors.Is, errors.As,
// and errors.AsType.
package errors
