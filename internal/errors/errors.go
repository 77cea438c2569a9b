package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DriverError is the base interface for all driver errors.
type DriverError interface {
	error
	IsDriverError() bool
}

// Compile-time verification that all error types implement DriverError.
var (
	_ DriverError = (*NotFoundError)(nil)
	_ DriverError = (*LaunchError)(nil)
	_ DriverError = (*LoginError)(nil)
	_ DriverError = (*ServerDownError)(nil)
	_ DriverError = (*TransportError)(nil)
)

// accessDeniedMarker is the phrase the server prints on a credential rejection.
const accessDeniedMarker = "Access denied for user"

// Sentinel errors for commonly checked conditions.
var (
	// ErrNotStarted indicates the driver has no running client process.
	ErrNotStarted = errors.New("driver not started")

	// ErrAlreadyStarted indicates the driver already owns a running client process.
	ErrAlreadyStarted = errors.New("driver already started")

	// ErrChannelClosed indicates the child's output stream reached end of file.
	ErrChannelClosed = errors.New("channel closed")

	// ErrChannelNotLaunched indicates the channel was never launched.
	ErrChannelNotLaunched = errors.New("channel not launched")

	// ErrPromptTimeout indicates the prompt did not reappear within the deadline.
	// The channel's synchronization state is undefined afterwards; callers must
	// treat the channel as unusable.
	ErrPromptTimeout = errors.New("timed out waiting for prompt")
)

// NotFoundError indicates the mariadb client binary was not found.
type NotFoundError struct {
	SearchedPaths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mariadb client not found in: %v", e.SearchedPaths)
}

// IsDriverError implements DriverError.
func (e *NotFoundError) IsDriverError() bool { return true }

// LaunchError indicates the client process exited before printing its first
// prompt. Output carries everything the process wrote to its terminal, which
// is the only evidence available for classifying the failure.
type LaunchError struct {
	Output string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("client exited before first prompt: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// AccessDenied reports whether the terminal output carries the server's
// credential-rejection phrase.
func (e *LaunchError) AccessDenied() bool {
	return strings.Contains(e.Output, accessDeniedMarker)
}

// IsDriverError implements DriverError.
func (e *LaunchError) IsDriverError() bool { return true }

// LoginError indicates the server rejected the configured credentials.
type LoginError struct {
	Output string
}

func (e *LoginError) Error() string {
	return "access denied: the credentials used for connecting are wrong"
}

// IsDriverError implements DriverError.
func (e *LoginError) IsDriverError() bool { return true }

// ServerDownError indicates the client exited immediately without credential
// evidence. The most common cause is an unreachable server.
type ServerDownError struct {
	Output string
}

func (e *ServerDownError) Error() string {
	return "could not connect: the server is most probably not started"
}

// IsDriverError implements DriverError.
func (e *ServerDownError) IsDriverError() bool { return true }

// TransportError indicates the channel failed mid-statement (prompt timeout or
// stream closure). The session is dead; the driver will not accept further
// statements until restarted.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsDriverError implements DriverError.
func (e *TransportError) IsDriverError() bool { return true }
