package mariadbclient

import (
	"github.com/mariadb-notebook/mariadb-client-go/internal/errors"
)

// DriverError is the base interface implemented by all structured errors
// returned from this package.
type DriverError = errors.DriverError

// Structured error types. Check with errors.As or errors.AsType.
type (
	// NotFoundError indicates the mariadb client binary was not found.
	NotFoundError = errors.NotFoundError

	// LoginError indicates the server rejected the configured credentials.
	LoginError = errors.LoginError

	// ServerDownError indicates the client exited immediately; the server is
	// most probably unreachable.
	ServerDownError = errors.ServerDownError

	// TransportError indicates the channel failed mid-statement; the session
	// is dead and the client must be restarted.
	TransportError = errors.TransportError
)

// Sentinel errors. Check with errors.Is.
var (
	// ErrNotStarted indicates Run was called without a running process.
	ErrNotStarted = errors.ErrNotStarted

	// ErrAlreadyStarted indicates Start was called on a running client.
	ErrAlreadyStarted = errors.ErrAlreadyStarted

	// ErrChannelClosed indicates the child's output stream reached end of file.
	ErrChannelClosed = errors.ErrChannelClosed

	// ErrPromptTimeout indicates the prompt did not reappear within the deadline.
	ErrPromptTimeout = errors.ErrPromptTimeout
)
