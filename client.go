package mariadbclient

import (
	"context"
	"time"
)

// Client provides a synchronous interface to one interactive mariadb client
// process.
//
// Lifecycle: Unstarted until Start succeeds, Running while the process is
// alive, Stopped after Stop or an unrecoverable transport failure. Run is
// only meaningful while Running.
//
// Example usage:
//
//	client := mariadbclient.New()
//	if err := client.Start(ctx, mariadbclient.WithArgs("-u", "root")); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Stop()
//
//	result, err := client.Run(ctx, "SHOW DATABASES;", 10*time.Second)
type Client interface {
	// Start launches the client process and waits for its first prompt.
	// Returns *NotFoundError if the binary cannot be located, *LoginError if
	// the server rejected the credentials, *ServerDownError if the process
	// exited immediately for any other reason.
	Start(ctx context.Context, opts ...Option) error

	// Stop sends the quit command and waits for the process to exit; the
	// stream closing is the success signal. No-op if not started; calling it
	// twice is safe.
	Stop() error

	// Run executes one statement and returns its classified outcome. An
	// empty or whitespace-only statement is a no-op returning an empty
	// result. A negative timeout waits indefinitely. Returns
	// *TransportError if the prompt never reappears or the stream closes
	// mid-statement; the session is unusable afterwards.
	Run(ctx context.Context, statement string, timeout time.Duration) (*Result, error)

	// IsError reports whether the most recent Run produced a client-reported
	// error.
	IsError() bool

	// ErrorMessage returns the error text of the most recent Run's
	// client-reported error, or the empty string.
	ErrorMessage() string
}

// New creates a new client.
//
// Call Start with options to launch the process:
//
//	client := mariadbclient.New()
//	err := client.Start(ctx,
//	    mariadbclient.WithLogger(slog.Default()),
//	    mariadbclient.WithClientBin("/usr/bin/mariadb"),
//	)
func New() Client {
	return newClientImpl()
}
