package mariadbclient

import (
	"context"
	"time"

	"github.com/mariadb-notebook/mariadb-client-go/internal/driver"
)

// clientWrapper wraps the internal driver to adapt it to the public interface.
type clientWrapper struct {
	impl *driver.Driver
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal driver implementation.
func newClientImpl() Client {
	return &clientWrapper{impl: driver.New()}
}

// Start launches the client process and waits for its first prompt.
func (c *clientWrapper) Start(ctx context.Context, opts ...Option) error {
	return c.impl.Start(ctx, applyOptions(opts))
}

// Stop sends the quit command and waits for the process to exit.
func (c *clientWrapper) Stop() error {
	return c.impl.Stop()
}

// Run executes one statement and returns its classified outcome.
func (c *clientWrapper) Run(ctx context.Context, statement string, timeout time.Duration) (*Result, error) {
	return c.impl.Run(ctx, statement, timeout)
}

// IsError reports whether the most recent Run produced a client-reported error.
func (c *clientWrapper) IsError() bool {
	return c.impl.IsError()
}

// ErrorMessage returns the error text of the most recent client-reported error.
func (c *clientWrapper) ErrorMessage() string {
	return c.impl.ErrorMessage()
}
