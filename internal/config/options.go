// Package config provides configuration types for the mariadb client driver.
package config

import (
	"context"
	"log/slog"
	"time"
)

const (
	// DefaultPromptPattern matches the client's idle prompt. The bracketed part
	// carries session state (the active database name), so it cannot be pinned
	// to a literal string. The pattern must never match inside ordinary
	// statement output; if it does, prompt synchronization is permanently lost.
	DefaultPromptPattern = `MariaDB \[.*\]>[ \t]`

	// DefaultLaunchTimeout bounds the wait for the client's first prompt.
	DefaultLaunchTimeout = 30 * time.Second
)

// Channel defines the interface for prompt-synchronized communication with
// the client process. Implement this to provide custom channels for testing
// or alternative transports.
//
// The default implementation is repl.Channel which spawns the client on a
// pseudo-terminal.
type Channel interface {
	// Send writes text plus a line terminator to the child and blocks until
	// the prompt reappears, returning everything emitted in between (prompt
	// excluded). A negative timeout waits indefinitely.
	Send(ctx context.Context, text string, timeout time.Duration) (string, error)

	// Terminate sends the quit command and waits for the output stream to
	// close; end of stream is the expected success signal. Safe to call
	// multiple times and on a never-launched channel.
	Terminate() error
}

// Options holds the driver configuration populated by the public functional
// options.
type Options struct {
	// Logger receives operation tracking and debugging output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ClientBin is an explicit path to the mariadb client binary.
	// If empty, discovery searches PATH and common locations.
	ClientBin string

	// Args are connection arguments appended verbatim to the command line
	// after the fixed flags.
	Args []string

	// Cwd is the working directory for the client process and the scratch
	// files. If empty, the current directory is used.
	Cwd string

	// LaunchTimeout bounds the startup handshake (banner plus first prompt).
	// Zero means DefaultLaunchTimeout.
	LaunchTimeout time.Duration

	// PromptPattern overrides DefaultPromptPattern.
	PromptPattern string

	// Channel injects a custom channel, bypassing process launch entirely.
	Channel Channel
}
