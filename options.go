package mariadbclient

import (
	"log/slog"
	"time"

	"github.com/mariadb-notebook/mariadb-client-go/internal/cli"
	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
)

// Option configures the client using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a config.Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithClientBin sets the explicit path to the mariadb client binary.
// If not set, the binary is searched in PATH and common install directories.
func WithClientBin(path string) Option {
	return func(o *config.Options) {
		o.ClientBin = path
	}
}

// WithArgs sets connection arguments appended verbatim to the command line
// after the fixed flags (for example "-u", "root", "--port=3307").
func WithArgs(args ...string) Option {
	return func(o *config.Options) {
		o.Args = args
	}
}

// WithConfig takes the binary path and connection arguments from a host
// configuration collaborator. The argument text is opaque and split on
// whitespace into individual arguments.
func WithConfig(cfg Config) Option {
	return func(o *config.Options) {
		o.ClientBin = cfg.ClientBin()
		o.Args = cli.SplitArgs(cfg.Args())
	}
}

// WithCwd sets the working directory for the client process and the scratch
// files. Concurrent clients sharing a directory are safe; scratch file names
// never collide.
func WithCwd(cwd string) Option {
	return func(o *config.Options) {
		o.Cwd = cwd
	}
}

// WithLaunchTimeout bounds the startup handshake, the wait for the client's
// banner and first prompt. Defaults to 30 seconds.
func WithLaunchTimeout(d time.Duration) Option {
	return func(o *config.Options) {
		o.LaunchTimeout = d
	}
}

// WithPromptPattern overrides the prompt-matching pattern. The default
// matches `MariaDB [<anything>]>` followed by a space or tab. The pattern
// must never match inside ordinary statement output.
func WithPromptPattern(pattern string) Option {
	return func(o *config.Options) {
		o.PromptPattern = pattern
	}
}

// WithChannel injects a custom channel, bypassing process launch entirely.
// Intended for tests and alternative transports.
func WithChannel(ch Channel) Option {
	return func(o *config.Options) {
		o.Channel = ch
	}
}
