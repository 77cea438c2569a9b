package driver

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mariadb-notebook/mariadb-client-go/internal/cli"
	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
	"github.com/mariadb-notebook/mariadb-client-go/internal/errors"
	"github.com/mariadb-notebook/mariadb-client-go/internal/repl"
)

const (
	// queryOK substitutes for statements the client acknowledges silently.
	queryOK = "Query OK"

	// errorMarker prefixes every client-reported error reply.
	errorMarker = "ERROR"

	// scratchPrefix names the per-statement handoff files. The ULID suffix
	// keeps concurrent drivers sharing a working directory from colliding.
	scratchPrefix = ".mariadb_statement_"
)

// Result is the classified outcome of one executed statement.
//
// Err marks a client-reported error (an ERROR-prefixed reply). Malformed
// statements are routine host input, so they are data, not Go errors; only
// transport-level failures surface as errors from Run.
type Result struct {
	Text string
	Err  bool
}

// IsError reports whether the statement produced a client-reported error.
func (r *Result) IsError() bool { return r.Err }

type state int

const (
	stateUnstarted state = iota
	stateRunning
	stateStopped
)

// Driver drives one mariadb client process. One statement is in flight at a
// time; Run blocks the caller until the prompt reappears, the timeout
// elapses, or the stream closes.
type Driver struct {
	log  *slog.Logger
	opts *config.Options

	mu      sync.Mutex
	channel config.Channel
	state   state

	// Sticky flags from the most recent classified Run, for legacy
	// query-style access. Transport failures never touch them.
	lastErr    bool
	lastErrMsg string
}

// New creates an unstarted driver.
func New() *Driver {
	return &Driver{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Start launches the client process and performs the startup handshake.
//
// Launch failures are classified from the evidence available: an immediate
// exit with the server's credential-rejection phrase in the terminal output
// becomes a *errors.LoginError, any other immediate exit a
// *errors.ServerDownError, and a missing binary a *errors.NotFoundError.
func (d *Driver) Start(ctx context.Context, opts *config.Options) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == stateRunning {
		return errors.ErrAlreadyStarted
	}

	if opts == nil {
		opts = &config.Options{}
	}

	d.opts = opts

	if opts.Logger != nil {
		d.log = opts.Logger.With("component", "driver")
	}

	if opts.Channel != nil {
		d.channel = opts.Channel
		d.state = stateRunning

		return nil
	}

	discoverer := cli.NewDiscoverer(&cli.Config{
		ClientBin: opts.ClientBin,
		Logger:    d.log,
	})

	path, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover client: %w", err)
	}

	pattern := opts.PromptPattern
	if pattern == "" {
		pattern = config.DefaultPromptPattern
	}

	prompt, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compile prompt pattern: %w", err)
	}

	handshake := opts.LaunchTimeout
	if handshake == 0 {
		handshake = config.DefaultLaunchTimeout
	}

	channel, err := repl.Launch(d.log, path, cli.BuildArgs(opts), opts.Cwd, prompt, handshake)
	if err != nil {
		d.log.Error("mariadb client failed to start", "error", err)

		var launchErr *errors.LaunchError
		if stderrors.As(err, &launchErr) {
			if launchErr.AccessDenied() {
				d.log.Error("The credentials used for connecting are wrong")

				return &errors.LoginError{Output: launchErr.Output}
			}

			d.log.Error("Most probably the MariaDB server is not started")

			return &errors.ServerDownError{Output: launchErr.Output}
		}

		// The binary can disappear between discovery and spawn.
		if stderrors.Is(err, os.ErrNotExist) {
			d.log.Error("Please install MariaDB from mariadb.org/download")

			return &errors.NotFoundError{SearchedPaths: []string{path}}
		}

		return err
	}

	d.channel = channel
	d.state = stateRunning
	d.log.Info("mariadb client was successfully started")

	return nil
}

// Stop terminates the client process. End of stream after the quit command is
// the success signal. No-op if the driver never started or already stopped.
func (d *Driver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != stateRunning {
		return nil
	}

	d.state = stateStopped

	if err := d.channel.Terminate(); err != nil {
		d.log.Warn("Terminating the client reported an error", "error", err)

		return err
	}

	d.log.Info("mariadb client was successfully stopped")

	return nil
}

// Run executes one statement and classifies its output.
//
// An empty or whitespace-only statement is a no-op returning an empty result
// without touching the channel or the filesystem. Otherwise the statement is
// handed off through a scratch file and a "source" command; the scratch file
// is deleted before Run returns regardless of the outcome.
//
// A negative timeout waits indefinitely. On prompt timeout or stream closure
// Run returns a *errors.TransportError and the driver stops accepting
// statements: the session is dead and hiding that from the host only produces
// an endless string of silently failing calls.
func (d *Driver) Run(ctx context.Context, statement string, timeout time.Duration) (*Result, error) {
	if strings.TrimSpace(statement) == "" {
		return &Result{}, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != stateRunning {
		return nil, errors.ErrNotStarted
	}

	path, err := d.writeScratch(statement)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			d.log.Warn("Failed to remove scratch file", "path", path, "error", rmErr)
		}
	}()

	out, err := d.channel.Send(ctx, "source "+path, timeout)
	if err != nil {
		d.log.Error("mariadb client failed to run statement",
			"statement", statement, "error", err)

		// The channel's synchronization state is undefined after a timeout
		// and gone entirely after EOF; release it either way.
		d.state = stateStopped
		_ = d.channel.Terminate()

		return nil, &errors.TransportError{Op: "run", Err: err}
	}

	return d.classify(out), nil
}

// IsError reports the sticky error flag from the most recent classified Run.
func (d *Driver) IsError() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastErr
}

// ErrorMessage returns the sticky error text from the most recent classified Run.
func (d *Driver) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastErrMsg
}

// writeScratch writes the statement to a fresh scratch file in the working
// directory and returns its absolute path. A trailing newline is guaranteed
// so the client's source command reads a complete final line.
func (d *Driver) writeScratch(statement string) (string, error) {
	dir := d.opts.Cwd
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}

		dir = wd
	}

	if !strings.HasSuffix(statement, "\n") {
		statement += "\n"
	}

	path, err := filepath.Abs(filepath.Join(dir, scratchPrefix+ulid.Make().String()))
	if err != nil {
		return "", fmt.Errorf("resolve scratch path: %w", err)
	}

	if err := os.WriteFile(path, []byte(statement), 0o600); err != nil {
		return "", fmt.Errorf("write scratch file: %w", err)
	}

	return path, nil
}

// classify turns captured output into a Result and updates the sticky flags.
// ERROR-prefixed output is returned verbatim; no output at all is normalized
// to the fixed acknowledgement string.
func (d *Driver) classify(out string) *Result {
	if strings.HasPrefix(out, errorMarker) {
		d.lastErr = true
		d.lastErrMsg = out

		return &Result{Text: out, Err: true}
	}

	d.lastErr = false
	d.lastErrMsg = ""

	if strings.TrimSpace(out) == "" {
		return &Result{Text: queryOK}
	}

	return &Result{Text: out}
}
