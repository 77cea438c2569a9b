package repl

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"

	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
	"github.com/mariadb-notebook/mariadb-client-go/internal/errors"
)

const (
	// readChunkSize is the buffer size for single reads from the pty.
	readChunkSize = 4096

	// terminateGrace bounds how long Terminate waits for the child to close
	// its stream after quit before killing it.
	terminateGrace = 5 * time.Second

	// quitCommand makes the client exit; stream closure afterwards is the
	// success signal, not a failure.
	quitCommand = "quit"
)

// chunk is one read from the pty, or the terminal error that ended reading.
type chunk struct {
	data []byte
	err  error
}

// Channel wraps an interactive child process attached to a pseudo-terminal.
//
// A Channel owns exactly one process handle and its pty for its whole
// lifetime: acquired in Launch, released unconditionally in Terminate. At
// most one Send is in flight at a time.
type Channel struct {
	log    *slog.Logger
	prompt *regexp.Regexp

	cmd    *exec.Cmd
	ptmx   *os.File
	group  *errgroup.Group
	chunks chan chunk

	mu      sync.Mutex // serializes Send and Terminate
	pending bytes.Buffer
	closed  bool // output stream reached EOF
}

// Compile-time verification that Channel implements the config.Channel interface.
var _ config.Channel = (*Channel)(nil)

// Launch spawns the child on a pseudo-terminal and consumes its startup
// banner up to the first prompt.
//
// Nothing is written to the child during launch; it is expected to print its
// own banner and first prompt. If the process exits before the prompt
// appears, Launch returns a *errors.LaunchError carrying the terminal output,
// which is the caller's only evidence for classifying the failure (for
// example a credential rejection).
func Launch(
	log *slog.Logger,
	path string,
	args []string,
	cwd string,
	prompt *regexp.Regexp,
	handshake time.Duration,
) (*Channel, error) {
	c := &Channel{
		log:    log.With("component", "repl_channel"),
		prompt: prompt,
	}

	//nolint:gosec // G204: spawning the configured client binary is the point
	cmd := exec.Command(path, args...)
	cmd.Dir = cwd

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", path, err)
	}

	c.cmd = cmd
	c.ptmx = ptmx

	// The terminal would otherwise echo every sent line back into the output
	// stream, ahead of the child's actual reply.
	if err := disableEcho(ptmx); err != nil {
		c.log.Warn("Failed to disable terminal echo", "error", err)
	}

	c.chunks = make(chan chunk)
	c.group = &errgroup.Group{}

	c.group.Go(func() error {
		defer close(c.chunks)

		buf := make([]byte, readChunkSize)

		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				c.chunks <- chunk{data: data}
			}

			if err != nil {
				// A pty read fails with EIO once the child side is gone;
				// every terminal read error means end of stream here.
				c.chunks <- chunk{err: io.EOF}

				return nil
			}
		}
	})

	c.log.Debug("Child process spawned", "pid", cmd.Process.Pid, "path", path)

	banner, err := c.expect(context.Background(), handshake)
	if err != nil {
		releaseErr := c.release()
		if releaseErr != nil {
			c.log.Debug("Release after failed handshake", "error", releaseErr)
		}

		if stderrors.Is(err, errors.ErrChannelClosed) {
			return nil, &errors.LaunchError{Output: banner, Err: err}
		}

		return nil, fmt.Errorf("startup handshake: %w", err)
	}

	c.log.Debug("Child ready, first prompt consumed", "banner_bytes", len(banner))

	return c, nil
}

// Send writes text plus a line terminator to the child, then blocks until the
// prompt pattern matches the output stream, the timeout elapses, or the
// stream closes. It returns all bytes read strictly before the matched
// prompt. A negative timeout waits indefinitely.
//
// After ErrPromptTimeout the channel's synchronization state is undefined;
// callers must treat it as unusable and Terminate it.
func (c *Channel) Send(ctx context.Context, text string, timeout time.Duration) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptmx == nil {
		return "", errors.ErrChannelNotLaunched
	}

	if c.closed {
		return "", errors.ErrChannelClosed
	}

	c.log.Debug("Sending line to child", "bytes", len(text))

	if _, err := c.ptmx.WriteString(text + "\n"); err != nil {
		return "", fmt.Errorf("write to child: %w", err)
	}

	out, err := c.expect(ctx, timeout)
	if err != nil {
		return out, err
	}

	return stripEcho(out, text), nil
}

// Terminate sends the quit command and waits for the output stream to close.
// End of stream is the expected, successful termination signal. The pty and
// process handle are released unconditionally, killing the child if it
// ignores quit. No-op if never launched; safe to call multiple times.
func (c *Channel) Terminate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptmx == nil {
		return nil
	}

	if !c.closed {
		if _, err := c.ptmx.WriteString(quitCommand + "\n"); err != nil {
			c.log.Debug("Quit write failed, child is likely already gone", "error", err)
		}

		grace := time.NewTimer(terminateGrace)
		defer grace.Stop()

	drain:
		for {
			select {
			case ck, ok := <-c.chunks:
				if !ok || ck.err != nil {
					c.closed = true

					c.log.Debug("Output stream closed after quit")

					break drain
				}
			case <-grace.C:
				c.log.Warn("Child did not exit after quit, killing", "pid", c.cmd.Process.Pid)

				break drain
			}
		}
	}

	return c.release()
}

// expect reads from the child until the prompt pattern matches the unconsumed
// stream, returning everything before the match (prompt excluded, CRLF
// normalized). The matched prompt bytes are consumed. A negative timeout
// waits indefinitely.
//
// On error the text captured so far is still returned for diagnostics.
func (c *Channel) expect(ctx context.Context, timeout time.Duration) (string, error) {
	var deadline <-chan time.Time

	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		deadline = timer.C
	}

	for {
		if loc := c.prompt.FindIndex(c.pending.Bytes()); loc != nil {
			before := string(c.pending.Bytes()[:loc[0]])
			c.pending.Next(loc[1])

			return normalize(before), nil
		}

		select {
		case ck, ok := <-c.chunks:
			if !ok || ck.err != nil {
				c.closed = true
				out := normalize(c.pending.String())
				c.pending.Reset()

				return out, errors.ErrChannelClosed
			}

			c.pending.Write(ck.data)

		case <-deadline:
			// Leave pending bytes in place; synchronization is lost either way.
			return normalize(c.pending.String()), errors.ErrPromptTimeout

		case <-ctx.Done():
			return normalize(c.pending.String()), ctx.Err()
		}
	}
}

// release closes the pty and reaps the child process. The pty close unblocks
// the reader goroutine; the child is killed first in case it is still alive
// (for example after a handshake timeout).
func (c *Channel) release() error {
	if c.ptmx == nil {
		return nil
	}

	if c.cmd.Process != nil {
		// No-op if the process already exited.
		_ = c.cmd.Process.Kill()
	}

	closeErr := c.ptmx.Close()
	c.ptmx = nil

	// Drain until the reader goroutine observes EOF and closes the channel.
	for range c.chunks {
	}

	_ = c.group.Wait()

	if err := c.cmd.Wait(); err != nil {
		c.log.Debug("Child process wait", "error", err)
	}

	c.closed = true
	c.log.Debug("Channel released")

	return closeErr
}

// normalize converts the terminal's CRLF line endings back to plain newlines.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// stripEcho drops a leading echoed copy of the sent line. Echo is disabled at
// launch, but not every platform applies the termios change before the first
// write lands.
func stripEcho(out, sent string) string {
	rest, ok := strings.CutPrefix(out, sent)
	if !ok {
		return out
	}

	return strings.TrimPrefix(rest, "\n")
}
