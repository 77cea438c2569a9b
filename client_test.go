package mariadbclient

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubClient behaves like the mariadb client for the end-to-end scenario:
// prompt on launch, quit on request, and every sourced file is played back.
const stubClient = `#!/bin/sh
printf 'MariaDB [test]> '
while IFS= read -r line; do
  case "$line" in
    quit) exit 0 ;;
    "source "*) cat "${line#source }" ;;
  esac
  printf 'MariaDB [test]> '
done
`

func writeStubClient(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub children require a Unix shell and pty")
	}

	path := filepath.Join(t.TempDir(), "mariadb-stub")
	require.NoError(t, os.WriteFile(path, []byte(stubClient), 0o755))

	return path
}

func TestEndToEndStatementRoundTrip(t *testing.T) {
	bin := writeStubClient(t)
	cwd := t.TempDir()

	client := New()

	err := client.Start(context.Background(),
		WithClientBin(bin),
		WithCwd(cwd),
	)
	require.NoError(t, err)
	defer client.Stop()

	result, err := client.Run(context.Background(), "SELECT 1;", 10*time.Second)
	require.NoError(t, err)

	// The stub plays the sourced scratch file back, so the reply proves the
	// handoff: the statement reached the child by reference, with its
	// trailing newline.
	require.Equal(t, "SELECT 1;\n", result.Text)
	require.False(t, result.Err)
	require.False(t, client.IsError())

	entries, err := os.ReadDir(cwd)
	require.NoError(t, err)
	require.Empty(t, entries, "no scratch file survives Run")
}

func TestEndToEndStopTwice(t *testing.T) {
	bin := writeStubClient(t)

	client := New()
	require.NoError(t, client.Start(context.Background(), WithClientBin(bin), WithCwd(t.TempDir())))

	require.NoError(t, client.Stop())
	require.NoError(t, client.Stop())
}

func TestStartLoginErrorDistinguishable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub children require a Unix shell and pty")
	}

	bin := filepath.Join(t.TempDir(), "mariadb-stub")
	script := `#!/bin/sh
printf "ERROR 1045 (28000): Access denied for user 'root'@'localhost'\n"
exit 1
`
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	err := New().Start(context.Background(), WithClientBin(bin))
	require.Error(t, err)

	var loginErr *LoginError
	ok := stderrors.As(err, &loginErr)
	require.True(t, ok)
}

// stubChannel exercises the public WithChannel injection point.
type stubChannel struct {
	mu    sync.Mutex
	sent  []string
	reply string
}

func (s *stubChannel) Send(_ context.Context, text string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, text)

	return s.reply, nil
}

func (s *stubChannel) Terminate() error { return nil }

func TestWithChannelBypassesProcessLaunch(t *testing.T) {
	stub := &stubChannel{reply: "ERROR 1064 (42000): syntax\n"}

	client := New()
	require.NoError(t, client.Start(context.Background(),
		WithChannel(stub),
		WithCwd(t.TempDir()),
	))
	defer client.Stop()

	result, err := client.Run(context.Background(), "SELEC;", time.Second)
	require.NoError(t, err)
	require.True(t, result.Err)
	require.True(t, client.IsError())
	require.Equal(t, result.Text, client.ErrorMessage())

	require.Len(t, stub.sent, 1)
	require.True(t, strings.HasPrefix(stub.sent[0], "source "))
}

func TestRunBeforeStart(t *testing.T) {
	_, err := New().Run(context.Background(), "SELECT 1;", time.Second)
	require.ErrorIs(t, err, ErrNotStarted)
}

func TestWithConfigSplitsOpaqueArgs(t *testing.T) {
	bin := writeStubClient(t)

	cfg := staticConfig{bin: bin, args: "-u root"}

	client := New()
	require.NoError(t, client.Start(context.Background(),
		WithConfig(cfg),
		WithCwd(t.TempDir()),
	))
	defer client.Stop()

	result, err := client.Run(context.Background(), "SELECT 1;", 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;\n", result.Text)
}

type staticConfig struct {
	bin  string
	args string
}

func (c staticConfig) ClientBin() string { return c.bin }

func (c staticConfig) Args() string { return c.args }
