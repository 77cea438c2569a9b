package cli

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
	"github.com/mariadb-notebook/mariadb-client-go/internal/errors"
)

func TestBuildArgsFixedFlagsFirst(t *testing.T) {
	args := BuildArgs(&config.Options{Args: []string{"-u", "root", "--port=3307"}})

	require.Equal(t, []string{"-s", "-H", "-u", "root", "--port=3307"}, args)
}

func TestBuildArgsNoConnectionArgs(t *testing.T) {
	args := BuildArgs(&config.Options{})

	require.Equal(t, []string{"-s", "-H"}, args)
}

func TestSplitArgs(t *testing.T) {
	require.Equal(t, []string{"-u", "root", "--password=x"}, SplitArgs("  -u root\t--password=x "))
	require.Empty(t, SplitArgs(""))
	require.Empty(t, SplitArgs("   "))
}

func TestDiscoverExplicitPath(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "mariadb")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	d := NewDiscoverer(&Config{ClientBin: bin})

	path, err := d.Discover(context.Background())
	require.NoError(t, err)
	require.Equal(t, bin, path)
}

func TestDiscoverExplicitPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-binary")

	d := NewDiscoverer(&Config{ClientBin: missing})

	_, err := d.Discover(context.Background())
	require.Error(t, err)

	var notFound *errors.NotFoundError
	ok := stderrors.As(err, &notFound)
	require.True(t, ok)
	require.Equal(t, []string{missing}, notFound.SearchedPaths)
}

func TestDiscoverNilConfig(t *testing.T) {
	// Must not panic; whether a client is found depends on the machine.
	d := NewDiscoverer(nil)
	_, _ = d.Discover(context.Background())
}
