package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "", cfg.ClientBin())
	require.Equal(t, "", cfg.Args())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	content := "client_bin: /opt/mariadb/bin/mariadb\nargs: -u root --port=3307\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	require.Equal(t, "/opt/mariadb/bin/mariadb", cfg.ClientBin())
	require.Equal(t, "-u root --port=3307", cfg.Args())
}

func TestLoadFromMalformedFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600))

	_, err := LoadFrom(dir)
	require.Error(t, err)
}
