package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"time"

	"github.com/mariadb-notebook/mariadb-client-go/internal/errors"
)

// VersionProbeTimeout is the timeout for the client version probe.
const VersionProbeTimeout = 2 * time.Second

// binaryNames are the client names searched in PATH, in order of preference.
// The mysql client understands the same terminal interface.
var binaryNames = []string{"mariadb", "mysql"}

// Config holds configuration for client discovery.
type Config struct {
	// ClientBin is an explicit client path that skips PATH search.
	// If empty, discovery will search PATH and common locations.
	ClientBin string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the mariadb client binary.
type Discoverer interface {
	// Discover locates the client binary and probes its version.
	// Returns the path to the binary or a *errors.NotFoundError.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new client discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the client binary and probes its version.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	d.log.Debug("Discovering mariadb client binary")

	path, err := d.findClient()
	if err != nil {
		d.log.Error("No mariadb command line client found", "error", err)
		d.log.Error("Please install MariaDB from mariadb.org/download")

		return "", err
	}

	d.log.Debug("Found mariadb client binary", "path", path)

	d.probeVersion(ctx, path)

	return path, nil
}

// findClient locates the client binary.
func (d *discoverer) findClient() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.ClientBin != "" {
		d.log.Debug("Using explicit client path", "path", d.cfg.ClientBin)

		if _, err := os.Stat(d.cfg.ClientBin); err == nil {
			return d.cfg.ClientBin, nil
		}

		d.log.Debug("Explicit client path not found", "path", d.cfg.ClientBin)

		return "", &errors.NotFoundError{SearchedPaths: []string{d.cfg.ClientBin}}
	}

	searchedPaths := make([]string, 0, 8)

	for _, name := range binaryNames {
		d.log.Debug("Searching in PATH", "name", name)

		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found client in PATH", "path", path)

			return path, nil
		}
	}

	searchedPaths = append(searchedPaths, "$PATH")

	// Check common locations
	commonDirs := []string{"/usr/local/bin", "/usr/bin"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		commonDirs = append(commonDirs, filepath.Join(homeDir, ".local/bin"))
	}

	for _, dir := range commonDirs {
		for _, name := range binaryNames {
			path := filepath.Join(dir, name)
			searchedPaths = append(searchedPaths, path)
			d.log.Debug("Checking common path", "path", path)

			if _, err := os.Stat(path); err == nil {
				d.log.Debug("Found client at common path", "path", path)

				return path, nil
			}
		}
	}

	d.log.Warn("mariadb client not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.NotFoundError{SearchedPaths: searchedPaths}
}

// probeVersion runs the client's --version and logs the result.
// Errors are silently ignored; the probe never blocks discovery.
func (d *discoverer) probeVersion(ctx context.Context, path string) {
	ctx, cancel := context.WithTimeout(ctx, VersionProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")

	output, err := cmd.Output()
	if err != nil {
		d.log.Debug("Client version probe failed", "error", err)

		return
	}

	re := regexp.MustCompile(`([0-9]+\.[0-9]+\.[0-9]+)`)

	match := re.FindStringSubmatch(string(output))
	if match == nil {
		d.log.Debug("Could not parse client version", "output", string(output))

		return
	}

	d.log.Debug("Client version probe passed", "version", match[1])
}
