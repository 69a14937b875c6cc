package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var (
	// ErrInvalidPort is returned when the configured port is outside 1..65535.
	ErrInvalidPort = errors.New("port out of range")
	// ErrRootMissing is returned when the served directory does not exist.
	// It is not fatal: requests simply fail to resolve.
	ErrRootMissing = errors.New("served directory does not exist")
	// ErrBind is returned when the listener cannot be opened.
	ErrBind = errors.New("failed to bind listener")
)

// Config holds configuration for the local static server.
// It is built once at startup and never mutated afterwards.
type Config struct {
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port" default:"8000"`
	// Host is the interface to bind. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Root is the served directory. Empty resolves to the parent of the
	// directory holding the running executable.
	Root string `mapstructure:"root" default:""`
	// Index is the file looked up when a request maps to a directory.
	Index string `mapstructure:"index" default:"index.html"`
	// Browse enables directory listings for directories without an index.
	Browse bool `mapstructure:"browse" default:"true"`
	// OpenBrowser launches the default browser once the listener is bound.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may drain.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// DefaultPort is the port used when nothing else is configured.
const DefaultPort = 8000

// Validate checks the port range and the served directory.
// A missing root yields ErrRootMissing, which callers may treat as a warning.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	info, err := os.Stat(c.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootMissing, c.Root)
		}
		return fmt.Errorf("failed to stat served directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("served path %s is not a directory", c.Root)
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URLs returns the local URLs announced in the startup banner.
// The first entry is the one handed to the browser.
func (c Config) URLs() []string {
	port := strconv.Itoa(c.Port)
	return []string{
		"http://localhost:" + port,
		"http://127.0.0.1:" + port,
	}
}

// ShutdownTimeout returns the drain timeout, falling back to 5 seconds.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ResolveRoot returns an absolute served directory.
// An empty root resolves to one level above the executable's directory,
// so a binary built into <project>/bin serves <project>.
func ResolveRoot(root string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root %s: %w", root, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(filepath.Dir(exe)), nil
}
