package common

import (
	"os"
	"path/filepath"
)

const socketEnv = "HANPAD_SOCKET"

// DefaultSocketPath returns the unix socket path used by the translation
// server when none is configured.
func DefaultSocketPath() string {
	if env := os.Getenv(socketEnv); env != "" {
		return env
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "hanpad.sock")
	}
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, "hanpad", "hanpad.sock")
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, "hanpad", "hanpad.sock")
	}
	return filepath.Join(os.TempDir(), "hanpad.sock")
}

// SocketPath picks the first non-empty of the flag and config values and
// falls back to DefaultSocketPath.
func SocketPath(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return DefaultSocketPath()
}

// EnsureSocketDir ensures that the directory containing the unix socket exists.
func EnsureSocketDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
