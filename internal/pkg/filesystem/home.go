package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// AppDir is the per-user directory holding config and local storage.
func AppDir() string {
	return filepath.Join(UserHomeDir(), ".brief")
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if path == "~" {
		return UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}
