package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	return path
}

// ExpandPath expands a leading ~ and any $VAR or ${VAR} references.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	return ExpandTilde(os.ExpandEnv(path))
}
