// Package rootdir locates the site root a run is relative to.
package rootdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no site root is found above the start directory.
var ErrNotFound = errors.New("site root not found")

// Find returns the absolute site root.
//
// An explicit path wins and must be an existing directory. Otherwise Find
// walks up from startDir and returns the first directory that holds
// index.html beside an assets directory, or a .git entry. The walk stops at
// the home directory and at the filesystem root.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		abs, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("site root: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("site root %s is not a directory", abs)
		}
		return abs, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		if isSiteRoot(currentDir) {
			return currentDir, nil
		}

		if currentDir == homeDir {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

func isSiteRoot(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, "assets"))
	return err == nil && info.IsDir()
}
