package filecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vertti/pagecheck/pkg/check"
)

// ErrEmpty is reported when a path that must have content has size 0.
var ErrEmpty = errors.New("file is empty")

const (
	detailNotFound       = "NOT FOUND"
	detailEmptyOrMissing = "EMPTY OR NOT FOUND"
)

// Check verifies that a manifest path exists and meets requirements.
// With no constraints set it is a plain existence check.
type Check struct {
	Path       string     // path relative to the site root
	Label      string     // human-readable description, e.g. "Main landing page"
	ExpectDir  bool       // path must be a directory
	NotEmpty   bool       // path must be a file with size > 0
	Executable bool       // file must have an execute bit set
	FS         FileSystem // injected for testing
}

// Run executes the file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:    c.Label,
		Subject: c.Path,
	}
	if result.Name == "" {
		result.Name = "file"
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err) && c.NotEmpty:
			return result.Fail(detailEmptyOrMissing, err)
		case os.IsNotExist(err):
			return result.Fail(detailNotFound, err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Fail(fmt.Sprintf("stat failed: %v", err), fmt.Errorf("stat failed: %w", err))
		}
	}

	if c.ExpectDir {
		if !info.IsDir() {
			return result.Fail("expected directory, got file", fmt.Errorf("%s is not a directory", c.Path))
		}
		return result.Pass()
	}

	// --not-empty: size only, so a directory with a non-zero size passes.
	if c.NotEmpty {
		if info.Size() == 0 {
			return result.Fail(detailEmptyOrMissing, fmt.Errorf("%s: %w", c.Path, ErrEmpty))
		}
		result.AddDetailf("%d bytes", info.Size())
	}

	if c.Executable {
		if info.IsDir() {
			return result.Fail("expected file, got directory", fmt.Errorf("%s is a directory", c.Path))
		}
		if !isExecutable(info.Mode()) {
			return result.Fail("not executable", fmt.Errorf("%s is not executable", c.Path))
		}
	}

	return result.Pass()
}

// isExecutable checks if the mode has any execute bit set (owner, group, or other)
func isExecutable(mode fs.FileMode) bool {
	return mode&0o111 != 0
}
