// Package htmlcheck smoke-tests an HTML entry page by literal substring
// containment. It deliberately does not parse markup: reformatted or
// reordered documents pass as long as each fragment is present.
package htmlcheck

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/manifest"
)

// ErrInvalidUTF8 is reported when the entry file is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

const (
	resultPrefix   = "HTML content"
	detailNotFound = "NOT FOUND"
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// Check verifies that an HTML file contains every required element.
type Check struct {
	File     string             // path to the HTML file
	Elements []manifest.Element // substrings that must be present, in report order
	FS       FileSystem         // injected for testing
}

// Run executes the content check. It returns one result per element, or a
// single failed result when the file cannot be read or decoded.
func (c *Check) Run() []check.Result {
	content, err := c.read()
	if err != nil {
		result := check.Result{Name: resultPrefix, Subject: c.File}
		return []check.Result{result.Fail(err.Error(), err)}
	}

	results := make([]check.Result, 0, len(c.Elements))
	for _, el := range c.Elements {
		results = append(results, checkElement(content, el))
	}
	return results
}

func (c *Check) read() (string, error) {
	data, err := c.FS.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to decode file: %w", ErrInvalidUTF8)
	}
	return string(data), nil
}

func checkElement(content string, el manifest.Element) check.Result {
	result := check.Result{
		Name:    resultPrefix + " - " + el.Label,
		Subject: fmt.Sprintf("%q", el.Needle),
	}
	if !strings.Contains(content, el.Needle) {
		return result.Fail(detailNotFound, fmt.Errorf("content does not contain %q", el.Needle))
	}
	return result.Pass()
}
