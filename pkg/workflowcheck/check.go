// Package workflowcheck verifies that a GitHub Actions workflow definition is
// a YAML mapping with a trigger and at least one job.
package workflowcheck

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vertti/pagecheck/pkg/check"
)

var (
	// ErrNotMapping indicates the document root is not a YAML mapping.
	ErrNotMapping = errors.New("workflow must be a YAML mapping")

	// ErrMissingKey indicates a required top-level key is absent.
	ErrMissingKey = errors.New("missing top-level key")

	// ErrNoJobs indicates the jobs mapping is empty.
	ErrNoJobs = errors.New("workflow defines no jobs")
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// Check verifies one workflow file.
type Check struct {
	File  string     // path to the workflow file
	Label string     // e.g. "GitHub Pages workflow"
	FS    FileSystem // injected for testing
}

// Run executes the workflow check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:    c.Label,
		Subject: c.File,
	}
	if result.Name == "" {
		result.Name = "workflow"
	}

	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		return result.Fail(fmt.Sprintf("failed to read file: %v", err), fmt.Errorf("failed to read file: %w", err))
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return result.Fail(fmt.Sprintf("invalid YAML: %v", err), fmt.Errorf("invalid YAML: %w", err))
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return result.Fail("expected a mapping at top level", ErrNotMapping)
	}

	keys := topLevel(doc.Content[0])

	// YAML 1.1 readers turn a bare `on` into true; yaml.v3 keeps it a string.
	if _, ok := keys["on"]; !ok {
		return result.Fail(`missing "on" trigger`, fmt.Errorf("%w: on", ErrMissingKey))
	}

	jobs, ok := keys["jobs"]
	if !ok {
		return result.Fail(`missing "jobs"`, fmt.Errorf("%w: jobs", ErrMissingKey))
	}
	if jobs.Kind != yaml.MappingNode || len(jobs.Content) == 0 {
		return result.Fail("no jobs defined", ErrNoJobs)
	}

	result.AddDetailf("%d job(s)", len(jobs.Content)/2)
	return result.Pass()
}

// topLevel indexes a mapping node's values by key.
func topLevel(m *yaml.Node) map[string]*yaml.Node {
	keys := make(map[string]*yaml.Node, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys[m.Content[i].Value] = m.Content[i+1]
	}
	return keys
}
