// Package sitecheck runs the full static-site validation: file existence,
// file content, HTML structure and directory layout, in that order.
package sitecheck

import (
	"errors"

	"github.com/vertti/pagecheck/pkg/check"
	"github.com/vertti/pagecheck/pkg/filecheck"
	"github.com/vertti/pagecheck/pkg/htmlcheck"
	"github.com/vertti/pagecheck/pkg/logging"
	"github.com/vertti/pagecheck/pkg/manifest"
	"github.com/vertti/pagecheck/pkg/workflowcheck"
)

// ErrChecksFailed is returned by callers when a run's aggregate result is false.
var ErrChecksFailed = errors.New("site checks failed")

const title = "🧪 Testing GitHub Pages static site structure..."

// Reporter receives progress as the run advances.
type Reporter interface {
	Banner(title string)
	Section(icon, title string)
	PrintResult(r check.Result)
	Summary(ok bool, nextSteps []string)
}

type phaseSpec struct {
	icon, title string
	run         func() []check.Result
}

// Runner validates a site tree. It keeps no state between runs.
type Runner struct {
	FS     filecheck.FileSystem // paths are relative to the site root
	Out    Reporter             // optional
	Strict bool                 // also check workflow definitions and the setup script
	Log    *logging.Logger      // optional
}

// Run executes every phase and returns the report.
func (r *Runner) Run() *Report {
	log := r.Log
	if log == nil {
		log = logging.Nop()
	}
	report := newReport()

	if r.Out != nil {
		r.Out.Banner(title)
	}

	phases := []phaseSpec{
		{"📁", "Testing file existence", r.existence},
		{"📏", "Testing file content", r.content},
		{"🔍", "Testing HTML structure", r.structure},
		{"📂", "Testing directory structure for gh-pages compatibility", r.directories},
	}
	if r.Strict {
		phases = append(phases, phaseSpec{"⚙️", "Testing publishing workflow", r.workflow})
	}

	for _, p := range phases {
		if r.Out != nil {
			r.Out.Section(p.icon, p.title)
		}
		phase := Phase{Icon: p.icon, Title: p.title}
		for _, res := range p.run() {
			if r.Out != nil {
				r.Out.PrintResult(res)
			}
			phase.Results = append(phase.Results, res)
		}
		report.add(phase)
		log.Debug().
			Str("phase", p.title).
			Int("checks", len(phase.Results)).
			Int("failed", len(check.Failed(phase.Results))).
			Msg("phase complete")
	}

	if r.Out != nil {
		r.Out.Summary(report.OK(), manifest.NextSteps())
	}
	return report
}

func runAll(checks []check.Checker) []check.Result {
	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run())
	}
	return results
}

func (r *Runner) existence() []check.Result {
	var checks []check.Checker
	for _, e := range manifest.Files() {
		checks = append(checks, &filecheck.Check{Path: e.Path, Label: e.Label, FS: r.FS})
	}
	return runAll(checks)
}

func (r *Runner) content() []check.Result {
	var checks []check.Checker
	for _, e := range manifest.ContentFiles() {
		checks = append(checks, &filecheck.Check{Path: e.Path, Label: e.Label, NotEmpty: true, FS: r.FS})
	}
	return runAll(checks)
}

func (r *Runner) structure() []check.Result {
	var c check.MultiChecker = &htmlcheck.Check{
		File:     manifest.EntryFile,
		Elements: manifest.RequiredElements(),
		FS:       r.FS,
	}
	return c.Run()
}

func (r *Runner) directories() []check.Result {
	var results []check.Result
	for _, dir := range manifest.Directories() {
		c := &filecheck.Check{Path: dir, ExpectDir: true, FS: r.FS}
		result := c.Run()
		if result.OK() {
			result.Name = "Directory exists"
		} else {
			result.Name = "Directory missing"
		}
		results = append(results, result)
	}
	return results
}

func (r *Runner) workflow() []check.Result {
	var checks []check.Checker
	for _, e := range manifest.Workflows() {
		checks = append(checks, &workflowcheck.Check{File: e.Path, Label: e.Label, FS: r.FS})
	}
	checks = append(checks, &filecheck.Check{
		Path:       manifest.SetupScript,
		Label:      "Setup script is executable",
		Executable: true,
		FS:         r.FS,
	})
	return runAll(checks)
}
