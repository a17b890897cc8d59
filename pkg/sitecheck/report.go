package sitecheck

import "github.com/vertti/pagecheck/pkg/check"

// Phase groups the results of one section of a run.
type Phase struct {
	Icon    string
	Title   string
	Results []check.Result
}

// Report is the outcome of a single run. The aggregate starts true and is
// cleared by the first failing result.
type Report struct {
	Phases []Phase
	ok     bool
}

func newReport() *Report {
	return &Report{ok: true}
}

func (r *Report) add(p Phase) {
	if !check.AllOK(p.Results) {
		r.ok = false
	}
	r.Phases = append(r.Phases, p)
}

// OK reports whether every check in the run passed.
func (r *Report) OK() bool {
	return r.ok
}

// Results returns every result in run order.
func (r *Report) Results() []check.Result {
	var all []check.Result
	for _, p := range r.Phases {
		all = append(all, p.Results...)
	}
	return all
}

// Failed returns the failing results in run order.
func (r *Report) Failed() []check.Result {
	return check.Failed(r.Results())
}

// ExitCode maps the aggregate result to a process exit status.
func (r *Report) ExitCode() int {
	if r.ok {
		return 0
	}
	return 1
}
