package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/pagecheck/pkg/check"
)

const (
	okGlyph   = "✅"
	failGlyph = "❌"
	rule      = 50
)

type palette struct {
	red, dim, reset string
}

var ansi = palette{red: "\033[31m", dim: "\033[2m", reset: "\033[0m"}

// ColorSupported reports whether stdout understands ANSI colors.
func ColorSupported() bool {
	return supportscolor.Stdout().SupportsColor
}

// Printer renders check progress as human-readable lines.
type Printer struct {
	w io.Writer
	c palette
}

// NewPrinter returns a Printer writing to w, with ANSI colors when color is true.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: w}
	if color {
		p.c = ansi
	}
	return p
}

// Banner prints the run title followed by a horizontal rule.
func (p *Printer) Banner(title string) {
	fmt.Fprintln(p.w, title)
	p.Rule()
}

// Rule prints a horizontal rule.
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("=", rule))
}

// Section prints a blank line and a section heading.
func (p *Printer) Section(icon, title string) {
	fmt.Fprintf(p.w, "\n%s %s:\n", icon, title)
}

// PrintResult outputs a check result as a single glyph-prefixed line.
func (p *Printer) PrintResult(r check.Result) {
	fmt.Fprintln(p.w, p.FormatResult(r))
}

// FormatResult renders r without a trailing newline.
//
//	✅ Landing page content: index.html (1234 bytes)
//	❌ Setup script: scripts/setup-gh-pages.sh - NOT FOUND
func (p *Printer) FormatResult(r check.Result) string {
	var b strings.Builder
	if r.OK() {
		b.WriteString(okGlyph)
	} else {
		b.WriteString(failGlyph)
	}
	b.WriteString(" ")
	b.WriteString(r.Name)
	if r.Subject != "" {
		b.WriteString(": ")
		b.WriteString(r.Subject)
	}
	if len(r.Details) == 0 {
		return b.String()
	}

	details := strings.Join(r.Details, ", ")
	if r.OK() {
		fmt.Fprintf(&b, " %s(%s)%s", p.c.dim, details, p.c.reset)
	} else {
		fmt.Fprintf(&b, " - %s%s%s", p.c.red, details, p.c.reset)
	}
	return b.String()
}

// Summary prints the closing block: a rule, the verdict and, on success,
// the numbered next steps.
func (p *Printer) Summary(ok bool, nextSteps []string) {
	fmt.Fprintln(p.w)
	p.Rule()
	if !ok {
		fmt.Fprintln(p.w, failGlyph+" Some tests failed. Please fix the issues before deploying.")
		return
	}
	fmt.Fprintln(p.w, "🎉 All tests passed! The static site structure is ready for GitHub Pages.")
	if len(nextSteps) == 0 {
		return
	}
	fmt.Fprintln(p.w, "\nNext steps:")
	for i, step := range nextSteps {
		fmt.Fprintf(p.w, "%d. %s\n", i+1, step)
	}
}
