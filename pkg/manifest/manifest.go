// Package manifest holds the fixed description of a publishable site tree:
// which paths must exist, which must have content, what the entry page must
// contain and which directories GitHub Pages expects.
package manifest

// Entry is a path relative to the site root together with its label.
type Entry struct {
	Path  string
	Label string
}

// Element is a literal substring the entry file must contain.
type Element struct {
	Needle string
	Label  string
}

const (
	// EntryFile is the site's main HTML document.
	EntryFile = "index.html"

	// ProjectName must appear somewhere in the entry file.
	ProjectName = "LLM Proxy"

	// SiteURL is where GitHub Pages publishes the site.
	SiteURL = "https://caoergou.github.io/LLMProxy/"

	// SetupScript creates the gh-pages branch.
	SetupScript = "scripts/setup-gh-pages.sh"
)

// Files returns the paths that must exist.
func Files() []Entry {
	return []Entry{
		{EntryFile, "Main landing page"},
		{"assets/css/landing.css", "Main CSS file"},
		{"assets/js/landing.js", "Main JavaScript file"},
		{"assets/js/i18n.js", "Internationalization JavaScript"},
		{"docs/UNIFIED_API.md", "API documentation"},
		{".github/workflows/pages.yml", "GitHub Pages workflow"},
		{".github/workflows/update-gh-pages.yml", "Update workflow"},
		{SetupScript, "Setup script"},
		{"docs/GITHUB_PAGES_SETUP.md", "Setup documentation"},
	}
}

// ContentFiles returns the paths that must be non-empty.
func ContentFiles() []Entry {
	return []Entry{
		{EntryFile, "Landing page content"},
		{"assets/css/landing.css", "CSS content"},
		{"assets/js/landing.js", "JavaScript content"},
	}
}

// RequiredElements returns the substrings the entry file must contain, in
// reporting order.
func RequiredElements() []Element {
	return []Element{
		{"<!DOCTYPE html>", "HTML5 doctype"},
		{"<html", "HTML tag"},
		{"<head>", "Head section"},
		{"<title", "Title tag"},
		{"assets/css/landing.css", "CSS link"},
		{"assets/js/landing.js", "JavaScript link"},
		{ProjectName, "Project name in content"},
	}
}

// Directories returns the directories gh-pages publishing relies on.
func Directories() []string {
	return []string{"assets", "docs", "assets/css", "assets/js"}
}

// Workflows returns the GitHub Actions workflow definitions.
func Workflows() []Entry {
	return []Entry{
		{".github/workflows/pages.yml", "GitHub Pages workflow"},
		{".github/workflows/update-gh-pages.yml", "Update workflow"},
	}
}

// NextSteps returns the instructions printed after a successful run.
func NextSteps() []string {
	return []string{
		"Run ./" + SetupScript + " to create the gh-pages branch",
		"Configure GitHub Pages to use the gh-pages branch",
		"Your site will be available at: " + SiteURL,
	}
}
