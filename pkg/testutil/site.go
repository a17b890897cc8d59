package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LandingPage is an entry file containing every required element.
const LandingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>LLM Proxy</title>
  <link rel="stylesheet" href="assets/css/landing.css">
</head>
<body>
  <h1>LLM Proxy</h1>
  <script src="assets/js/i18n.js"></script>
  <script src="assets/js/landing.js"></script>
</body>
</html>
`

const workflow = `name: Deploy
on:
  push:
    branches: [main]
jobs:
  deploy:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/deploy-pages@v4
`

// ValidSite returns a complete, publishable site tree keyed by
// slash-separated relative path.
func ValidSite() map[string]string {
	return map[string]string{
		"index.html":                            LandingPage,
		"assets/css/landing.css":                "body { margin: 0; }\n",
		"assets/js/landing.js":                  "console.log('landing');\n",
		"assets/js/i18n.js":                     "window.i18n = {};\n",
		"docs/UNIFIED_API.md":                   "# Unified API\n",
		".github/workflows/pages.yml":           workflow,
		".github/workflows/update-gh-pages.yml": workflow,
		"scripts/setup-gh-pages.sh":             "#!/bin/sh\ngit checkout --orphan gh-pages\n",
		"docs/GITHUB_PAGES_SETUP.md":            "# Setup\n",
	}
}

// WriteTree writes files under root, creating parent directories.
// Shell scripts are written executable.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		mode := os.FileMode(0o644)
		if strings.HasSuffix(name, ".sh") {
			mode = 0o755
		}
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		// WriteFile keeps the mode of an existing file and is subject to umask.
		if err := os.Chmod(path, mode); err != nil {
			t.Fatalf("chmod %s: %v", name, err)
		}
	}
}

// ValidSiteDir writes ValidSite into a fresh temp directory and returns it.
func ValidSiteDir(t testing.TB) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, ValidSite())
	return root
}
