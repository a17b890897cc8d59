package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/sitecheck"
	"github.com/vertti/pagecheck/pkg/testutil"
)

// executeCommand runs the root command from dir and restores the working
// directory afterwards, since a run changes into the site root.
func executeCommand(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := executeCommand(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "pagecheck")
}

func TestHelpFlag(t *testing.T) {
	out, _, err := executeCommand(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "GitHub Pages")
	assert.Contains(t, out, "--strict")
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "index.html")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, sitecheck.ErrChecksFailed)
}

func TestNoArgs_FromSiteRoot(t *testing.T) {
	root := testutil.ValidSiteDir(t)

	out, _, err := executeCommand(t, root)

	require.NoError(t, err)
	assert.Contains(t, out, "🎉 All tests passed!")
	assert.Contains(t, out, "Next steps:")
	assert.Equal(t, 0, exitCode(err))
}

func TestNoArgs_FromNestedDirectory(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	out, _, err := executeCommand(t, filepath.Join(root, "assets", "js"))

	require.NoError(t, err)
	assert.Contains(t, out, "🎉 All tests passed!")
	wd, err := os.Getwd()
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot, "run should change into the site root")
}

func TestExplicitRoot(t *testing.T) {
	root := testutil.ValidSiteDir(t)

	out, _, err := executeCommand(t, t.TempDir(), "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "All tests passed")
}

func TestExplicitRootMissing(t *testing.T) {
	_, _, err := executeCommand(t, t.TempDir(), "--root", filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, sitecheck.ErrChecksFailed)
}

func TestMissingFileFails(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	require.NoError(t, os.Remove(filepath.Join(root, "assets", "js", "i18n.js")))

	out, _, err := executeCommand(t, root)

	assert.ErrorIs(t, err, sitecheck.ErrChecksFailed)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "❌ Internationalization JavaScript: assets/js/i18n.js - NOT FOUND")
	assert.Contains(t, out, "Some tests failed")
	assert.Equal(t, 2, strings.Count(out, "❌"), "one failed check plus the summary line")
}

func TestEmptyDirectoryFails(t *testing.T) {
	out, _, err := executeCommand(t, t.TempDir())

	assert.ErrorIs(t, err, sitecheck.ErrChecksFailed)
	assert.Contains(t, out, "❌ Main landing page: index.html - NOT FOUND")
	assert.Contains(t, out, "❌ HTML content: index.html - failed to read file")
}

func TestStrictFlag(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	testutil.WriteTree(t, root, map[string]string{".github/workflows/pages.yml": "name: broken\n"})

	_, _, err := executeCommand(t, root)
	require.NoError(t, err)

	out, _, err := executeCommand(t, root, "--strict")
	assert.ErrorIs(t, err, sitecheck.ErrChecksFailed)
	assert.Contains(t, out, `❌ GitHub Pages workflow: .github/workflows/pages.yml - missing "on" trigger`)
}

func TestStrictFromConfigFile(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	testutil.WriteTree(t, root, map[string]string{
		".github/workflows/pages.yml": "on: push\n",
		".pagecheck.yaml":             "strict: true\n",
	})

	out, _, err := executeCommand(t, root)

	assert.ErrorIs(t, err, sitecheck.ErrChecksFailed)
	assert.Contains(t, out, "Testing publishing workflow")
}

func TestConfigFromSiteRoot_WhenRunFromNestedDirectory(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	testutil.WriteTree(t, root, map[string]string{
		".github/workflows/pages.yml": "on: push\n",
		".pagecheck.yaml":             "strict: true\n",
	})

	out, _, err := executeCommand(t, filepath.Join(root, "assets"))

	assert.ErrorIs(t, err, sitecheck.ErrChecksFailed)
	assert.Contains(t, out, "Testing publishing workflow")
	assert.Contains(t, out, `❌ GitHub Pages workflow: .github/workflows/pages.yml - missing "jobs"`)
}

func TestConfigFromExplicitRoot(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	testutil.WriteTree(t, root, map[string]string{".pagecheck.yaml": "strict: true\n"})

	out, _, err := executeCommand(t, t.TempDir(), "--root", root)

	require.NoError(t, err)
	assert.Contains(t, out, "Testing publishing workflow")
}

func TestStrictFromEnvironment(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	t.Setenv("PAGECHECK_STRICT", "true")

	out, _, err := executeCommand(t, root)

	require.NoError(t, err)
	assert.Contains(t, out, "Testing publishing workflow")
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("PAGECHECK_LOGGING_FORMAT", "xml")

	_, _, err := executeCommand(t, testutil.ValidSiteDir(t))

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestVerboseLogsToStderr(t *testing.T) {
	root := testutil.ValidSiteDir(t)

	out, stderr, err := executeCommand(t, root, "--verbose")

	require.NoError(t, err)
	assert.Contains(t, stderr, "checking site")
	assert.Contains(t, stderr, "phase complete")
	assert.NotContains(t, out, "phase complete")
}

func TestNoColor(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	require.NoError(t, os.Remove(filepath.Join(root, "docs", "UNIFIED_API.md")))

	colorSupported = func() bool { return true }
	defer func() { colorSupported = noColorSupport }()

	out, _, _ := executeCommand(t, root)
	assert.Contains(t, out, "\033[31m", "color is on when supported")

	out, _, _ = executeCommand(t, root, "--no-color")

	assert.NotContains(t, out, "\033[")
}

func TestIdempotentRuns(t *testing.T) {
	root := testutil.ValidSiteDir(t)
	require.NoError(t, os.Remove(filepath.Join(root, "scripts", "setup-gh-pages.sh")))

	out1, _, err1 := executeCommand(t, root)
	out2, _, err2 := executeCommand(t, root)

	assert.Equal(t, exitCode(err1), exitCode(err2))
	assert.Equal(t, out1, out2)
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer

	reportError(&buf, nil)
	reportError(&buf, sitecheck.ErrChecksFailed)
	assert.Empty(t, buf.String())

	reportError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(sitecheck.ErrChecksFailed))
	assert.Equal(t, 1, exitCode(errors.New("config")))
}
