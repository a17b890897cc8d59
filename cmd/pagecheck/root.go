package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vertti/pagecheck/pkg/config"
	"github.com/vertti/pagecheck/pkg/filecheck"
	"github.com/vertti/pagecheck/pkg/logging"
	"github.com/vertti/pagecheck/pkg/output"
	"github.com/vertti/pagecheck/pkg/rootdir"
	"github.com/vertti/pagecheck/pkg/sitecheck"
)

var (
	rootDir    string
	strict     bool
	verbose    bool
	noColor    bool
	configFile string
)

// colorSupported is swapped in tests.
var colorSupported = output.ColorSupported

var rootCmd = &cobra.Command{
	Use:   "pagecheck",
	Short: "Validate a static site tree before publishing to GitHub Pages",
	Long: `pagecheck verifies that a static site is ready for GitHub Pages: the
required files exist, the landing page, stylesheet and script are not empty,
index.html references its assets and the project name, and the asset and
docs directories are in place.

Run it with no arguments from anywhere inside the repository. It exits 0 when
every check passes and 1 otherwise.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPagecheck,
}

func init() {
	rootCmd.Flags().StringVar(&rootDir, "root", "", "site root (default: search up from current directory)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "also validate workflow files and the setup script")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (default: .pagecheck.yaml in the site root if present)")
}

func runPagecheck(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlag("root", cmd.Flags().Lookup("root")); err != nil {
		return err
	}
	if err := v.BindPFlag("strict", cmd.Flags().Lookup("strict")); err != nil {
		return err
	}

	cfg, err := config.Load(v, configFile, configDirs()...)
	if err != nil {
		return err
	}
	if noColor {
		cfg.Color = false
	}

	log := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	}).WithComponent("pagecheck")
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("file", used).Msg("loaded config")
	}

	root, err := resolveRoot(cfg.Root, log)
	if err != nil {
		return err
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("failed to enter site root: %w", err)
	}
	log.Debug().Str("root", root).Bool("strict", cfg.Strict).Msg("checking site")

	runner := &sitecheck.Runner{
		FS:     &filecheck.RealFileSystem{},
		Out:    output.NewPrinter(cmd.OutOrStdout(), cfg.Color && colorSupported()),
		Strict: cfg.Strict,
		Log:    log.WithComponent("sitecheck"),
	}

	report := runner.Run()
	if !report.OK() {
		log.Debug().Int("failed", len(report.Failed())).Msg("site checks failed")
		return sitecheck.ErrChecksFailed
	}
	return nil
}

// configDirs returns where .pagecheck.yaml is searched for: the site root
// when one can be found, then the working directory. The root comes from
// --root or PAGECHECK_ROOT here, since the config file is not read yet.
func configDirs() []string {
	explicit := rootDir
	if explicit == "" {
		explicit = os.Getenv(config.EnvPrefix + "_ROOT")
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	root, err := rootdir.Find(wd, explicit)
	if err != nil {
		return []string{"."}
	}
	return []string{root, "."}
}

// resolveRoot falls back to the working directory when no site root is found.
func resolveRoot(explicit string, log *logging.Logger) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	root, err := rootdir.Find(wd, explicit)
	switch {
	case errors.Is(err, rootdir.ErrNotFound):
		log.Warn().Str("dir", wd).Msg("no site root found above working directory, checking it as is")
		return wd, nil
	case err != nil:
		return "", err
	}
	return root, nil
}
