package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vertti/pagecheck/pkg/sitecheck"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	err := rootCmd.Execute()
	reportError(os.Stderr, err)
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// reportError prints errors other than failed checks, which have already
// been reported on stdout.
func reportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, sitecheck.ErrChecksFailed) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
