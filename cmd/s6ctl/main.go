// Command s6ctl is the control plane for an s6/s6-rc supervision tree.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/axondata/go-s6ctl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "s6ctl: %v\n", err)

		// Failures of external tools propagate their own exit code.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
