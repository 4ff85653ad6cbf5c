package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axondata/go-s6ctl"
)

func newInitCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the supervision daemon or the registry directories",
	}
	cmd.AddCommand(newInitDaemonCommand(opts), newInitRegistryCommand(opts))
	return cmd
}

func newInitDaemonCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Start s6-svscan over the service directory",
		Long: `Start the supervision daemon in a detached tmux session, with its output
teed to the log file and the environment directory loaded around it.
Starting is idempotent: if the session already exists nothing happens.

With -a the daemon replaces the current process in the foreground instead.
With -l the log file location is overridden.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.Paths()
			logFile := p.LogFile
			if opts.Live != "" {
				// For this verb -l names the log file, not the live dir.
				logFile = opts.Live
			}

			b := &s6ctl.Bootstrap{
				ScanDir: p.ScanDir,
				LogFile: logFile,
				EnvDir:  p.EnvDir,
				Runner:  opts.runner(cmd),
			}

			started, err := b.Start(cmd.Context(), !opts.Foreground)
			if err != nil {
				return err
			}
			if opts.DryRun {
				return nil
			}
			if !started {
				fmt.Fprintf(cmd.OutOrStdout(), "session %q already running\n", s6ctl.SessionName)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "daemon started in session %q, logging to %s\n", s6ctl.SessionName, logFile)
			return nil
		},
	}
}

func newInitRegistryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Create the database root and environment store directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s6ctl.InitRegistry(opts.runner(cmd), opts.Paths())
		},
	}
}
