// Package cli wires the s6ctl command surface: privilege-aware default
// paths, global switches, and one subcommand per control-plane verb.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/axondata/go-s6ctl"
)

// RootOptions holds the global flags shared by all commands. Empty path
// fields mean "use the privilege-dependent default".
type RootOptions struct {
	// DryRun prints every external invocation instead of executing it.
	DryRun bool
	// Foreground runs the daemon in the foreground instead of a detached
	// session (init daemon only).
	Foreground bool

	DBDir   string
	EnvDir  string
	Live    string // live-state directory; log file for "init daemon"
	ScanDir string
}

// NewRootCommand creates the s6ctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "s6ctl",
		Short: "control plane for an s6 supervision tree",
		Long: `s6ctl drives an s6/s6-rc supervision tree: it bootstraps s6-svscan,
compiles service definitions into immutable versioned databases, switches
the live tree between them, and manages the envdir the services consume.

Default paths depend on privilege: root operates on the fixed system
locations, other users on a per-user tree under $HOME and a uid-keyed
directory under the temp dir. Any explicit path flag overrides its default.`,
		SilenceUsage:  true, // the caller prints errors and exit codes
		SilenceErrors: true,
		// Global switches form a leading run before the verb; anything after
		// an rc verb is forwarded untouched.
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Every required tool is checked before any verb runs so a
			// single invocation reports the full list of missing binaries.
			return s6ctl.CheckTools(s6ctl.RequiredTools...)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.DryRun, "dry-run", "n", false, "print external commands instead of running them")
	pf.BoolVarP(&opts.Foreground, "foreground", "a", false, "run the daemon in the foreground, not a detached session")
	pf.StringVarP(&opts.DBDir, "db-dir", "d", "", "database root directory")
	pf.StringVarP(&opts.EnvDir, "env-dir", "e", "", "environment store directory")
	pf.StringVarP(&opts.Live, "live", "l", "", "live state directory (log file for \"init daemon\")")
	pf.StringVarP(&opts.ScanDir, "service-dir", "s", "", "service scan directory")

	cmd.AddCommand(
		newInitCommand(opts),
		newCompileDBCommand(opts),
		newSwitchLiveDBCommand(opts),
		newChangeDefaultDBCommand(opts),
		newUpgradeDBCommand(opts),
		newSVCommand(opts),
		newRCCommand(opts),
		newEnvCommand(opts),
	)

	return cmd
}

// Paths resolves the effective layout for this invocation: defaults computed
// from the invoking user, overridden by any explicitly supplied flag.
func (o *RootOptions) Paths() s6ctl.Paths {
	home, _ := os.UserHomeDir()
	p := s6ctl.DefaultPaths(os.Geteuid(), home, os.TempDir())

	if o.DBDir != "" {
		p.DBDir = o.DBDir
	}
	if o.EnvDir != "" {
		p.EnvDir = o.EnvDir
	}
	if o.Live != "" {
		p.LiveDir = o.Live
	}
	if o.ScanDir != "" {
		p.ScanDir = o.ScanDir
	}
	return p
}

// runner selects the execution strategy for this invocation.
func (o *RootOptions) runner(cmd *cobra.Command) s6ctl.Runner {
	if o.DryRun {
		return &s6ctl.DryRunner{W: cmd.OutOrStdout()}
	}
	return &s6ctl.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

// dbManager builds a DBManager over the resolved paths.
func (o *RootOptions) dbManager(cmd *cobra.Command) *s6ctl.DBManager {
	p := o.Paths()
	return s6ctl.NewDBManager(p.DBDir, p.LiveDir, o.runner(cmd))
}

// controller builds a Controller over the resolved paths.
func (o *RootOptions) controller(cmd *cobra.Command) *s6ctl.Controller {
	p := o.Paths()
	return &s6ctl.Controller{LiveDir: p.LiveDir, ScanDir: p.ScanDir, Runner: o.runner(cmd)}
}
