package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompileDBCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile_db DIR...",
		Short: "Compile service definitions into a new database snapshot",
		Long: `Compile the given service-definition directories into a fresh immutable
database under the database root and print its path. The running tree and
the default pointer are left alone; use switch_live_db / change_default_db
or upgrade_db for that.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.dbManager(cmd).Compile(cmd.Context(), args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newSwitchLiveDBCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "switch_live_db DB",
		Short: "Point the running tree at a compiled database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.dbManager(cmd).SwitchLive(cmd.Context(), args[0])
		},
	}
}

func newChangeDefaultDBCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "change_default_db DB",
		Short: "Point the default-database symlink at a compiled database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.dbManager(cmd).ChangeDefault(cmd.Context(), args[0])
		},
	}
}

func newUpgradeDBCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade_db DIR...",
		Short: "Compile, switch the live tree, and update the default pointer",
		Long: `Compile the given service-definition directories, switch the running tree
to the new database, and repoint the default-database symlink at it,
strictly in that order. A failed step is not rolled back: the compiled
database stays on disk so the failed step can be retried against it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.dbManager(cmd).Upgrade(cmd.Context(), args...)
			if path != "" {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return err
		},
	}
}
