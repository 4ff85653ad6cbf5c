package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axondata/go-s6ctl"
)

func newEnvCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the directory-backed environment store",
	}
	cmd.AddCommand(
		newEnvAddCommand(opts),
		newEnvDelCommand(opts),
		newEnvListCommand(opts),
		newEnvGetCommand(opts),
	)
	return cmd
}

// envStore builds an EnvStore over the resolved environment directory.
func envStore(opts *RootOptions, cmd *cobra.Command) *s6ctl.EnvStore {
	return &s6ctl.EnvStore{Dir: opts.Paths().EnvDir, Runner: opts.runner(cmd)}
}

func newEnvAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add VAR VAL",
		Short: "Set a variable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return envStore(opts, cmd).Add(args[0], args[1])
		},
	}
}

func newEnvDelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "del VAR",
		Short: "Remove a variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return envStore(opts, cmd).Del(args[0])
		},
	}
}

func newEnvListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List variable names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := envStore(opts, cmd).List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newEnvGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get VAR",
		Short: "Print a variable's value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := envStore(opts, cmd).Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
