package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSVCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sv",
		Short: "Drive individual service lifecycle transitions",
	}
	cmd.AddCommand(
		newSVListCommand(opts),
		newSVStartCommand(opts),
		newSVStopCommand(opts),
		newSVRestartCommand(opts),
		newSVWaitCommand(opts),
	)
	return cmd
}

func newSVListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list {up|down}",
		Short: "List active or inactive services",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := opts.controller(cmd)
			switch args[0] {
			case "up":
				return ctl.ListUp(cmd.Context())
			case "down":
				return ctl.ListDown(cmd.Context())
			default:
				return fmt.Errorf("argument must be \"up\" or \"down\", got %q", args[0])
			}
		},
	}
}

func newSVStartCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start NAME",
		Short: "Request a service be brought up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.controller(cmd).Start(cmd.Context(), args[0])
		},
	}
}

func newSVStopCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stop NAME",
		Short: "Request a service be brought down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.controller(cmd).Stop(cmd.Context(), args[0])
		},
	}
}

func newSVRestartCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restart NAME",
		Short: "Restart a running service in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.controller(cmd).Restart(cmd.Context(), args[0])
		},
	}
}

func newSVWaitCommand(opts *RootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait NAME",
		Short: "Block until a service is picked up by the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			return opts.controller(cmd).WaitSupervised(ctx, args[0])
		},
	}
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "give up after this long (0 waits forever)")
	return cmd
}
