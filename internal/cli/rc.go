package cli

import (
	"github.com/spf13/cobra"
)

func newRCCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rc ARGS...",
		Short: "Forward raw arguments to the s6-rc client",
		Long: `Forward the given arguments to s6-rc unmodified, scoped to the resolved
live-state directory. An escape hatch for operations the named verbs do
not cover. Global flags must precede the rc verb.`,
		// Everything after the verb belongs to s6-rc, including flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return opts.controller(cmd).Passthrough(cmd.Context(), args...)
		},
	}
}
