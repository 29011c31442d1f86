package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-xcbew/xcbew"
)

func newCandidatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "candidates",
		Short: "Print the library names tried, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := xcbew.Candidates(opts.loadOptions(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}
			for i, candidate := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, candidate)
			}
			return nil
		},
	}
}
