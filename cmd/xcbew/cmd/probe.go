package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-xcbew/xcbew"
)

func newProbeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Load libxcb and resolve every required symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			lib, err := xcbew.Load(opts.loadOptions(cmd.ErrOrStderr())...)
			if err != nil {
				fmt.Fprintln(out, "libxcb: not usable")

				var missing *xcbew.MissingSymbolsError
				if errors.As(err, &missing) {
					fmt.Fprintf(out, "opened: %s\n", missing.Path)
					fmt.Fprintf(out, "missing symbols (%d):\n", len(missing.Symbols))
					for _, name := range missing.Symbols {
						fmt.Fprintf(out, "  %s\n", name)
					}
				}
				return err
			}

			fmt.Fprintf(out, "libxcb: %s\n", lib.Path())
			fmt.Fprintf(out, "symbols: %d resolved\n", len(lib.Symbols()))
			return nil
		},
	}
}
