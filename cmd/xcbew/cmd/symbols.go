package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-xcbew/xcbew"
)

func newSymbolsCmd(opts *rootOptions) *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Print the required libxcb exports",
		Long: `Print the libxcb exports the loader requires, in resolution order.
With --resolve the library is loaded and each address is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !resolve {
				for _, name := range xcbew.SymbolNames() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			lib, err := xcbew.Load(opts.loadOptions(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range lib.Symbols() {
				addr, _ := lib.Symbol(name)
				fmt.Fprintf(tw, "%s\t%#x\n", name, addr)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Load the library and print each resolved address")

	return cmd
}
