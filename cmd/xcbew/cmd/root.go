// Package cmd provides the commands of the xcbew CLI.
package cmd

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-xcbew/xcbew"
)

type rootOptions struct {
	verbose        bool
	libPath        string
	searchDirs     []string
	noSystemSearch bool
}

// NewRootCmd creates the root command of the xcbew CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xcbew",
		Short: "Inspect how libxcb is located and loaded",
		Long: `xcbew runs the same search the xcbew package performs at runtime and
reports which library was picked, which candidates failed and whether the
library exports every required symbol.

The search honours XCBEW_LIB_PATH, XCBEW_LIBRARY_DIRS and
XCBEW_DISABLE_SYSTEM_SEARCH; flags take precedence over the environment.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every candidate and symbol lookup to stderr")
	cmd.PersistentFlags().StringVar(&opts.libPath, "lib-path", "", "Load only this library path")
	cmd.PersistentFlags().StringSliceVar(&opts.searchDirs, "search-dir", nil, "Extra directory to search before the system names (repeatable)")
	cmd.PersistentFlags().BoolVar(&opts.noSystemSearch, "no-system-search", false, "Do not try the platform library names")

	cmd.AddCommand(newProbeCmd(opts))
	cmd.AddCommand(newCandidatesCmd(opts))
	cmd.AddCommand(newSymbolsCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) loadOptions(stderr io.Writer) []xcbew.Option {
	var opts []xcbew.Option
	if o.verbose {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
		logger = level.NewFilter(logger, level.AllowDebug())
		opts = append(opts, xcbew.WithLogger(logger))
	}
	if o.libPath != "" {
		opts = append(opts, xcbew.WithLibraryPath(o.libPath))
	}
	if len(o.searchDirs) > 0 {
		opts = append(opts, xcbew.WithSearchDirs(o.searchDirs...))
	}
	if o.noSystemSearch {
		opts = append(opts, xcbew.WithSystemSearch(false))
	}
	return opts
}
