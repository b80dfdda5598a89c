package main

import (
	"io"
	"log/slog"

	"github.com/ConradIrwin/easyconfig-go"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	charset string
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "easyconfig",
		Short: "Inspect and reformat configuration files",
		Long: `easyconfig reads INI-like configuration files made of [Group] headers
and name = value settings.

It can print the groups and settings in a file, read a single value, or
rewrite a file in canonical form.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.charset, "charset", "", "character set of the file (default UTF-8)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newFmtCmd(flags))
	rootCmd.AddCommand(newGroupsCmd(flags))
	rootCmd.AddCommand(newGetCmd(flags))
	return rootCmd
}

// options returns the load and save options selected by the global flags,
// logging to stderr.
func (g *globalFlags) options(stderr io.Writer) []easyconfig.Option {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return []easyconfig.Option{
		easyconfig.WithCharset(g.charset),
		easyconfig.WithLogger(logger),
	}
}
