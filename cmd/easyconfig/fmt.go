package main

import (
	"github.com/ConradIrwin/easyconfig-go"
	"github.com/spf13/cobra"
)

func newFmtCmd(flags *globalFlags) *cobra.Command {
	write := false

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a file in canonical form",
		Long: `Load a configuration file and print it in canonical form: comments and
unrecognized lines are dropped, boolean synonyms become true or false, and
array elements are joined without spaces.

Examples:
  easyconfig fmt settings.ini
  easyconfig fmt -w settings.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd.ErrOrStderr())
			file, err := easyconfig.Open(args[0], opts...)
			if err != nil {
				return err
			}
			if write {
				return file.Save(args[0], opts...)
			}
			_, err = file.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}
