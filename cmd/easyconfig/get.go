package main

import (
	"fmt"

	"github.com/ConradIrwin/easyconfig-go"
	"github.com/spf13/cobra"
)

func newGetCmd(flags *globalFlags) *cobra.Command {
	asString := false

	cmd := &cobra.Command{
		Use:   "get FILE GROUP KEY",
		Short: "Print the value of a single setting",
		Long: `Print the raw value of a setting. With --string the value must be a
quoted string and is printed without its quotes.

Examples:
  easyconfig get settings.ini Video Width
  easyconfig get --string settings.ini Player Name`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := easyconfig.Open(args[0], flags.options(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}
			group, ok := file.SettingsGroup(args[1])
			if !ok {
				return fmt.Errorf("no group %s in %s", args[1], args[0])
			}
			setting, ok := group.Setting(args[2])
			if !ok {
				return fmt.Errorf("no setting %s in group %s", args[2], args[1])
			}

			value := setting.RawValue()
			if asString {
				if value, err = setting.Text(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asString, "string", false, "print a quoted string value without its quotes")
	return cmd
}
