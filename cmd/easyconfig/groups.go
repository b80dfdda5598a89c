package main

import (
	"fmt"

	"github.com/ConradIrwin/easyconfig-go"
	"github.com/spf13/cobra"
)

func newGroupsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "groups FILE",
		Short: "List the groups and settings in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := easyconfig.Open(args[0], flags.options(cmd.ErrOrStderr())...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for name, group := range file.SettingsGroups() {
				fmt.Fprintf(out, "%s:\n", name)
				for key, setting := range group.Settings() {
					if setting.IsArray() {
						fmt.Fprintf(out, "  %s = %s (array)\n", key, setting.RawValue())
					} else {
						fmt.Fprintf(out, "  %s = %s\n", key, setting.RawValue())
					}
				}
			}
			return nil
		},
	}
}
