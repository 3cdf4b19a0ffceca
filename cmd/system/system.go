package system

import "github.com/spf13/cobra"

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "System maintenance commands",
	}

	cmd.AddCommand(NewVerifyCommand())

	return cmd
}
