package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "bmrsgen",
		Short:   "bmrsgen - typed client generator for the Elexon BMRS API",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(GenerateCommand())
	root.AddCommand(ValidateCommand())

	return root
}
