package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "aabuilder",
		Short:         "aabuilder generates Android WebView projects from a short description",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newValidatePackageCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newOpenCmd(flags))
	cmd.AddCommand(newTemplateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
