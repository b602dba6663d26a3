package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/templates"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect or export the built-in Android template",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the files of the built-in template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := templates.ListFiles(templates.AndroidBase)
			if err != nil {
				return err
			}
			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), strings.TrimPrefix(file, templates.AndroidBase+"/"))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "export DIR",
		Short: "Write the built-in template to DIR for use with --template-dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exported, err := templates.Export(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", len(exported), args[0])
			return nil
		},
	})

	return cmd
}
