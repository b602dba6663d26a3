package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/generator"
	"github.com/alexisbeaulieu97/aabuilder/pkg/diff"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show how the template would be customised, without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}

			log, err := newCommandLogger(root.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			changes, err := generator.New(generator.Options{Logger: log}).Preview(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, change := range changes {
				patch := diff.Unified(change.Before, change.After, "template/"+change.Template, "project/"+change.Path)
				if patch == "" {
					continue
				}
				fmt.Fprint(out, patch)
			}
			return nil
		},
	}

	bindProjectFlags(cmd, &opts)
	return cmd
}
