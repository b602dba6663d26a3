package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/generator"
	"github.com/alexisbeaulieu97/aabuilder/internal/opener"
)

var newFolderOpener = func() generator.FolderOpener { return opener.New() }

func newOpenCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "open PATH",
		Short: "Open a generated project in the file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newCommandLogger(root.verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			gen := generator.New(generator.Options{Opener: newFolderOpener(), Logger: log})
			res := gen.OpenOutputFolder(args[0])
			if !res.Success {
				return errors.New(res.Error)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", args[0])
			return nil
		},
	}
}
