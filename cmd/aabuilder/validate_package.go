package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

func newValidatePackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-package NAME",
		Short: "Check whether NAME is a well-formed package identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !config.ValidatePackageName(name) {
				return aaberrors.NewValidationError(aaberrors.KindInvalidPackageName, "packageName",
					fmt.Sprintf("invalid package name format %q", name), nil)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid package name\n", name)
			return nil
		},
	}
}
