package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/aabuilder/internal/color"
	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

type palettePayload struct {
	Primary     string `json:"colorPrimary"`
	PrimaryDark string `json:"colorPrimaryDark"`
	Accent      string `json:"colorAccent"`
}

func newPaletteCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "palette [COLOR]",
		Short: "Show the colors derived from a primary color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex := color.Default
			if len(args) == 1 {
				hex = args[0]
			}

			palette, err := color.DerivePalette(hex)
			if err != nil {
				return aaberrors.NewValidationError(aaberrors.KindInvalidField, "colorScheme", err.Error(), err)
			}

			payload := palettePayload{Primary: palette.Primary, PrimaryDark: palette.PrimaryDark, Accent: palette.Accent}
			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "colorPrimary\t%s\n", payload.Primary)
			fmt.Fprintf(w, "colorPrimaryDark\t%s\n", payload.PrimaryDark)
			fmt.Fprintf(w, "colorAccent\t%s\n", payload.Accent)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the palette as JSON")
	return cmd
}
