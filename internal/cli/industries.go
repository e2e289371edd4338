package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"logo-backend/logo/industry"
)

func newIndustriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List industry groups, their keywords and style variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDECORATION\tVARIANTS\tKEYWORDS")
			for _, cfg := range industry.All() {
				keywords := strings.Join(industry.Keywords(cfg.Name), ", ")
				if keywords == "" {
					keywords = "(fallback)"
				}
				decoration := cfg.Decoration
				if decoration == "" {
					decoration = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cfg.Name, decoration, strings.Join(cfg.StyleVariations, ", "), keywords)
			}
			return w.Flush()
		},
	}
}
