package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lucid-schemas/pkg/schema"
)

func newListCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered record contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tMODE\tREQUIRED")
			shown := 0
			for _, def := range schema.Definitions() {
				if category != "" && def.Category != category {
					continue
				}
				shown++
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Category, def.Mode, strings.Join(def.Schema.Required, ","))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			a.log.Debug("Listed contracts", map[string]interface{}{"count": shown, "category": category})
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only show contracts of this category")
	return cmd
}
