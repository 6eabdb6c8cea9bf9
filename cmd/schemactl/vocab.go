package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lucid-schemas/pkg/vocab"
)

func newVocabCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [name]",
		Short: "Show a vocabulary, or list vocabulary names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, strings.Join(vocab.Names(), "\n"))
				return err
			}

			summary, ok := vocab.Describe(args[0])
			if !ok {
				return fmt.Errorf("unknown vocabulary %q (known: %s)", args[0], strings.Join(vocab.Names(), ", "))
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			a.log.Debug("Described vocabulary", map[string]interface{}{"vocabulary": summary.Name, "size": len(summary.Values)})
			return enc.Encode(summary)
		},
	}
}
