package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/norsk-drill/internal/app"
)

func newStatsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print how many items each collection holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.loadEnv(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer e.Close()

			counts, err := app.NewServices(e.cfg, e.pool, e.logger).Vocabulary.Stats(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "nouns\t%d\n", counts.Nouns)
			fmt.Fprintf(tw, "verbs\t%d\n", counts.Verbs)
			fmt.Fprintf(tw, "adjectives\t%d\n", counts.Adjectives)
			fmt.Fprintf(tw, "phrases\t%d\n", counts.Phrases)
			fmt.Fprintf(tw, "lessons\t%d\n", counts.Lessons)
			return tw.Flush()
		},
	}
}
