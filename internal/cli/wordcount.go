package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/primer/internal/wordxform"
)

func newWordCountCommand(a *app) *cobra.Command {
	var excludeArticles bool

	cmd := &cobra.Command{
		Use:   "wordcount",
		Short: "Count word frequencies on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var exclude map[string]bool
			if excludeArticles {
				exclude = wordxform.Articles
			}
			counts, err := wordxform.CountWords(cmd.InOrStdin(), exclude)
			if err != nil {
				return fmt.Errorf("count words: %w", err)
			}
			a.logger.Printf("wordcount: %d distinct word(s)", len(counts))

			out := cmd.OutOrStdout()
			for _, wc := range wordxform.SortedCounts(counts) {
				fmt.Fprintf(out, "%s %d\n", wc.Word, wc.Count)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&excludeArticles, "exclude-articles", false, "skip a, an, the, and, but, or")
	return cmd
}
