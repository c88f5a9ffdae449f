package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/primer/internal/wordxform"
)

func newTransformCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Rewrite a text file through a dictionary of word rules",
		Long: `Each line of the dictionary holds a word and its replacement, which runs to
the end of the line. Every input line is printed with its words replaced.

Examples:
  primer transform
  primer transform --dict testdata/dict.txt --input testdata/message.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTransform(cmd)
		},
	}
	cmd.Flags().String("dict", "", "rule file (default testdata/dict.txt)")
	cmd.Flags().String("input", "", "text to transform (default testdata/message.txt)")
	return cmd
}

func (a *app) runTransform(cmd *cobra.Command) error {
	dict, err := os.Open(a.cfg.Dict)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer dict.Close()

	rules, err := wordxform.BuildMap(dict)
	if err != nil {
		return fmt.Errorf("%s: %w", a.cfg.Dict, err)
	}
	a.logger.Printf("transform: %d rule(s) from %s", len(rules), a.cfg.Dict)

	input, err := os.Open(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	return wordxform.WordTransform(rules, input, cmd.OutOrStdout())
}
