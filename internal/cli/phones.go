package cli

import (
	"github.com/spf13/cobra"

	"github.com/marcodamonte/primer/internal/person"
)

func newPhonesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phones",
		Short: `Parse "name phone..." lines from stdin and print them as YAML`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			people, err := person.Parse(cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.logger.Printf("phones: %d record(s)", len(people))
			return person.WriteYAML(cmd.OutOrStdout(), people)
		},
	}
}
