package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/primer/internal/sales"
)

// ErrNoStores is returned by report when neither --stores nor --fake is set.
var ErrNoStores = errors.New("no stores: pass --stores <file> or --fake <n>")

type reportFlags struct {
	fake     int
	perStore int
}

func newReportCommand(a *app) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Look up ISBNs read from stdin across several bookstores",
		Long: `For every ISBN on stdin, print the accumulated sales of each store that
sold it, or a not-found line.

Examples:
  echo 0-201-78345-X | primer report --stores stores.yaml
  primer report --fake 3 --seed 7 < isbns.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runReport(cmd, flags)
		},
	}
	cmd.Flags().String("stores", "", "YAML store file")
	cmd.Flags().Uint64("seed", 1, "seed for --fake")
	cmd.Flags().IntVar(&flags.fake, "fake", 0, "generate this many stores instead of reading a file")
	cmd.Flags().IntVar(&flags.perStore, "per-store", 8, "records per generated store")
	return cmd
}

func (a *app) runReport(cmd *cobra.Command, flags *reportFlags) error {
	var stores [][]sales.Data
	switch {
	case flags.fake > 0:
		stores = sales.FakeStores(a.cfg.Seed, flags.fake, flags.perStore)
		printStatus(cmd.ErrOrStderr(), "✓", fmt.Sprintf("generated %d store(s) from seed %d", flags.fake, a.cfg.Seed), color.FgGreen)
	case a.cfg.Stores != "":
		f, err := os.Open(a.cfg.Stores)
		if err != nil {
			return fmt.Errorf("open stores: %w", err)
		}
		defer f.Close()
		if stores, err = sales.LoadStores(f); err != nil {
			return fmt.Errorf("%s: %w", a.cfg.Stores, err)
		}
	default:
		return ErrNoStores
	}
	a.logger.Printf("report: %d store(s)", len(stores))

	return sales.ReportResults(cmd.InOrStdin(), cmd.OutOrStdout(), stores)
}
