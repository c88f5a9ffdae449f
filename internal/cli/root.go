// Package cli implements the cobra commands of the primer binary.
//
// The chapter programs print fixed demonstrations. The commands here run
// the input-driven ones (word transformation, word counting, the bookstore
// report, phone records) over files or stdin.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/primer/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	noColor bool
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "primer",
		Short: "Run the input-driven language primer demos",
		Long: `primer runs the demonstrations that read input: dictionary-driven word
transformation, word counting, the multi-store bookstore report and phone
record parsing.

Settings come from flags, PRIMER_* environment variables (a .env file is
honoured), and an optional .primer.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./.primer.yaml)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newTransformCommand(a),
		newWordCountCommand(a),
		newReportCommand(a),
		newPhonesCommand(a),
		newChaptersCommand(),
	)
	return root
}

// setup resolves the configuration for the command being run.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{File: a.cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Color = false
	}
	if !cfg.Color {
		color.NoColor = true
	}

	a.cfg = cfg
	a.logger = log.New(io.Discard, "", 0)
	if cfg.Verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "primer: ", log.LstdFlags)
	}
	a.logger.Printf("config: %+v", *cfg)
	return nil
}

// Execute runs root and exits with status 1 on any error.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

// printStatus writes a colored marker followed by msg.
func printStatus(w io.Writer, symbol, msg string, attr color.Attribute) {
	fmt.Fprintf(w, "%s %s\n", color.New(attr).Sprint(symbol), msg)
}
