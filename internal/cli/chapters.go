package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Chapter names one demonstration program and what it covers.
type Chapter struct {
	Dir   string
	Topic string
}

// Chapters lists the demonstration programs in reading order. Run one with
// `go run ./<dir>`.
var Chapters = []Chapter{
	{"references", "type inference, values vs pointers, aliasing"},
	{"strings", "strings, runes, byte iteration, slices of slices"},
	{"expressions", "generic L2 norm, increments, bit manipulation, conversions"},
	{"statements", "loops, switch, errors escaping main"},
	{"functions", "factorial, call counter, pointer params, variadics"},
	{"streams", "buffered output, flushing, parsing records from stdin"},
	{"containers", "lists, deques, insert/erase while iterating, capacity growth"},
	{"algorithms", "find, accumulate, sort, partition, closures"},
	{"associative", "sets, maps, multimaps, word count, word transformation"},
	{"memory", "shared and unique ownership, weak observers"},
	{"copycontrol", "lifecycle tracing, handles, Message/Folder, StrVec"},
	{"operators", "sales arithmetic, function objects, function tables"},
	{"oop", "pricing hierarchy, basket receipt, embedding"},
	{"templates", "generic compare, Blob/BlobPtr, variadic print, flip"},
	{"specialized", "tuples, bitsets, random numbers, formatting, bookstore"},
}

func newChaptersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters",
		Short: "List the chapter programs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			name := color.New(color.FgCyan, color.Bold)
			for _, c := range Chapters {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name.Sprintf("%-12s", c.Dir), c.Topic)
			}
		},
	}
}
