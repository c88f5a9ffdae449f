package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/marcodamonte/primer/internal/wordxform"
)

const sampleText = "The cat and the hat sat on the mat and the cat ran"

func demoWordCount() {
	all, _ := wordxform.CountWords(strings.NewReader(sampleText), nil)
	fmt.Println("  distinct words:", len(all))

	counts, _ := wordxform.CountWords(strings.NewReader(sampleText), wordxform.Articles)
	for _, wc := range wordxform.SortedCounts(counts) {
		fmt.Printf("  %-4s %d\n", wc.Word, wc.Count)
	}
}

// transformFiles applies the rules in dictPath to the text in inputPath.
func transformFiles(w io.Writer, dictPath, inputPath string) error {
	dict, err := os.Open(dictPath)
	if err != nil {
		return err
	}
	defer dict.Close()

	rules, err := wordxform.BuildMap(dict)
	if err != nil {
		return fmt.Errorf("%s: %w", dictPath, err)
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	return wordxform.WordTransform(rules, in, w)
}
