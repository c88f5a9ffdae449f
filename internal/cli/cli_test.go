package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/primer/internal/cli"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRIMER_STORES", "")
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTransform(t *testing.T) {
	out, err := run(t, "", "transform",
		"--dict", "../../testdata/dict.txt",
		"--input", "../../testdata/message.txt")
	require.NoError(t, err)

	assert.Equal(t, "where are you\nwhy dont you send me a picture\nokay? thanks! later\n", out)
}

func TestTransform_MissingDict(t *testing.T) {
	_, err := run(t, "", "transform", "--dict", "does-not-exist.txt")
	assert.ErrorContains(t, err, "open dictionary")
}

func TestWordCount(t *testing.T) {
	out, err := run(t, "the cat and the hat\n", "wordcount", "--exclude-articles")
	require.NoError(t, err)

	assert.Equal(t, "cat 1\nhat 1\n", out)
}

func TestReport_StoresFile(t *testing.T) {
	out, err := run(t, "0-201-78345-X nope", "report", "--stores", "../sales/testdata/stores.yaml")
	require.NoError(t, err)

	assert.Equal(t,
		"store 0 sales: 0-201-78345-X 5 110 22\n"+
			"store 2 sales: 0-201-78345-X 1 30 30\n"+
			"nope not found in any stores\n",
		out)
}

func TestReport_NoStores(t *testing.T) {
	_, err := run(t, "", "report")
	assert.ErrorIs(t, err, cli.ErrNoStores)
}

// TestReport_Fake checks that generated stores are reproducible from the
// seed.
func TestReport_Fake(t *testing.T) {
	first, err := run(t, "x", "report", "--fake", "2", "--seed", "5")
	require.NoError(t, err)
	second, err := run(t, "x", "report", "--fake", "2", "--seed", "5")
	require.NoError(t, err)

	assert.Equal(t, "x not found in any stores\n", first)
	assert.Equal(t, first, second)
}

func TestPhones(t *testing.T) {
	out, err := run(t, "morgan 2015552368\n", "phones")
	require.NoError(t, err)

	assert.Contains(t, out, "name: morgan")
	assert.Contains(t, out, `"2015552368"`)
}

func TestChapters(t *testing.T) {
	out, err := run(t, "", "chapters")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(cli.Chapters))
	assert.True(t, strings.HasPrefix(lines[0], "references"))
}
