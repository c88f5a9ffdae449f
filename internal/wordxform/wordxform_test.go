package wordxform_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/primer/internal/wordxform"
)

func TestBuildMap(t *testing.T) {
	rules, err := wordxform.BuildMap(strings.NewReader("brb be right back\n\nk okay?\nk ok\n"))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"brb": "be right back",
		"k":   "ok",
	}, rules)
}

// TestBuildMap_NoRule covers a key alone on its line and a key followed by
// only the separator.
func TestBuildMap_NoRule(t *testing.T) {
	for _, input := range []string{"brb be right back\nlol\n", "brb be right back\nlol \n"} {
		_, err := wordxform.BuildMap(strings.NewReader(input))
		require.Error(t, err)
		assert.True(t, errors.Is(err, wordxform.ErrNoRule))

		var ruleErr *wordxform.RuleError
		require.ErrorAs(t, err, &ruleErr)
		assert.Equal(t, "lol", ruleErr.Key)
		assert.Equal(t, 2, ruleErr.Line)
		assert.Equal(t, "line 2: no rule for lol", err.Error())
	}
}

func TestTransform(t *testing.T) {
	rules := map[string]string{"u": "you"}

	assert.Equal(t, "you", wordxform.Transform("u", rules))
	assert.Equal(t, "me", wordxform.Transform("me", rules))
}

// TestWordTransform runs the fixture dictionary over the fixture message.
func TestWordTransform(t *testing.T) {
	dict, err := os.Open("testdata/dict.txt")
	require.NoError(t, err)
	defer dict.Close()
	msg, err := os.Open("testdata/message.txt")
	require.NoError(t, err)
	defer msg.Close()

	rules, err := wordxform.BuildMap(dict)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, wordxform.WordTransform(rules, msg, &out))

	assert.Equal(t,
		"where are you\n"+
			"why dont you send me a picture\n"+
			"okay? thanks! later\n",
		out.String())
}

func TestWordTransform_CollapsesSpaces(t *testing.T) {
	var out bytes.Buffer
	err := wordxform.WordTransform(map[string]string{"r": "are"}, strings.NewReader("  how   r\tyou \n\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "how are you\n\n", out.String())
}

func TestCountWords(t *testing.T) {
	text := "the cat and The dog and a cat"

	all, err := wordxform.CountWords(strings.NewReader(text), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all["and"])

	counts, err := wordxform.CountWords(strings.NewReader(text), wordxform.Articles)
	require.NoError(t, err)
	assert.Equal(t, []wordxform.WordCount{
		{Word: "cat", Count: 2},
		{Word: "dog", Count: 1},
	}, wordxform.SortedCounts(counts))
}
