package person_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/primer/internal/person"
)

func TestParse(t *testing.T) {
	in := "morgan 2015552368 8625550123\n\ndrew 9735550130\nlee\n"

	people, err := person.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []person.Info{
		{Name: "morgan", Phones: []string{"2015552368", "8625550123"}},
		{Name: "drew", Phones: []string{"9735550130"}},
		{Name: "lee"},
	}, people)
}

// TestWriteYAML decodes the output back to check it is valid YAML with the
// expected keys.
func TestWriteYAML(t *testing.T) {
	people := []person.Info{{Name: "morgan", Phones: []string{"2015552368"}}, {Name: "lee"}}

	var buf bytes.Buffer
	require.NoError(t, person.WriteYAML(&buf, people))

	assert.True(t, strings.HasPrefix(buf.String(), "- name: morgan\n"))
	assert.Contains(t, buf.String(), `"2015552368"`, "digit strings stay strings")
	assert.NotContains(t, buf.String(), "phones: []")

	var back []person.Info
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, people, back)
}
