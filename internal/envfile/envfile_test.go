package envfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsSourceOrder(t *testing.T) {
	content := []byte(`# database settings
DATABASE_URL=postgres://localhost/test

PORT=3000
DEBUG=true
export API_KEY=secret123
`)

	entries, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"DATABASE_URL", "PORT", "DEBUG", "API_KEY"}, keys)
	assert.Equal(t, "postgres://localhost/test", entries[0].Value)
	assert.Equal(t, "secret123", entries[3].Value)
}

func TestParseQuotedValues(t *testing.T) {
	entries, err := Parse([]byte(`GREETING="hello world"
EMPTY=
CONFIG={"timeout": 30}
`))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "hello world", entries[0].Value)
	assert.Equal(t, "", entries[1].Value)
	assert.Equal(t, `{"timeout": 30}`, entries[2].Value)
}

func TestParseDuplicateKeepsFirstPositionLastValue(t *testing.T) {
	entries, err := Parse([]byte("A=1\nB=2\nA=3\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Key)
	assert.Equal(t, "3", entries[0].Value)
}

func TestParseEmpty(t *testing.T) {
	entries, err := Parse([]byte("# only a comment\n"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExampleRender(t *testing.T) {
	example := &Example{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Key: "PORT", Value: "3000"},
			{Key: "API_KEY", Value: "your-secret-here"},
		},
	}

	out := string(example.Render())
	assert.Contains(t, out, "# Generated by dotenv-shield on 2026-03-01T12:00:00Z")
	assert.Contains(t, out, "PORT=3000\n")
	assert.Contains(t, out, "API_KEY=your-secret-here\n")
}
