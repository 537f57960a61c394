package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.schema.json")
	store := NewStore(path)

	doc := NewDocument()
	doc.Properties["PORT"] = &Property{
		Type: SingleType(TagInteger),
		Meta: &PropertyMeta{OriginalType: "port", Inferred: true},
	}
	doc.Required = []string{"PORT"}
	require.NoError(t, store.Save(doc, false))

	loaded, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Contains(t, loaded.Properties, "PORT")
	assert.Equal(t, TagInteger, loaded.Properties["PORT"].Type.Tag)
	assert.Equal(t, "port", loaded.Properties["PORT"].Meta.OriginalType)
	assert.Equal(t, []string{"PORT"}, loaded.Required)
}

func TestStoreLoadNotFound(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Load()
	require.Error(t, err)
	var notFound *ErrSchemaNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Schema file not found")
}

func TestStoreLoadMalformed(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err := NewStore(bad).Load()
	require.Error(t, err)
	var malformed *ErrMalformedSchema
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "Invalid JSON in schema file")

	noProps := filepath.Join(dir, "noprops.json")
	require.NoError(t, os.WriteFile(noProps, []byte(`{"required": []}`), 0o644))
	_, err = NewStore(noProps).Load()
	require.ErrorAs(t, err, &malformed)
}

func TestStoreBackupOnMergeSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.schema.json")
	store := NewStore(path)

	doc := NewDocument()
	require.NoError(t, store.Save(doc, false))

	doc.Properties["NEW"] = &Property{Type: SingleType(TagString)}
	require.NoError(t, store.Save(doc, true))

	matches, err := filepath.Glob(path + ".backup.*")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestStorePreservesEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.schema.json")
	content := "# Schema notes live here.\n// dotenv-shield:start\n" +
		`{"type":"object","properties":{},"required":[],"additionalProperties":false}` +
		"\n// dotenv-shield:end\n# Footer.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewStore(path)
	doc, err := store.Load()
	require.NoError(t, err)

	doc.Properties["PORT"] = &Property{Type: SingleType(TagInteger)}
	require.NoError(t, store.Save(doc, true))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(saved)
	assert.Contains(t, out, "# Schema notes live here.")
	assert.Contains(t, out, "# Footer.")
	assert.Contains(t, out, "// dotenv-shield:start")
	assert.Contains(t, out, `"PORT"`)
}
