package srclint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_russianLetters(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.go", "// привет world\npackage a\n")
	c := New(dir)
	out := c.Check(path, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "HP001")
	assert.Contains(t, out[0], "a.go:1:4")
}

func TestCheck_russianLetters_ignoredByInlineDirective(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.go", "// привет world # ignore: HP001\npackage a\n")
	c := New(dir)
	assert.Empty(t, c.Check(path, nil))
}

func TestCheck_fileIgnoreSuppressesEveryLine(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.go",
		"// # file-ignore: HP001\npackage a\n\n// привет one\n// привет two\n")
	c := New(dir)
	assert.Empty(t, c.Check(path, nil))
}

func TestCheck_excludeRules(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.go", "// привет world\npackage a\n")
	c := New(dir)
	assert.Empty(t, c.Check(path, map[string]bool{"HP001": true}))
}

func TestCheck_oldStyleDocstring(t *testing.T) {
	dir := t.TempDir()
	// Mimics a Python-style triple-quoted docstring embedded in a source
	// file: the rule is a plain line scanner, indifferent to what comment
	// syntax (if any) surrounds it.
	content := "\"\"\"Frobnicate does a thing.\n" +
		"\n" +
		"Args:\n" +
		"    name: the thing to frobnicate\n" +
		"\"\"\"\n"
	path := writeTemp(t, dir, "a.txt", content)
	c := New(dir)
	out := c.Check(path, nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "HP002")
}

func TestCheck_newStyleDocstringNotFlagged(t *testing.T) {
	dir := t.TempDir()
	content := "\"\"\"Frobnicate does a thing.\n" +
		"\n" +
		"Args:\n" +
		"\n" +
		"- name: the thing to frobnicate\n" +
		"\"\"\"\n"
	path := writeTemp(t, dir, "a.txt", content)
	c := New(dir)
	assert.Empty(t, c.Check(path, nil))
}

func TestCheck_unreadableFile(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	out := c.Check(filepath.Join(dir, "missing.go"), nil)
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "P000")
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "clean.go", "package a\n")
	writeTemp(t, dir, "dirty.go", "// привет\npackage a\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	writeTemp(t, filepath.Join(dir, ".git"), "ignored.go", "// привет\npackage a\n")

	c := New(dir)
	results, err := c.CheckDirectory(dir, nil)
	require.NoError(t, err)

	_, cleanHasDiags := results[filepath.Join(dir, "clean.go")]
	assert.False(t, cleanHasDiags)

	_, dirtyHasDiags := results[filepath.Join(dir, "dirty.go")]
	assert.True(t, dirtyHasDiags)

	for path := range results {
		assert.NotContains(t, path, ".git")
	}
}
