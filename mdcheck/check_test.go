package mdcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_unreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.md")
	out := Check(path, Options{ProjectRoot: dir})
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "H000")
	assert.Contains(t, out[0], "Exception error")
}

func TestCheck_filenameRulesFireOnReadFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad name.md")
	out := Check(path, Options{ProjectRoot: dir})
	var sawH001, sawH000 bool
	for _, line := range out {
		if contains(line, "H001") {
			sawH001 = true
		}
		if contains(line, "H000") {
			sawH000 = true
		}
	}
	assert.True(t, sawH001, "expected H001 even though the file can't be read")
	assert.True(t, sawH000)
}

func TestCheck_noDuplicateFilenameDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "bad name.md", "---\nlang: en\n---\n\nClean prose.\n")
	out := Check(path, Options{ProjectRoot: dir})
	count := 0
	for _, line := range out {
		if contains(line, "H001") {
			count++
		}
	}
	assert.Equal(t, 1, count, "H001 must fire exactly once, not once from Check and again from runRules")
}

func TestCheck_yamlErrorAddsH000WithoutSuppressingOtherRules(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.md", "---\nlang: [en\n---\n\ntrailing   \n")
	out := Check(path, Options{ProjectRoot: dir})
	var sawH000, sawH008 bool
	for _, line := range out {
		if contains(line, "H000") {
			sawH000 = true
		}
		if contains(line, "H008") {
			sawH008 = true
		}
	}
	assert.True(t, sawH000, "malformed YAML must surface H000")
	assert.True(t, sawH008, "other prose rules must still run despite the YAML error")
}

func TestCheck_emptyFileReportsOnlyH003(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.md", "")
	out := Check(path, Options{ProjectRoot: dir})
	require.Len(t, out, 1)
	assert.Contains(t, out[0], "H003")
}

func TestCheck_emptyFrontMatterReportsH004NotH003(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.md", "---\n---\n\nBody\n")
	out := Check(path, Options{ProjectRoot: dir})
	var sawH003, sawH004 bool
	for _, line := range out {
		if contains(line, "H003") {
			sawH003 = true
		}
		if contains(line, "H004") {
			sawH004 = true
		}
	}
	assert.False(t, sawH003)
	assert.True(t, sawH004)
}

func TestCheck_selectAndExclude(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "a.md", "trailing   \nhas\ttab\n")
	onlyH008 := Check(path, Options{ProjectRoot: dir, Select: []string{"H008"}})
	require.Len(t, onlyH008, 1)
	assert.Contains(t, onlyH008[0], "H008")

	excluded := Check(path, Options{ProjectRoot: dir, Select: []string{"H008", "H010"}, Exclude: []string{"H010"}})
	require.Len(t, excluded, 1)
	assert.Contains(t, excluded[0], "H008")
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "clean.md", "---\nlang: en\n---\n\nClean prose.\n")
	writeTempFile(t, dir, "dirty.md", "trailing   \n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))
	writeTempFile(t, filepath.Join(dir, "node_modules"), "ignored.md", "trailing   \n")

	results, err := CheckDirectory(dir, Options{ProjectRoot: dir})
	require.NoError(t, err)

	_, cleanHasDiags := results[filepath.Join(dir, "clean.md")]
	assert.False(t, cleanHasDiags)

	dirtyDiags, ok := results[filepath.Join(dir, "dirty.md")]
	require.True(t, ok)
	assert.NotEmpty(t, dirtyDiags)

	for path := range results {
		assert.NotContains(t, path, "node_modules")
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
