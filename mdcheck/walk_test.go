package mdcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.MARKDOWN"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte(""), 0o644))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.md"), []byte(""), 0o644))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden", "e.md"), []byte(""), 0o644))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "f.md"), []byte(""), 0o644))

	files, err := FindMarkdownFiles(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.MARKDOWN"),
		filepath.Join(dir, "sub", "d.md"),
	}, files)
}

func TestFindMarkdownFiles_hiddenTopLevelFileStillYielded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".draft.md"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.md"), []byte(""), 0o644))

	files, err := FindMarkdownFiles(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, ".draft.md"),
		filepath.Join(dir, "keep.md"),
	}, files)
}

func TestFindMarkdownFiles_extraIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drafts", "wip.md"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.md"), []byte(""), 0o644))

	files, err := FindMarkdownFiles(dir, []string{"drafts/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
}

func TestIsMarkdownFile(t *testing.T) {
	assert.True(t, isMarkdownFile("readme.md"))
	assert.True(t, isMarkdownFile("README.MD"))
	assert.True(t, isMarkdownFile("notes.markdown"))
	assert.False(t, isMarkdownFile("notes.txt"))
}
