package mdcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_noFrontMatter(t *testing.T) {
	doc := Parse("x.md", "Hello\nworld\n")
	require.Nil(t, doc.YAMLError)
	assert.Empty(t, doc.YAMLText)
	assert.Equal(t, 1, doc.ContentStartLine)
	assert.Equal(t, []string{"Hello", "world"}, doc.ContentLines)
	assert.True(t, doc.EndsWithNewline)
}

func TestParse_withFrontMatter(t *testing.T) {
	doc := Parse("x.md", "---\nlang: en\n---\n\nBody text\n")
	require.Nil(t, doc.YAMLError)
	assert.Equal(t, "en", doc.Lang)
	assert.Equal(t, 3, doc.YAMLEndLine)
	assert.Equal(t, 4, doc.ContentStartLine)
	assert.Equal(t, []string{"", "Body text"}, doc.ContentLines)
	assert.Equal(t, 5, doc.lineNumber(1))
}

func TestParse_emptyFrontMatter(t *testing.T) {
	// "---\n---\n\n": a present-but-empty block. H004 territory, not H003.
	doc := Parse("x.md", "---\n---\n\n")
	require.Nil(t, doc.YAMLError)
	assert.NotEmpty(t, doc.YAMLText)
	assert.Empty(t, doc.Lang)
}

func TestParse_malformedYAML(t *testing.T) {
	doc := Parse("x.md", "---\nlang: [en\n---\n\nBody\n")
	assert.Error(t, doc.YAMLError)
}

func TestParse_noFinalNewline(t *testing.T) {
	doc := Parse("x.md", "one\ntwo")
	assert.False(t, doc.EndsWithNewline)
	assert.Equal(t, []string{"one", "two"}, doc.Lines)
}
