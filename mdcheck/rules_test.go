package mdcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codesOf(diags []Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func TestActiveRules(t *testing.T) {
	all := activeRules(nil, nil)
	assert.True(t, all["H001"])
	assert.True(t, all["H030"])
	assert.Len(t, all, len(registry))

	selected := activeRules([]string{"H006", "H999"}, nil)
	assert.Equal(t, map[string]bool{"H006": true}, selected)

	excluded := activeRules(nil, []string{"H008", "H010"})
	assert.False(t, excluded["H008"])
	assert.False(t, excluded["H010"])
	assert.True(t, excluded["H009"])
}

func TestRuleFilenameAndPathSpace(t *testing.T) {
	doc := &Document{Path: "/some dir/file name.md"}
	assert.Equal(t, []string{"H001"}, codesOf(ruleFilenameSpace(doc)))
	assert.Equal(t, []string{"H002"}, codesOf(rulePathSpace(doc)))

	clean := &Document{Path: "/somedir/filename.md"}
	assert.Empty(t, ruleFilenameSpace(clean))
	assert.Empty(t, rulePathSpace(clean))
}

func TestRuleYAML(t *testing.T) {
	t.Run("missing entirely", func(t *testing.T) {
		doc := Parse("x.md", "Just prose.\n")
		assert.Equal(t, []string{"H003"}, codesOf(ruleYAMLMissing(doc)))
		assert.Empty(t, ruleYAMLLangMissing(doc))
	})

	t.Run("present but empty fires H004 not H003", func(t *testing.T) {
		doc := Parse("x.md", "---\n---\n\n")
		assert.Empty(t, ruleYAMLMissing(doc))
		got := ruleYAMLLangMissing(doc)
		require.Len(t, got, 1)
		assert.Equal(t, "H004", got[0].Code)
	})

	t.Run("lang present and valid", func(t *testing.T) {
		doc := Parse("x.md", "---\nlang: en\n---\n\nBody\n")
		assert.Empty(t, ruleYAMLMissing(doc))
		assert.Empty(t, ruleYAMLLangMissing(doc))
		assert.Empty(t, ruleYAMLLangInvalid(doc))
	})

	t.Run("lang present but invalid", func(t *testing.T) {
		doc := Parse("x.md", "---\nlang: fr\n---\n\nBody\n")
		got := ruleYAMLLangInvalid(doc)
		require.Len(t, got, 1)
		assert.Equal(t, "H005", got[0].Code)
		assert.Equal(t, 2, got[0].Line)
	})

	t.Run("parse error suppresses H004/H005", func(t *testing.T) {
		doc := Parse("x.md", "---\nlang: [en\n---\n\nBody\n")
		require.Error(t, doc.YAMLError)
		assert.Empty(t, ruleYAMLLangMissing(doc))
		assert.Empty(t, ruleYAMLLangInvalid(doc))
	})
}

func TestRuleIncorrectWords(t *testing.T) {
	doc := Parse("x.md", "I wrote some Latex and also css today.\n")
	diags := ruleIncorrectWords(doc)
	require.Len(t, diags, 2)
	assert.Equal(t, "H006", diags[0].Code)
	assert.Contains(t, diags[0].Message, `"Latex"`)
	assert.Contains(t, diags[0].Message, `"LaTeX"`)
}

func TestRuleIncorrectWords_skipsCode(t *testing.T) {
	doc := Parse("x.md", "```\nLatex\n```\n")
	assert.Empty(t, ruleIncorrectWords(doc))
}

func TestRuleIncorrectWords_nonSimpleKeyBoundary(t *testing.T) {
	doc := Parse("x.md", "built with c++20 today\n")
	diags := ruleIncorrectWords(doc)
	for _, d := range diags {
		assert.NotContains(t, d.Message, `"c++"`, "c++20 must not also fire the bare c++ entry")
	}
}

func TestRuleIncorrectCodeLanguage(t *testing.T) {
	doc := Parse("x.md", "```py\nprint(1)\n```\n")
	diags := ruleIncorrectCodeLanguage(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H007", diags[0].Code)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 4, diags[0].Column)
}

func TestRuleTrailingWhitespace(t *testing.T) {
	doc := Parse("x.md", "clean\ntrailing  \n")
	diags := ruleTrailingWhitespace(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)
	assert.Equal(t, 9, diags[0].Column)
}

func TestRuleTabCharacter(t *testing.T) {
	doc := Parse("x.md", "a\tb\n")
	diags := ruleTabCharacter(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Column)
}

func TestRuleNoFinalNewline(t *testing.T) {
	doc := Parse("x.md", "one\ntwo")
	diags := ruleNoFinalNewline(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)

	ok := Parse("x.md", "one\ntwo\n")
	assert.Empty(t, ruleNoFinalNewline(ok))
}

func TestRuleDoubleBlankLines(t *testing.T) {
	doc := Parse("x.md", "para one\n\n\npara two\n\n\npara three\n")
	diags := ruleDoubleBlankLines(doc)
	// Only the first (lines 1-2) and last (lines 6-7) line pairs of the
	// content are boundary-skipped; here neither is a blank pair, so both
	// double blanks fire (lines 3 and 6) and nothing is reported at line 1.
	var lines []int
	for _, d := range diags {
		lines = append(lines, d.Line)
	}
	assert.NotContains(t, lines, 1)
}

func TestRuleDoubleSpaces(t *testing.T) {
	doc := Parse("x.md", "hello  world\n")
	diags := ruleDoubleSpaces(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H009", diags[0].Code)
}

func TestRuleDoubleSpaces_skipsTableRows(t *testing.T) {
	doc := Parse("x.md", "| a  | b |\n")
	assert.Empty(t, ruleDoubleSpaces(doc))
}

func TestRuleQuotes(t *testing.T) {
	doc := Parse("x.md", `She said "hello" to me.` + "\n")
	diags := ruleQuotes(doc)
	require.NotEmpty(t, diags)
	assert.Equal(t, "H018", diags[0].Code)
}

func TestRuleHTMLTags(t *testing.T) {
	doc := Parse("x.md", "Some <table> markup.\n")
	diags := ruleHTMLTags(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H019", diags[0].Code)
}

func TestRuleHTMLTags_allowsDetailsSummary(t *testing.T) {
	doc := Parse("x.md", "<details>\n<summary>Title</summary>\n\nBody\n\n</details>\n")
	assert.Empty(t, ruleHTMLTags(doc))
}

func TestRuleNumeroSpace(t *testing.T) {
	doc := Parse("x.md", "See item №5 above.\n")
	diags := ruleNumeroSpace(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H029", diags[0].Code)

	ok := Parse("x.md", "See item № 5 above.\n")
	assert.Empty(t, ruleNumeroSpace(ok))
}

func TestRuleQuestionMarkPeriod(t *testing.T) {
	doc := Parse("x.md", "Really?. Yes.\n")
	diags := ruleQuestionMarkPeriod(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H030", diags[0].Code)
}

func TestRuleRussianPolitePronoun(t *testing.T) {
	doc := Parse("x.md", "---\nlang: ru\n---\n\nЯ думаю, что Вы правы.\n")
	diags := ruleRussianPolitePronoun(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H024", diags[0].Code)
}

func TestRuleRussianPolitePronoun_notGatedWithoutRuLang(t *testing.T) {
	doc := Parse("x.md", "Я думаю, что Вы правы.\n")
	assert.Empty(t, ruleRussianPolitePronoun(doc))
}

func TestRuleRussianPolitePronoun_laterOccurrenceStillFlagged(t *testing.T) {
	// The first "Вы" is exempted as a sentence start; the rule must keep
	// scanning and flag the second, mid-sentence occurrence.
	doc := Parse("x.md", "---\nlang: ru\n---\n\nВы правы, а потом Вы согласились.\n")
	diags := ruleRussianPolitePronoun(doc)
	require.Len(t, diags, 1)
	assert.Equal(t, "H024", diags[0].Code)
	assert.Greater(t, diags[0].Column, 10)
}

func TestRunRules_ordersByLineColumnCode(t *testing.T) {
	doc := Parse("x.md", "a\tb  c\n")
	active := activeRules([]string{"H009", "H010"}, nil)
	diags := runRules(doc, active)
	require.Len(t, diags, 2)
	assert.Equal(t, "H010", diags[0].Code)
	assert.Equal(t, "H009", diags[1].Code)
}
