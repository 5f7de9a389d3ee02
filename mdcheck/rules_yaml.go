package mdcheck

import (
	"strings"
	"unicode/utf8"
)

// ruleYAMLMissing flags a document with no "---" front matter block at all
// (H003). A present-but-empty block is H004's concern, not this rule's.
func ruleYAMLMissing(doc *Document) []Diagnostic {
	if doc.YAMLText == "" {
		return []Diagnostic{{Code: "H003", Message: ruleTitles["H003"], Line: 1}}
	}
	return nil
}

// ruleYAMLLangMissing flags front matter that parsed cleanly but carries no
// "lang" scalar (H004). Parse failures are reported as H000, not H004.
func ruleYAMLLangMissing(doc *Document) []Diagnostic {
	if doc.YAMLText == "" || doc.YAMLError != nil || doc.Lang != "" {
		return nil
	}
	return []Diagnostic{{Code: "H004", Message: ruleTitles["H004"], Line: doc.YAMLEndLine}}
}

// ruleYAMLLangInvalid flags a "lang" scalar outside {en, ru} (H005).
func ruleYAMLLangInvalid(doc *Document) []Diagnostic {
	if doc.YAMLText == "" || doc.YAMLError != nil || doc.Lang == "" {
		return nil
	}
	if doc.Lang == "en" || doc.Lang == "ru" {
		return nil
	}
	line, col := findYAMLLangLocation(doc)
	return []Diagnostic{{Code: "H005", Message: ruleTitles["H005"], Line: line, Column: col}}
}

// findYAMLLangLocation locates the physical line and column of the "lang"
// field's value, for pointing H005 at the offending scalar rather than just
// the front matter's closing fence.
func findYAMLLangLocation(doc *Document) (line, col int) {
	closingIdx := doc.YAMLEndLine - 1
	for i := 1; i < closingIdx && i < len(doc.Lines); i++ {
		trimmed := strings.TrimSpace(doc.Lines[i])
		if strings.HasPrefix(trimmed, "lang:") {
			if c := yamlValueColumn(doc.Lines[i], "lang"); c > 0 {
				return i + 1, c
			}
			return i + 1, 1
		}
	}
	return 2, 1
}

// yamlValueColumn returns the 1-based rune column of the first non-blank
// character following "field:" in line, or 0 if no such character exists.
func yamlValueColumn(line, field string) int {
	key := field + ":"
	byteIdx := strings.Index(line, key)
	if byteIdx < 0 {
		return 0
	}
	pos := byteIdx + len(key)
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}
	if pos >= len(line) {
		return 0
	}
	return utf8.RuneCountInString(line[:pos]) + 1
}
