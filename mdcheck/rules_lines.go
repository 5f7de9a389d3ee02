package mdcheck

import "strings"

// ruleTrailingWhitespace flags a trailing space or tab at line end (H008).
// Unlike most rules this one applies inside fenced code too: trailing
// whitespace is a file hygiene concern independent of Markdown semantics.
func ruleTrailingWhitespace(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}
		diags = append(diags, Diagnostic{
			Code: "H008", Message: ruleTitles["H008"],
			Line: doc.lineNumber(i), Column: runeLen(trimmed) + 1,
		})
	}
	return diags
}

// ruleTabCharacter flags the first tab character on a line (H010). Applies
// inside fenced code too, same rationale as H008.
func ruleTabCharacter(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if idx := firstRuneIndex(line, '\t'); idx >= 0 {
			diags = append(diags, Diagnostic{
				Code: "H010", Message: ruleTitles["H010"],
				Line: doc.lineNumber(i), Column: idx + 1,
			})
		}
	}
	return diags
}

// ruleNonBreakingSpace flags the first U+00A0 on a line (H022). Applies
// inside fenced code too, same rationale as H008.
func ruleNonBreakingSpace(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if idx := firstRuneIndex(line, ' '); idx >= 0 {
			diags = append(diags, Diagnostic{
				Code: "H022", Message: ruleTitles["H022"],
				Line: doc.lineNumber(i), Column: idx + 1,
			})
		}
	}
	return diags
}

// ruleNoFinalNewline flags a non-empty file whose text does not end with a
// newline (H011).
func ruleNoFinalNewline(doc *Document) []Diagnostic {
	if len(doc.Lines) == 0 || doc.EndsWithNewline {
		return nil
	}
	return []Diagnostic{{Code: "H011", Message: ruleTitles["H011"], Line: len(doc.Lines)}}
}

// ruleDoubleBlankLines flags two consecutive blank prose lines (H012),
// skipping code (Universal Property: most rules never fire inside code) and
// skipping the very first and very last blank-pair position in the content,
// a boundary carried over unchanged from the rule this was distilled from.
func ruleDoubleBlankLines(doc *Document) []Diagnostic {
	var diags []Diagnostic
	n := len(doc.ContentLines)
	for i := 0; i+1 < n; i++ {
		if i == 0 || i+1 == n-1 {
			continue
		}
		if doc.CodeMask[i] || doc.CodeMask[i+1] {
			continue
		}
		if strings.TrimSpace(doc.ContentLines[i]) == "" && strings.TrimSpace(doc.ContentLines[i+1]) == "" {
			diags = append(diags, Diagnostic{
				Code: "H012", Message: ruleTitles["H012"], Line: doc.lineNumber(i + 1),
			})
		}
	}
	return diags
}
