package mdcheck

import "fmt"

// ruleIncorrectWords flags a disallowed spelling or capitalization (H006),
// e.g. "Github" instead of "GitHub". Detected against a code-and-link-
// stripped view of the line, but located against the original line so the
// reported column points at the real text.
func ruleIncorrectWords(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		clean := cleanProseLine(doc.Spans[i])
		for _, wf := range incorrectWords {
			if findIncorrectWord(clean, wf.Incorrect) < 0 {
				continue
			}
			col := 1
			if idx := findIncorrectWord(line, wf.Incorrect); idx >= 0 {
				col = idx + 1
			}
			diags = append(diags, Diagnostic{
				Code: "H006",
				Message: fmt.Sprintf(`%s: %q should be %q`,
					ruleTitles["H006"], wf.Incorrect, wf.Correct),
				Line: doc.lineNumber(i), Column: col,
			})
		}
	}
	return diags
}
