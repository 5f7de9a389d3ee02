package mdcheck

import (
	"strings"
)

// ruleColonBeforeCode flags a paragraph line that should end with a colon
// because it introduces a fenced code block two lines down, separated by one
// blank line, but doesn't (H013).
func ruleColonBeforeCode(doc *Document) []Diagnostic {
	var diags []Diagnostic
	n := len(doc.ContentLines)
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		if i+2 >= n {
			continue
		}
		if !shouldCheckParagraphEnd(line) {
			continue
		}
		next := doc.ContentLines[i+1]
		nextNext := doc.ContentLines[i+2]
		if strings.TrimSpace(next) != "" || leadingBacktickRun(strings.TrimSpace(nextNext)) < 3 {
			continue
		}
		if containsAny(line, calloutBracketMarkers) || containsAny(line, calloutCommentMarkers) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "<") {
			continue
		}
		rstripped := strings.TrimRight(line, " \t")
		lastChar := lastRune(rstripped)
		if lastChar == ':' {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:    "H013",
			Message: formatLastChar(ruleTitles["H013"], lastChar),
			Line:    doc.lineNumber(i), Column: runeLen(rstripped),
		})
	}
	return diags
}

// ruleColonBeforeImage flags the same missing-colon pattern (H014), but
// looking two lines ahead for an image instead of a fence, with its own
// (narrower) set of exceptions.
func ruleColonBeforeImage(doc *Document) []Diagnostic {
	var diags []Diagnostic
	n := len(doc.ContentLines)
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		if i+2 >= n {
			continue
		}
		if !shouldCheckParagraphEnd(line) {
			continue
		}
		next := doc.ContentLines[i+1]
		nextNext := doc.ContentLines[i+2]
		if strings.TrimSpace(next) != "" || !strings.HasPrefix(strings.TrimSpace(nextNext), "![") {
			continue
		}
		if containsAny(line, calloutCommentMarkers) {
			continue
		}
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "<") {
			continue
		}
		if runeLen(stripped) >= 2 && strings.HasPrefix(stripped, "_") && strings.HasSuffix(stripped, "_") {
			continue
		}
		if strings.HasPrefix(stripped, "- ") {
			continue
		}
		rstripped := strings.TrimRight(line, " \t")
		lastChar := lastRune(rstripped)
		if lastChar == ':' {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:    "H014",
			Message: formatLastChar(ruleTitles["H014"], lastChar),
			Line:    doc.lineNumber(i), Column: runeLen(rstripped),
		})
	}
	return diags
}

// ruleEmptyLineBetweenParagraphs flags two adjacent non-blank prose lines
// that should be separated by a blank line (H023): plain paragraph text on
// both lines (not headings, list items, blockquotes, tables, math fences,
// images, or <details>/<summary> tags), and not inside a <details> block.
func ruleEmptyLineBetweenParagraphs(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i+1 < len(doc.ContentLines); i++ {
		lineI := doc.ContentLines[i]
		lineNext := doc.ContentLines[i+1]
		if strings.TrimSpace(lineI) == "" || strings.TrimSpace(lineNext) == "" {
			continue
		}
		if doc.CodeMask[i] || doc.CodeMask[i+1] {
			continue
		}
		if insideDetailsBlock(doc.ContentLines, i) {
			continue
		}
		if !isParagraphPairRequiringEmptyLine(lineI, lineNext) {
			continue
		}
		diags = append(diags, Diagnostic{
			Code:    "H023",
			Message: ruleTitles["H023"] + ": add empty line between paragraphs",
			Line:    doc.lineNumber(i),
		})
	}
	return diags
}

// shouldCheckParagraphEnd reports whether line is an ordinary paragraph line
// that is expected to end with a colon before a following code block or
// image (not blank, not a lone fence, not an image or heading line itself).
func shouldCheckParagraphEnd(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if stripped == "```" {
		return false
	}
	if strings.HasPrefix(stripped, "![") {
		return false
	}
	return !strings.HasPrefix(stripped, "#")
}

// insideDetailsBlock reports whether ContentLines[lineIndex] lies inside a
// <details>...</details> region, by counting nesting up to and including
// that line.
func insideDetailsBlock(contentLines []string, lineIndex int) bool {
	nest := 0
	for j := 0; j <= lineIndex; j++ {
		lower := strings.ToLower(strings.TrimSpace(contentLines[j]))
		if strings.Contains(lower, "<details") {
			nest++
		}
		if strings.Contains(lower, "</details>") {
			nest--
		}
	}
	return nest > 0
}

// isParagraphPairRequiringEmptyLine decides whether two consecutive
// non-blank lines are both "plain paragraph" lines that must have a blank
// line between them.
func isParagraphPairRequiringEmptyLine(lineI, lineINext string) bool {
	strippedI := strings.TrimSpace(lineI)
	strippedNext := strings.TrimSpace(lineINext)
	if strippedI == "" || strippedNext == "" {
		return false
	}
	lowerI := strings.ToLower(strippedI)
	if hasAnyPrefix(lowerI, "<details", "</details>", "<summary", "</summary>") {
		return false
	}
	lowerNext := strings.ToLower(strippedNext)
	if hasAnyPrefix(lowerNext, "<details", "</details>", "<summary", "</summary>") {
		return false
	}
	if hasAnyPrefix(strippedI, "$$", "![", "#") {
		return false
	}
	if hasAnyPrefix(strippedI, "* ", "- ", "  * ", "  - ") {
		return false
	}
	if hasAnyPrefix(strippedNext, "![", "$$", "#", "- ") {
		return false
	}
	for _, first := range []rune{[]rune(strippedI)[0], []rune(strippedNext)[0]} {
		if first == '|' || first == '*' || first == '>' || (first >= '0' && first <= '9') {
			return false
		}
	}
	return true
}

// isTableCellOnlyDash reports whether the rune position pos in line falls
// inside a "| - |" table cell whose only content is a hyphen, exempting it
// from the " - " em-dash rule (H016).
func isTableCellOnlyDash(line string, pos int) bool {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return false
	}
	start := 0
	for _, part := range parts {
		n := runeLen(part)
		end := start + n
		if start <= pos && pos < end {
			return strings.TrimSpace(part) == "-"
		}
		start = end + 1
	}
	return false
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

func formatLastChar(title string, last rune) string {
	if last == 0 {
		return title + `: last char is ""`
	}
	return title + `: last char is "` + string(last) + `"`
}
