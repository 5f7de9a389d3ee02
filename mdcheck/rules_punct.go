package mdcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ruleDoubleSpaces flags a run of two spaces in prose (H009), skipping list
// indentation, lines immediately following a list item, and table rows.
func ruleDoubleSpaces(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		if !strings.Contains(line, "  ") {
			continue
		}
		if hasAnyPrefix(line, "  ", "  *", "  -") {
			continue
		}
		if i > 0 {
			prev := strings.TrimSpace(doc.ContentLines[i-1])
			if strings.HasPrefix(prev, "*") || strings.HasPrefix(prev, "-") {
				continue
			}
		}
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			continue
		}
		diags = append(diags, Diagnostic{
			Code: "H009", Message: ruleTitles["H009"],
			Line: doc.lineNumber(i), Column: runeIndexOf(line, "  ") + 1,
		})
	}
	return diags
}

// ruleSpaceBeforePunctuation flags a space immediately before a sentence
// punctuation mark (H015), skipping matches inside inline code.
func ruleSpaceBeforePunctuation(doc *Document) []Diagnostic {
	var diags []Diagnostic
	patterns := []struct{ pat, display string }{
		{" .", " ."}, {" ,", " ,"}, {" ;", " ;"}, {" :", " :"}, {" ?", " ?"},
	}
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		spans := doc.Spans[i]
		for _, p := range patterns {
			idx := runeIndexOf(line, p.pat)
			if idx < 0 {
				continue
			}
			if InsideCode(spans, idx) {
				continue
			}
			diags = append(diags, Diagnostic{
				Code:    "H015",
				Message: fmt.Sprintf(`%s: found "%s"`, ruleTitles["H015"], p.display),
				Line:    doc.lineNumber(i), Column: idx + 1,
			})
		}

		if idx := runeIndexOf(line, " !"); idx >= 0 && !InsideCode(spans, idx) {
			rest := string([]rune(line)[idx:])
			exempt := hasAnyPrefix(rest, " !details", " !note", " !important", " !warning")
			if !exempt && !strings.HasPrefix(strings.TrimSpace(line), "!") {
				diags = append(diags, Diagnostic{
					Code:    "H015",
					Message: fmt.Sprintf(`%s: found " !"`, ruleTitles["H015"]),
					Line:    doc.lineNumber(i), Column: idx + 1,
				})
			}
		}
	}
	return diags
}

// ruleDashUsage flags four distinct dash/hyphen misuses (H016): a spaced
// hyphen standing in for an em dash, a Unicode minus sign or double hyphen
// standing in for an em dash, an en dash not flanked by digits, and an em
// dash not flanked by spaces (or, at line start, not followed by one).
func ruleDashUsage(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		spans := doc.Spans[i]
		clean := cleanProseLine(spans)
		lineNum := doc.lineNumber(i)

		if d, ok := findHyphenForEmDash(spans, line, lineNum); ok {
			diags = append(diags, d)
		}
		if d, ok := findMinusOrDoubleHyphen(spans, lineNum); ok {
			diags = append(diags, d)
		}
		diags = append(diags, findEnDashNotBetweenDigits(line, clean, lineNum)...)
		diags = append(diags, findEmDashNotBetweenSpaces(line, clean, lineNum)...)
	}
	return diags
}

func findHyphenForEmDash(spans []Span, line string, lineNum int) (Diagnostic, bool) {
	offset := 0
	for _, sp := range spans {
		if sp.Code {
			offset += runeLen(sp.Text)
			continue
		}
		if idx := runeIndexOf(sp.Text, " - "); idx >= 0 && strings.TrimSpace(sp.Text) != "" &&
			!strings.HasPrefix(strings.TrimSpace(sp.Text), "-") {
			pos := offset + idx
			if strings.Contains(line, "|") && isTableCellOnlyDash(line, pos) {
				offset += runeLen(sp.Text)
				continue
			}
			return Diagnostic{
				Code: "H016", Message: ruleTitles["H016"] + `: " - " should be " — " (em dash)`,
				Line: lineNum, Column: pos + 1,
			}, true
		}
		offset += runeLen(sp.Text)
	}
	return Diagnostic{}, false
}

func findMinusOrDoubleHyphen(spans []Span, lineNum int) (Diagnostic, bool) {
	offset := 0
	for _, sp := range spans {
		if sp.Code {
			offset += runeLen(sp.Text)
			continue
		}
		if idx := runeIndexOf(sp.Text, " − "); idx >= 0 {
			return Diagnostic{
				Code: "H016", Message: ruleTitles["H016"] + `: " − " (minus) should be " — " (em dash)`,
				Line: lineNum, Column: offset + idx + 1,
			}, true
		}
		if idx := runeIndexOf(sp.Text, " -- "); idx >= 0 {
			return Diagnostic{
				Code: "H016", Message: ruleTitles["H016"] + `: " -- " should be " — " (em dash)`,
				Line: lineNum, Column: offset + idx + 1,
			}, true
		}
		offset += runeLen(sp.Text)
	}
	return Diagnostic{}, false
}

func findEnDashNotBetweenDigits(line, clean string, lineNum int) []Diagnostic {
	if !strings.Contains(clean, "–") {
		return nil
	}
	lineMatches := allRuneIndices(line, '–')
	cleanMatches := allRuneIndices(clean, '–')
	cleanRunes := []rune(clean)
	var diags []Diagnostic
	for i, pos := range cleanMatches {
		var before, after rune
		if pos > 0 {
			before = cleanRunes[pos-1]
		}
		if pos+1 < len(cleanRunes) {
			after = cleanRunes[pos+1]
		}
		if isASCIIDigit(before) && isASCIIDigit(after) {
			continue
		}
		colPos := pos
		if i < len(lineMatches) {
			colPos = lineMatches[i]
		}
		diags = append(diags, Diagnostic{
			Code: "H016", Message: ruleTitles["H016"] + `: en dash "–" should only be between digits`,
			Line: lineNum, Column: colPos + 1,
		})
	}
	return diags
}

func findEmDashNotBetweenSpaces(line, clean string, lineNum int) []Diagnostic {
	if !strings.Contains(clean, "—") {
		return nil
	}
	lineMatches := allRuneIndices(line, '—')
	cleanMatches := allRuneIndices(clean, '—')
	cleanRunes := []rune(clean)
	var diags []Diagnostic
	for i, pos := range cleanMatches {
		before, after := rune(' '), rune(' ')
		if pos > 0 {
			before = cleanRunes[pos-1]
		}
		if pos+1 < len(cleanRunes) {
			after = cleanRunes[pos+1]
		}
		colPos := pos
		if i < len(lineMatches) {
			colPos = lineMatches[i]
		}
		if pos == 0 {
			if after != ' ' {
				diags = append(diags, Diagnostic{
					Code: "H016", Message: ruleTitles["H016"] + `: em dash "—" at start should be followed by space`,
					Line: lineNum, Column: colPos + 1,
				})
			}
			continue
		}
		if !(before == ' ' && after == ' ') {
			diags = append(diags, Diagnostic{
				Code: "H016", Message: ruleTitles["H016"] + `: em dash "—" should have spaces around it`,
				Line: lineNum, Column: colPos + 1,
			})
		}
	}
	return diags
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ruleEllipsis flags three literal dots used instead of the ellipsis
// character, and an ellipsis character left dangling at line end (H017).
func ruleEllipsis(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		clean := cleanProseLine(doc.Spans[i])
		lineNum := doc.lineNumber(i)

		if strings.Contains(clean, "...") {
			col := runeIndexOf(line, "...")
			if col < 0 {
				col = runeIndexOf(clean, "...")
			}
			diags = append(diags, Diagnostic{
				Code: "H017", Message: ruleTitles["H017"] + `: "..." should be "…"`,
				Line: lineNum, Column: col + 1,
			})
		}

		if strings.HasSuffix(strings.TrimRight(clean, " \t"), "…") {
			trimmed := strings.TrimRight(line, " \t")
			col := strings.LastIndex(trimmed, "…")
			if col >= 0 {
				col = runeIndexOf(trimmed, trimmed[col:])
			}
			diags = append(diags, Diagnostic{
				Code: "H017", Message: ruleTitles["H017"] + `: ellipsis "…" at end of line`,
				Line: lineNum, Column: col + 1,
			})
		}
	}
	return diags
}

// ruleQuotes flags straight double quotes, curly quotes, and guillemets used
// with a space on the wrong side (H018). More than one can fire per line.
func ruleQuotes(doc *Document) []Diagnostic {
	entries := []struct{ char, desc string }{
		{`"`, `straight double quote "`},
		{"“", "curly quote “"},
		{"”", "curly quote ”"},
		{"« ", "space after «"},
		{" »", "space before »"},
	}
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		clean := cleanProseLine(doc.Spans[i])
		for _, e := range entries {
			if !strings.Contains(clean, e.char) {
				continue
			}
			col := runeIndexOf(line, e.char)
			if col < 0 {
				col = runeIndexOf(clean, e.char)
			}
			diags = append(diags, Diagnostic{
				Code: "H018", Message: fmt.Sprintf("%s: found %s", ruleTitles["H018"], e.desc),
				Line: doc.lineNumber(i), Column: col + 1,
			})
		}
	}
	return diags
}

// ruleHTMLTags flags forbidden raw HTML tags in prose (H019), except the
// <details>/<summary> pair used for collapsible sections.
func ruleHTMLTags(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		lower := strings.ToLower(line)
		for _, tag := range forbiddenHTMLTags {
			tagLower := strings.ToLower(tag)
			pos := strings.Index(lower, tagLower)
			if pos < 0 {
				continue
			}
			rest := lower[pos:]
			if hasAnyPrefix(rest, "<details", "<details>", "</details>", "<summary", "<summary>", "</summary>") {
				continue
			}
			diags = append(diags, Diagnostic{
				Code: "H019", Message: fmt.Sprintf(`%s: found "%s"`, ruleTitles["H019"], tag),
				Line: doc.lineNumber(i), Column: utf8.RuneCountInString(lower[:pos]) + 1,
			})
		}
	}
	return diags
}

// ruleImageCaptionCase flags an image caption beginning with a lowercase
// letter (H020). The column is always 3, the position right after "![".
func ruleImageCaptionCase(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, "![") {
			continue
		}
		closeIdx := strings.IndexByte(stripped, ']')
		if closeIdx < 0 {
			continue
		}
		caption := stripped[2:closeIdx]
		if caption == "" {
			continue
		}
		first := []rune(caption)[0]
		if !isLowerLetter(first) {
			continue
		}
		diags = append(diags, Diagnostic{
			Code: "H020", Message: fmt.Sprintf(`%s: caption starts with "%c"`, ruleTitles["H020"], first),
			Line: doc.lineNumber(i), Column: 3,
		})
	}
	return diags
}

// ruleLowercaseAfterPunctuation flags a lowercase letter following
// sentence-ending punctuation and whitespace (H021), except recognized
// abbreviations like "e.g." or "т. д.".
func ruleLowercaseAfterPunctuation(doc *Document) []Diagnostic {
	var diags []Diagnostic
	exceptions := []string{"e.g.", "i.e.", "т. е", "т. д", "т. ч", "т. п"}
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		clean := cleanProseLine(doc.Spans[i])
		cleanRunes := []rune(clean)
		lineNum := doc.lineNumber(i)

		pos := 0
		for pos < len(cleanRunes) {
			r := cleanRunes[pos]
			if r != '.' && r != '!' && r != '?' {
				pos++
				continue
			}
			j := pos + 1
			for j < len(cleanRunes) && (cleanRunes[j] == ' ' || cleanRunes[j] == '\t') {
				j++
			}
			if j == pos+1 || j >= len(cleanRunes) || !isLowerLetter(cleanRunes[j]) {
				pos++
				continue
			}
			letter := cleanRunes[j]
			ctxStart := pos - 4
			if ctxStart < 0 {
				ctxStart = 0
			}
			contextBefore := string(cleanRunes[ctxStart : pos+1])
			if containsAny(contextBefore, exceptions) {
				pos = j + 1
				continue
			}
			matched := string(cleanRunes[pos : j+1])
			col := runeIndexOf(line, matched)
			if col >= 0 {
				col += j - pos
			} else {
				col = j
			}
			diags = append(diags, Diagnostic{
				Code: "H021", Message: fmt.Sprintf(`%s: found lowercase "%c" after punctuation`, ruleTitles["H021"], letter),
				Line: lineNum, Column: col + 1,
			})
			pos = j + 1
		}
	}
	return diags
}

// ruleMultiplicationX flags a bare Latin or Cyrillic "x" used between
// spaces/digits where the multiplication sign should be used instead
// (H025), except the "x86"/"x64" architecture names and a leading digit
// count like "2x USB".
func ruleMultiplicationX(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		offset := 0
		for _, sp := range doc.Spans[i] {
			if sp.Code {
				offset += runeLen(sp.Text)
				continue
			}
			seg := []rune(sp.Text)
			for pos, ch := range seg {
				if ch != 'x' && ch != 'х' {
					continue
				}
				if pos <= 0 || pos >= len(seg)-1 {
					continue
				}
				before, after := seg[pos-1], seg[pos+1]
				if before != ' ' && before != '\t' && !isASCIIDigit(before) {
					continue
				}
				if after != ' ' && after != '\t' && !isASCIIDigit(after) {
					continue
				}
				var msg string
				if ch == 'x' {
					part := string(seg[pos:min(pos+3, len(seg))])
					if before == ' ' && (part == "x86" || part == "x64") {
						continue
					}
					if isASCIIDigit(before) && (after == ' ' || after == '\t') {
						continue
					}
					msg = ruleTitles["H025"] + `: "x" should be "×"`
				} else {
					msg = ruleTitles["H025"] + `: "х" should be "×"`
				}
				diags = append(diags, Diagnostic{
					Code: "H025", Message: msg, Line: doc.lineNumber(i), Column: offset + pos + 1,
				})
			}
			offset += runeLen(sp.Text)
		}
	}
	return diags
}

// ruleImageNotAtLineStart flags "![" appearing anywhere but the start of a
// (trimmed) line (H026).
func ruleImageNotAtLineStart(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		trimmed := strings.TrimSpace(line)
		idx := strings.Index(trimmed, "![")
		if idx < 0 || idx == 0 {
			continue
		}
		diags = append(diags, Diagnostic{
			Code: "H026", Message: ruleTitles["H026"],
			Line: doc.lineNumber(i), Column: runeIndexOf(line, "![") + 1,
		})
	}
	return diags
}

// ruleHorizontalBar flags the dialogue dash U+2015, which this checker's
// source material never uses in favor of the em dash (H028).
func ruleHorizontalBar(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		clean := cleanProseLine(doc.Spans[i])
		if !strings.Contains(clean, "―") {
			continue
		}
		diags = append(diags, Diagnostic{
			Code: "H028", Message: ruleTitles["H028"],
			Line: doc.lineNumber(i), Column: runeIndexOf(line, "―") + 1,
		})
	}
	return diags
}

// ruleNumeroSpace flags a "№" not followed by a space (H029).
func ruleNumeroSpace(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		runes := []rune(line)
		for pos, r := range runes {
			if r != '№' {
				continue
			}
			if pos+1 < len(runes) && runes[pos+1] != ' ' {
				diags = append(diags, Diagnostic{
					Code: "H029", Message: ruleTitles["H029"],
					Line: doc.lineNumber(i), Column: pos + 1,
				})
			}
		}
	}
	return diags
}

// ruleQuestionMarkPeriod flags "?." outside inline code (H030), reporting
// only the first occurrence per line.
func ruleQuestionMarkPeriod(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		offset := 0
		for _, sp := range doc.Spans[i] {
			if sp.Code {
				offset += runeLen(sp.Text)
				continue
			}
			if idx := runeIndexOf(sp.Text, "?."); idx >= 0 {
				diags = append(diags, Diagnostic{
					Code: "H030", Message: ruleTitles["H030"],
					Line: doc.lineNumber(i), Column: offset + idx + 1,
				})
				break
			}
			offset += runeLen(sp.Text)
		}
	}
	return diags
}
