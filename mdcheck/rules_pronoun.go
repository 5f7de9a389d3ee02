package mdcheck

import (
	"fmt"
	"strings"
)

// ruleRussianPolitePronoun flags a capitalized Russian polite "you" pronoun
// used mid-sentence, where lowercase is expected (H024). Only checked for
// documents whose front matter declares lang: ru. Skips matches inside
// inline code and at the start of a sentence, and yields at most one
// diagnostic per line.
func ruleRussianPolitePronoun(doc *Document) []Diagnostic {
	if doc.Lang != "ru" {
		return nil
	}
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		if doc.CodeMask[i] {
			continue
		}
		spans := doc.Spans[i]
		runes := []rune(line)

		if diag, ok := firstPronounDiagnostic(runes, spans, doc.lineNumber(i)); ok {
			diags = append(diags, diag)
		}
	}
	return diags
}

// firstPronounDiagnostic scans every occurrence of every polite pronoun on
// the line, in word-list order, and returns the first one that isn't
// exempted by InsideCode or atSentenceStart. Scanning continues past an
// exempted occurrence instead of abandoning the rest of the line.
func firstPronounDiagnostic(runes []rune, spans []Span, lineNum int) (Diagnostic, bool) {
	for _, word := range russianPolitePronouns {
		for _, start := range findPronounMatches(runes, word) {
			if InsideCode(spans, start) {
				continue
			}
			if atSentenceStart(runes, start) {
				continue
			}
			return Diagnostic{
				Code: "H024",
				Message: fmt.Sprintf(`%s: use lowercase %q when addressing reader`,
					ruleTitles["H024"], strings.ToLower(word)),
				Line: lineNum, Column: start + 1,
			}, true
		}
	}
	return Diagnostic{}, false
}

// findPronounMatches returns every rune index of word within runes where
// both boundaries are non-word runes (or string edges).
func findPronounMatches(runes []rune, word string) []int {
	wr := []rune(word)
	var out []int
	for start := 0; start+len(wr) <= len(runes); start++ {
		match := true
		for j := range wr {
			if runes[start+j] != wr[j] {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if start > 0 && isWordRune(runes[start-1]) {
			continue
		}
		if end := start + len(wr); end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		out = append(out, start)
	}
	return out
}

// atSentenceStart reports whether the text preceding matchStart in runes is
// blank, or ends (after trailing whitespace) with sentence-ending
// punctuation.
func atSentenceStart(runes []rune, matchStart int) bool {
	before := runes[:matchStart]
	if strings.TrimSpace(string(before)) == "" {
		return true
	}
	j := len(before) - 1
	for j >= 0 && (before[j] == ' ' || before[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	r := before[j]
	return r == '.' || r == '!' || r == '?'
}
