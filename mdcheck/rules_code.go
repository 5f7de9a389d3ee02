package mdcheck

import (
	"fmt"
	"strings"
)

// ruleIncorrectCodeLanguage flags a fenced code block whose language
// identifier should be spelled differently (H007), e.g. "py" instead of
// "python". Checked against the fence-opening line itself, so it fires
// whether or not the block's body is classified as code.
func ruleIncorrectCodeLanguage(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for i, line := range doc.ContentLines {
		trimmed := strings.TrimSpace(line)
		run := leadingBacktickRun(trimmed)
		if run < 3 {
			continue
		}
		rest := []rune(trimmed)[run:]
		j := 0
		for j < len(rest) && isWordRune(rest[j]) {
			j++
		}
		if j == 0 {
			continue
		}
		lang := string(rest[:j])
		correct, bad := incorrectLanguages[lang]
		if !bad {
			continue
		}
		leadingWS := runeLen(line) - runeLen(strings.TrimLeft(line, " \t"))
		diags = append(diags, Diagnostic{
			Code:    "H007",
			Message: fmt.Sprintf(`%s: "%s" should be "%s"`, ruleTitles["H007"], lang, correct),
			Line:    doc.lineNumber(i), Column: leadingWS + run + 1,
		})
	}
	return diags
}
