package mdcheck

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r counts as part of a "word" for the purposes
// of the H006/H007/H024 boundary checks: letters (any script), digits, or
// underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isSimpleWord reports whether s is made entirely of word runes, i.e. it has
// no internal punctuation/space that would make a leading/trailing boundary
// check meaningless.
func isSimpleWord(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return s != ""
}

// isBoundaryRune reports whether r belongs to the restricted ASCII/Cyrillic
// word class used to guard keys that aren't simple words (e.g. "c++"):
// letters, digits, or underscore, but not the full Unicode letter set, so a
// key like "c++" still fails its boundary check against a trailing "20" in
// "c++20".
func isBoundaryRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я', r == 'ё', r == 'Ё':
		return true
	case r >= '0' && r <= '9', r == '_':
		return true
	default:
		return false
	}
}

// firstRuneIndex returns the 0-based rune index of the first r in s, or -1.
func firstRuneIndex(s string, r rune) int {
	for i, c := range []rune(s) {
		if c == r {
			return i
		}
	}
	return -1
}

// runeLen returns the rune count of s.
func runeLen(s string) int {
	return len([]rune(s))
}

// runeIndexOf returns the 0-based rune index of the first occurrence of
// substr in s, or -1.
func runeIndexOf(s, substr string) int {
	idx := strings.Index(s, substr)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:idx])
}

// allRuneIndices returns the 0-based rune index of every occurrence of
// target in s, in order.
func allRuneIndices(s string, target rune) []int {
	var out []int
	for i, r := range []rune(s) {
		if r == target {
			out = append(out, i)
		}
	}
	return out
}

// findIncorrectWord returns the 0-based rune index of key within s, or -1 if
// key does not occur with a boundary on both sides. Keys made entirely of
// word runes use isWordRune as the boundary class; other keys use the
// narrower isBoundaryRune class.
func findIncorrectWord(s, key string) int {
	sr := []rune(s)
	kr := []rune(key)
	if len(kr) == 0 || len(kr) > len(sr) {
		return -1
	}
	boundary := isWordRune
	if !isSimpleWord(key) {
		boundary = isBoundaryRune
	}
	for start := 0; start+len(kr) <= len(sr); start++ {
		match := true
		for j := 0; j < len(kr); j++ {
			if sr[start+j] != kr[j] {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if start > 0 && boundary(sr[start-1]) {
			continue
		}
		if end := start + len(kr); end < len(sr) && boundary(sr[end]) {
			continue
		}
		return start
	}
	return -1
}

// stripLinkTargets replaces "](...)" link-target spans with the neutral
// "]()" so a word form hidden in a URL never trips H006/H016/etc.
func stripLinkTargets(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == ']' && s[i+1] == '(' {
			if end := strings.IndexByte(s[i+2:], ')'); end >= 0 {
				b.WriteString("]()")
				i = i + 2 + end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// stripAngleTags replaces "<...>" spans with the neutral "<>" so raw HTML
// attributes never trip the prose rules.
func stripAngleTags(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '<' {
			if end := strings.IndexByte(s[i+1:], '>'); end >= 0 {
				b.WriteString("<>")
				i = i + 1 + end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// cleanProseLine strips inline code and neutralizes link targets and HTML
// tags, giving the prose rules a view of a line that can't false-positive on
// text that isn't really prose.
func cleanProseLine(spans []Span) string {
	s := ProseText(spans)
	s = stripLinkTargets(s)
	s = stripAngleTags(s)
	return s
}

// isLowerLetter reports whether r is a lowercase letter in any script
// (Latin and Cyrillic included).
func isLowerLetter(r rune) bool {
	return unicode.IsLower(r) && unicode.IsLetter(r)
}
