package mdcheck

// Span is one piece of a prose line's inline-code partition: either a prose
// fragment or an inline-code fragment (including its surrounding backtick
// fences). Concatenating every Span.Text of a partition reproduces the
// original line byte-for-byte.
type Span struct {
	Text string
	Code bool
}

// PartitionInlineCode splits a single line into an ordered sequence of
// prose/code Spans, per spec.md 4.1: a run of n backticks opens an inline
// span, closed by the next run of exactly n backticks later on the line. An
// unmatched open degrades to prose for the remainder of the line.
func PartitionInlineCode(line string) []Span {
	runes := []rune(line)
	var spans []Span
	start := 0
	i := 0
	for i < len(runes) {
		if runes[i] != '`' {
			i++
			continue
		}

		openStart := i
		openEnd := runEnd(runes, i)
		n := openEnd - openStart

		closeStart, closeEnd := findClosingRun(runes, openEnd, n)
		if closeStart < 0 {
			// Unmatched open: the rest of the line, this run included, is
			// prose.
			break
		}

		if openStart > start {
			spans = append(spans, Span{Text: string(runes[start:openStart]), Code: false})
		}
		spans = append(spans, Span{Text: string(runes[openStart:closeEnd]), Code: true})
		start = closeEnd
		i = closeEnd
	}

	if start < len(runes) || len(spans) == 0 {
		spans = append(spans, Span{Text: string(runes[start:]), Code: false})
	}
	return spans
}

// runEnd returns the index just past the run of backticks starting at i.
func runEnd(runes []rune, i int) int {
	for i < len(runes) && runes[i] == '`' {
		i++
	}
	return i
}

// findClosingRun scans runes[from:] for the next run of exactly n
// backticks, returning its [start, end) bounds, or (-1, -1) if none exists.
func findClosingRun(runes []rune, from, n int) (start, end int) {
	i := from
	for i < len(runes) {
		if runes[i] != '`' {
			i++
			continue
		}
		runStart := i
		runStop := runEnd(runes, i)
		if runStop-runStart == n {
			return runStart, runStop
		}
		i = runStop
	}
	return -1, -1
}

// ProseText joins only the non-code spans of a partition, in order, with no
// separator — used by rules that need a code-stripped view of a line (e.g.
// to look for a pattern that must not itself span a code boundary).
func ProseText(spans []Span) string {
	var b []byte
	for _, s := range spans {
		if !s.Code {
			b = append(b, s.Text...)
		}
	}
	return string(b)
}

// InsideCode reports whether the rune offset (0-based, counted over the
// full line that spans partitions) falls within an inline-code span.
func InsideCode(spans []Span, offset int) bool {
	pos := 0
	for _, s := range spans {
		n := len([]rune(s.Text))
		if s.Code && offset >= pos && offset < pos+n {
			return true
		}
		pos += n
	}
	return false
}
