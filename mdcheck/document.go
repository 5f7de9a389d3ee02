// Package mdcheck implements the style-checking core: a Markdown
// segmenter, a registry of independent rules keyed off that segmentation,
// and a directory walker that feeds files to the rules.
//
// Rules never mutate shared state and a Document is a snapshot of a single
// file's text, so Check is safe to call concurrently across many files.
package mdcheck

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the segmented view of a single Markdown file that every rule
// consumes. It is constructed once per check and never mutated afterward.
type Document struct {
	// Path is the path the caller supplied (may be relative or absolute).
	Path string

	// Text is the full file content, as read.
	Text string

	// EndsWithNewline reports whether Text ends with "\n".
	EndsWithNewline bool

	// Lines holds every physical line of Text, separators stripped.
	Lines []string

	// YAMLEndLine is the 1-based line number of the closing "---" of the
	// YAML front matter, or 1 if there is no front matter.
	YAMLEndLine int

	// YAMLText is the front matter block including both "---" fences, or
	// empty if absent.
	YAMLText string

	// YAMLError is set when the front matter failed to parse; Lang is then
	// always empty and callers should surface an H000 diagnostic.
	YAMLError error

	// Lang is the YAML "lang" scalar, or empty if absent/unparseable.
	Lang string

	// ContentLines is the slice of Lines that follows the front matter (or
	// all of Lines, when there is none).
	ContentLines []string

	// ContentStartLine is the 1-based physical line number of ContentLines[0].
	ContentStartLine int

	// CodeMask[i] reports whether ContentLines[i] lies inside a fenced code
	// region.
	CodeMask []bool

	// Spans[i] is the inline-code partition of ContentLines[i]. It is only
	// populated for lines with CodeMask[i] == false; code lines get a nil
	// entry since they need no inline partitioning.
	Spans [][]Span
}

type yamlFrontMatter struct {
	Lang string `yaml:"lang"`
}

// Parse segments raw Markdown text into a Document. It never fails: parse
// errors are captured in Document.YAMLError for the caller to report as an
// H000 diagnostic, rather than propagated.
func Parse(path, text string) *Document {
	doc := &Document{
		Path:            path,
		Text:            text,
		EndsWithNewline: strings.HasSuffix(text, "\n"),
	}
	doc.Lines = splitLines(text)
	doc.splitYAML()
	doc.classifyCode()
	return doc
}

// splitLines mirrors Python's str.splitlines(): both "\n" and "\r\n" line
// endings are stripped identically, and a trailing separator does not
// produce a final empty element.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	if normalized == "" {
		return []string{""}
	}
	return strings.Split(normalized, "\n")
}

// splitYAML locates the front matter block, if any, and fills in
// YAMLEndLine, YAMLText, Lang, YAMLError, and ContentLines.
func (doc *Document) splitYAML() {
	doc.YAMLEndLine = 1
	doc.ContentLines = doc.Lines
	doc.ContentStartLine = 1

	if len(doc.Lines) == 0 || strings.TrimSpace(doc.Lines[0]) != "---" {
		return
	}

	closing := -1
	for i := 1; i < len(doc.Lines); i++ {
		if strings.TrimSpace(doc.Lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing < 0 {
		return
	}

	doc.YAMLEndLine = closing + 1 // 1-based line number of the closing fence
	doc.YAMLText = strings.Join(doc.Lines[:closing+1], "\n")
	doc.ContentLines = doc.Lines[closing+1:]
	doc.ContentStartLine = doc.YAMLEndLine + 1

	var front yamlFrontMatter
	if err := yaml.Unmarshal([]byte(doc.YAMLText), &front); err != nil {
		doc.YAMLError = err
		return
	}
	doc.Lang = front.Lang
}

// classifyCode walks ContentLines tracking a running fence-width counter,
// filling CodeMask, and partitions every non-code line into inline-code
// spans.
func (doc *Document) classifyCode() {
	doc.CodeMask = make([]bool, len(doc.ContentLines))
	doc.Spans = make([][]Span, len(doc.ContentLines))

	fenceLen := 0
	for i, line := range doc.ContentLines {
		trimmed := strings.TrimSpace(line)
		run := leadingBacktickRun(trimmed)

		switch {
		case run >= 3 && fenceLen == 0:
			fenceLen = run
			doc.CodeMask[i] = true
		case run >= 3 && run == fenceLen:
			fenceLen = 0
			doc.CodeMask[i] = true
		default:
			doc.CodeMask[i] = fenceLen != 0
		}

		if !doc.CodeMask[i] {
			doc.Spans[i] = PartitionInlineCode(line)
		}
	}
}

// leadingBacktickRun counts a run of backtick runes at the start of s. This
// is adapted from scandown/block.go's fence() delimiter-run counter, fixed
// to the backtick delimiter that fenced code blocks use in this spec.
func leadingBacktickRun(s string) int {
	n := 0
	for _, r := range s {
		if r != '`' {
			break
		}
		n++
	}
	return n
}

// YAMLPresent reports whether a front matter block was found.
func (doc *Document) YAMLPresent() bool {
	return doc.YAMLText != ""
}

// lineNumber converts a ContentLines index to its 1-based physical line
// number.
func (doc *Document) lineNumber(i int) int {
	return doc.ContentStartLine + i
}
