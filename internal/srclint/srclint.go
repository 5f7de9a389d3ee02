// Package srclint is a small secondary linter for Go source and other
// plain-text source files: HP001 flags stray Cyrillic letters, HP002 flags
// old-style (non-Markdown) doc-comment section formatting. Both support
// inline "ignore" and whole-file "file-ignore" directives.
package srclint

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Rules names every known rule code and its human-readable title, in
// reporting order.
var Rules = []struct {
	Code  string
	Title string
}{
	{"HP001", "Presence of Russian letters in the code"},
	{"HP002", "Old-style docstring formatting (non-Markdown style)"},
}

var allRuleCodes = func() map[string]bool {
	m := make(map[string]bool, len(Rules))
	for _, r := range Rules {
		m[r.Code] = true
	}
	return m
}()

var ruleTitle = func() map[string]string {
	m := make(map[string]string, len(Rules))
	for _, r := range Rules {
		m[r.Code] = r.Title
	}
	return m
}()

var (
	ignorePattern     = regexp.MustCompile(`(?i)#\s*ignore:\s*([A-Z0-9,\s]+)`)
	fileIgnorePattern = regexp.MustCompile(`(?i)#\s*file-ignore:\s*([A-Z0-9,\s]+)`)
	russianLetters    = regexp.MustCompile(`[\x{0400}-\x{04FF}]`)
)

// Checker checks source files for HP001/HP002, rendering paths relative to
// ProjectRoot.
type Checker struct {
	ProjectRoot string
}

// New builds a Checker rooted at root (already resolved; see
// internal/projectroot for the usual resolution strategy).
func New(root string) *Checker {
	return &Checker{ProjectRoot: root}
}

// Check reads and checks a single file, excluding any rule codes in exclude.
// A read failure is reported as a single P000 diagnostic rather
// than returned as an error, matching every other diagnostic's shape.
func (c *Checker) Check(path string, exclude map[string]bool) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{c.formatError("P000", fmt.Sprintf("Exception error: %s", err), path, 0, 0)}
	}

	lines := splitLines(string(data))
	active := make(map[string]bool, len(allRuleCodes))
	for code := range allRuleCodes {
		if !exclude[code] {
			active[code] = true
		}
	}
	for code := range fileIgnoredRules(lines) {
		delete(active, code)
	}

	var out []string
	out = append(out, c.checkContentRules(path, lines, active)...)
	return out
}

func (c *Checker) checkContentRules(path string, lines []string, rules map[string]bool) []string {
	var out []string
	if rules["HP001"] {
		for i, line := range lines {
			lineNum := i + 1
			if shouldIgnoreLine(line, "HP001") {
				continue
			}
			if loc := russianLetters.FindStringIndex(line); loc != nil {
				col := len([]rune(line[:loc[0]])) + 1
				out = append(out, c.formatError("HP001", ruleTitle["HP001"], path, lineNum, col))
			}
		}
	}
	if rules["HP002"] {
		out = append(out, c.checkOldStyleDocstrings(path, lines)...)
	}
	return out
}

var docstringKeywords = []string{
	"Args:", "Returns:", "Yields:", "Raises:", "Attributes:",
	"Note:", "Notes:", "Example:", "Examples:",
}

// checkOldStyleDocstrings reimplements the triple-quote nesting tracker: a
// line containing exactly one `"""`/`'''` toggles docstring state, a line
// containing exactly two is a closed single-line docstring. Within an open
// docstring, a section keyword immediately followed by indented, non-"-"
// text (no blank separator) is old style.
func (c *Checker) checkOldStyleDocstrings(path string, lines []string) []string {
	var out []string
	inDocstring := false

	for i, line := range lines {
		lineNum := i + 1
		if shouldIgnoreLine(line, "HP002") {
			continue
		}
		stripped := strings.TrimSpace(line)

		if strings.Contains(stripped, `"""`) || strings.Contains(stripped, "'''") {
			tripleDouble := strings.Count(stripped, `"""`)
			tripleSingle := strings.Count(stripped, "'''")
			switch {
			case tripleDouble == 1 || tripleSingle == 1:
				inDocstring = !inDocstring
			case tripleDouble == 2 || tripleSingle == 2:
				inDocstring = false
			}
		}

		if !inDocstring {
			continue
		}
		for _, keyword := range docstringKeywords {
			if (stripped != keyword && !strings.HasSuffix(stripped, keyword)) || lineNum >= len(lines) {
				continue
			}
			next := lines[lineNum] // lineNum is 1-based, slice is 0-based: lines[lineNum] is the line after this one
			nextStripped := strings.TrimSpace(next)
			if nextStripped != "" && !strings.HasPrefix(nextStripped, "-") &&
				next != "" && (next[0] == ' ' || next[0] == '\t') {
				out = append(out, c.formatError("HP002", ruleTitle["HP002"], path, lineNum, 0))
			}
		}
	}
	return out
}

func shouldIgnoreLine(line, code string) bool {
	m := ignorePattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	return parseRulesString(m[1])[code]
}

func fileIgnoredRules(lines []string) map[string]bool {
	out := map[string]bool{}
	for _, line := range lines {
		if m := fileIgnorePattern.FindStringSubmatch(line); m != nil {
			for code := range parseRulesString(m[1]) {
				out[code] = true
			}
		}
	}
	return out
}

func parseRulesString(s string) map[string]bool {
	out := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out[part] = true
		}
	}
	return out
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (c *Checker) formatError(code, message, path string, lineNum, col int) string {
	rel := c.relativePath(path)
	loc := rel
	if lineNum > 0 {
		loc += fmt.Sprintf(":%d", lineNum)
		if col > 0 {
			loc += fmt.Sprintf(":%d", col)
		}
	}
	hint := ""
	if allRuleCodes[code] {
		hint = fmt.Sprintf(" [to ignore: # ignore: %s]", code)
	}
	return fmt.Sprintf("%s: %s %s%s", loc, code, message, hint)
}

func (c *Checker) relativePath(path string) string {
	if c.ProjectRoot == "" {
		return path
	}
	absRoot, err := filepath.Abs(c.ProjectRoot)
	if err != nil {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}

// CheckDirectory walks dir for ".go" files (in deterministic lexicographic
// order) and checks each, returning only files with at least one
// diagnostic.
func (c *Checker) CheckDirectory(dir string, exclude map[string]bool) (map[string][]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			base := d.Name()
			if base != "." && strings.HasPrefix(base, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	out := make(map[string][]string, len(files))
	for _, f := range files {
		diags := c.Check(f, exclude)
		if len(diags) > 0 {
			out[f] = diags
		}
	}
	return out, nil
}
