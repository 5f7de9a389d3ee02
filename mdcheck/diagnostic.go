package mdcheck

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Diagnostic describes a single rule violation. Line and Column are 1-based
// and zero when not applicable.
type Diagnostic struct {
	Code    string
	Message string
	Path    string
	Line    int
	Column  int
}

// String renders the diagnostic in the stable, test-observable format:
// "<rel-path>[:line[:col]]: CODE message". If Column is 0 it is omitted; if
// Line is also 0, both are omitted.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Path)
	if d.Line > 0 {
		fmt.Fprintf(&b, ":%d", d.Line)
		if d.Column > 0 {
			fmt.Fprintf(&b, ":%d", d.Column)
		}
	}
	fmt.Fprintf(&b, ": %s %s", d.Code, d.Message)
	return b.String()
}

// relativePath renders path relative to root when possible, falling back to
// the absolute form for paths outside of it.
func relativePath(root, path string) string {
	if root == "" {
		return path
	}
	absRoot, err := filepath.Abs(root)
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

// sortDiagnostics orders diagnostics by (line, column, code), stable within
// ties so scan order is preserved for same-key diagnostics.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.Code < b.Code
	})
}

// Strings renders each diagnostic with String(), preserving order.
func Strings(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}
