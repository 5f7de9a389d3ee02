package mdcheck

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
)

var foldCase = cases.Fold()

// ignoredNames lists directory and file base names that FindMarkdownFiles
// never descends into or reports, mirroring the fixed ignore set project
// tooling in this family has always carried.
var ignoredNames = map[string]bool{
	"__pycache__":   true,
	".cache":        true,
	".DS_Store":     true,
	".git":          true,
	".idea":         true,
	".npm":          true,
	".pytest_cache": true,
	".venv":         true,
	".vs":           true,
	".vscode":       true,
	"build":         true,
	"config":        true,
	"dist":          true,
	"node_modules":  true,
	"tests":         true,
	"Thumbs.db":     true,
	"venv":          true,
}

// shouldIgnoreEntry reports whether base should be skipped: hidden entries
// (besides "." and ".."), fixed ignore names, and any caller-supplied
// doublestar glob pattern matched against relPath.
func shouldIgnoreEntry(base, relPath string, extra []string) bool {
	if strings.HasPrefix(base, ".") && base != "." && base != ".." {
		return true
	}
	if ignoredNames[base] {
		return true
	}
	slashed := filepath.ToSlash(relPath)
	for _, pattern := range extra {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// isMarkdownFile reports whether base has a ".md" or ".markdown" extension,
// matched case-insensitively.
func isMarkdownFile(base string) bool {
	ext := foldCase.String(filepath.Ext(base))
	return ext == ".md" || ext == ".markdown"
}

// FindMarkdownFiles walks dir recursively, in deterministic lexicographic
// order, returning every ".md"/".markdown" file it finds. Hidden entries and
// the fixed ignore-name set are never descended into; extraIgnorePatterns
// adds caller-supplied doublestar globs evaluated against each
// subdirectory's path relative to dir and against its base name. Files are
// not filtered by these patterns.
func FindMarkdownFiles(dir string, extraIgnorePatterns []string) ([]string, error) {
	var out []string
	err := walkMarkdown(dir, dir, extraIgnorePatterns, &out)
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func walkMarkdown(root, dir string, extra []string, out *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		base := entry.Name()
		full := filepath.Join(dir, base)
		rel, err := filepath.Rel(root, full)
		if err != nil {
			rel = full
		}
		if entry.IsDir() {
			if shouldIgnoreEntry(base, rel, extra) {
				continue
			}
			if err := walkMarkdown(root, full, extra, out); err != nil {
				return err
			}
			continue
		}
		if isMarkdownFile(base) {
			*out = append(*out, full)
		}
	}
	return nil
}
