package mdcheck

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
)

// Options configures a Check or CheckDirectory call. The zero value checks
// every known rule and renders diagnostic paths as given.
type Options struct {
	// Select, if non-nil, restricts checking to these rule codes (unknown
	// codes are silently dropped). Nil means every known rule.
	Select []string

	// Exclude removes rule codes from the active set after Select is
	// applied.
	Exclude []string

	// ProjectRoot is used to render diagnostic paths relative to it. Empty
	// means "do not rewrite paths" (Check renders the path verbatim).
	ProjectRoot string

	// IgnorePatterns adds doublestar glob patterns to the fixed ignore-name
	// set CheckDirectory's walker already applies.
	IgnorePatterns []string

	// Concurrency bounds how many files CheckDirectory checks at once. Zero
	// or negative means GOMAXPROCS.
	Concurrency int
}

// Check reads and checks a single Markdown file, returning its diagnostics
// as preformatted strings in (line, column, code) order. A file it can't
// read is reported as an H000 diagnostic, matching every other rule
// violation's shape.
func Check(path string, opts Options) []string {
	active := activeRules(opts.Select, opts.Exclude)
	var diags []Diagnostic

	data, err := os.ReadFile(path)
	if err != nil {
		// Filename/path rules need no file content, so they still fire even
		// when the file itself can't be read.
		filenameDoc := &Document{Path: path}
		if active["H001"] {
			diags = append(diags, ruleFilenameSpace(filenameDoc)...)
		}
		if active["H002"] {
			diags = append(diags, rulePathSpace(filenameDoc)...)
		}
		diags = append(diags, Diagnostic{Code: "H000", Message: fmt.Sprintf("Exception error: %s", err)})
		return finalizeDiagnostics(diags, path, opts.ProjectRoot)
	}

	doc := Parse(path, string(data))
	diags = append(diags, runRules(doc, active)...)
	if doc.YAMLError != nil {
		diags = append(diags, Diagnostic{
			Code: "H000", Message: fmt.Sprintf("YAML parsing error: %s", doc.YAMLError), Line: 1,
		})
	}

	return finalizeDiagnostics(diags, path, opts.ProjectRoot)
}

// CheckDirectory finds every Markdown file beneath dir and checks each,
// fanning the work out across Options.Concurrency workers (files are
// independent, so this is a pure throughput win). Only files with at least
// one diagnostic appear in the result.
func CheckDirectory(dir string, opts Options) (map[string][]string, error) {
	files, err := FindMarkdownFiles(dir, opts.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	workers := opts.Concurrency
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	type result struct {
		path  string
		diags []string
	}
	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- result{path: path, diags: Check(path, opts)}
			}
		}()
	}
	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(map[string][]string, len(files))
	for r := range results {
		if len(r.diags) > 0 {
			out[r.path] = r.diags
		}
	}
	return out, nil
}

// finalizeDiagnostics assigns every diagnostic its rendered path, sorts the
// set, and renders each to its final string form.
func finalizeDiagnostics(diags []Diagnostic, path, root string) []string {
	sortDiagnostics(diags)
	rel := relativePath(root, path)
	out := make([]string, len(diags))
	for i := range diags {
		diags[i].Path = rel
		out[i] = diags[i].String()
	}
	return out
}

// sortedKeys is a small helper for callers that want CheckDirectory's result
// map walked in deterministic order.
func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
