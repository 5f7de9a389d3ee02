package mdcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticString(t *testing.T) {
	cases := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"full", Diagnostic{Path: "a.md", Line: 3, Column: 5, Code: "H008", Message: "Trailing whitespace"}, "a.md:3:5: H008 Trailing whitespace"},
		{"no column", Diagnostic{Path: "a.md", Line: 3, Code: "H003", Message: "YAML is missing"}, "a.md:3: H003 YAML is missing"},
		{"no location", Diagnostic{Path: "a.md", Code: "H000", Message: "Exception error: boom"}, "a.md: H000 Exception error: boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.String())
		})
	}
}

func TestSortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{Line: 2, Column: 1, Code: "H009"},
		{Line: 1, Column: 5, Code: "H006"},
		{Line: 1, Column: 1, Code: "H008"},
		{Line: 1, Column: 1, Code: "H003"},
	}
	sortDiagnostics(diags)
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []string{"H003", "H008", "H006", "H009"}, codes)
}

func TestRelativePath(t *testing.T) {
	assert.Equal(t, "sub/a.md", relativePath("/root/proj", "/root/proj/sub/a.md"))
	assert.Equal(t, "/elsewhere/a.md", relativePath("/root/proj", "/elsewhere/a.md"))
	assert.Equal(t, "/root/proj/a.md", relativePath("", "/root/proj/a.md"))
}
