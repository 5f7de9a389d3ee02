package mdcheck

import (
	"path/filepath"
	"strings"
)

// ruleFilenameSpace flags a space anywhere in the file's base name (H001).
func ruleFilenameSpace(doc *Document) []Diagnostic {
	if strings.Contains(filepath.Base(doc.Path), " ") {
		return []Diagnostic{{Code: "H001", Message: ruleTitles["H001"]}}
	}
	return nil
}

// rulePathSpace flags a space anywhere in the supplied path (H002).
func rulePathSpace(doc *Document) []Diagnostic {
	if strings.Contains(doc.Path, " ") {
		return []Diagnostic{{Code: "H002", Message: ruleTitles["H002"]}}
	}
	return nil
}
