package mdcheck

// RuleFunc is a pure function from a segmented Document to the diagnostics
// it produces. Rules never look at other rules' output and never mutate the
// Document.
type RuleFunc func(doc *Document) []Diagnostic

// Rule pairs a stable code and title with its RuleFunc.
type Rule struct {
	Code  string
	Title string
	Func  RuleFunc
}

// registry is the ordered list of every known rule. Order here determines
// scan-order tie-breaking before the final (line, column, code) sort.
var registry = []Rule{
	{"H001", ruleTitles["H001"], ruleFilenameSpace},
	{"H002", ruleTitles["H002"], rulePathSpace},
	{"H003", ruleTitles["H003"], ruleYAMLMissing},
	{"H004", ruleTitles["H004"], ruleYAMLLangMissing},
	{"H005", ruleTitles["H005"], ruleYAMLLangInvalid},
	{"H006", ruleTitles["H006"], ruleIncorrectWords},
	{"H007", ruleTitles["H007"], ruleIncorrectCodeLanguage},
	{"H008", ruleTitles["H008"], ruleTrailingWhitespace},
	{"H009", ruleTitles["H009"], ruleDoubleSpaces},
	{"H010", ruleTitles["H010"], ruleTabCharacter},
	{"H011", ruleTitles["H011"], ruleNoFinalNewline},
	{"H012", ruleTitles["H012"], ruleDoubleBlankLines},
	{"H013", ruleTitles["H013"], ruleColonBeforeCode},
	{"H014", ruleTitles["H014"], ruleColonBeforeImage},
	{"H015", ruleTitles["H015"], ruleSpaceBeforePunctuation},
	{"H016", ruleTitles["H016"], ruleDashUsage},
	{"H017", ruleTitles["H017"], ruleEllipsis},
	{"H018", ruleTitles["H018"], ruleQuotes},
	{"H019", ruleTitles["H019"], ruleHTMLTags},
	{"H020", ruleTitles["H020"], ruleImageCaptionCase},
	{"H021", ruleTitles["H021"], ruleLowercaseAfterPunctuation},
	{"H022", ruleTitles["H022"], ruleNonBreakingSpace},
	{"H023", ruleTitles["H023"], ruleEmptyLineBetweenParagraphs},
	{"H024", ruleTitles["H024"], ruleRussianPolitePronoun},
	{"H025", ruleTitles["H025"], ruleMultiplicationX},
	{"H026", ruleTitles["H026"], ruleImageNotAtLineStart},
	{"H028", ruleTitles["H028"], ruleHorizontalBar},
	{"H029", ruleTitles["H029"], ruleNumeroSpace},
	{"H030", ruleTitles["H030"], ruleQuestionMarkPeriod},
}

// knownRuleCodes is the set of every code in registry, used to silently drop
// unknown select/exclude codes.
var knownRuleCodes = func() map[string]bool {
	m := make(map[string]bool, len(registry))
	for _, r := range registry {
		m[r.Code] = true
	}
	return m
}()

// activeRules resolves the effective rule set for a Check call:
// active = (select ∩ known) if select given, else known; then minus exclude.
// Unknown codes in either set are silently dropped.
func activeRules(selectCodes, excludeCodes []string) map[string]bool {
	active := make(map[string]bool, len(registry))
	if selectCodes == nil {
		for code := range knownRuleCodes {
			active[code] = true
		}
	} else {
		for _, code := range selectCodes {
			if knownRuleCodes[code] {
				active[code] = true
			}
		}
	}
	for _, code := range excludeCodes {
		delete(active, code)
	}
	return active
}

// runRules executes every active rule, in registry order, against doc and
// returns the concatenated, fully sorted diagnostics.
func runRules(doc *Document, active map[string]bool) []Diagnostic {
	var diags []Diagnostic
	for _, rule := range registry {
		if !active[rule.Code] {
			continue
		}
		diags = append(diags, rule.Func(doc)...)
	}
	sortDiagnostics(diags)
	return diags
}
