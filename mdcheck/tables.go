package mdcheck

// Static dictionaries used by the rule engine. These are built once at
// package init and never mutated — promoted here from what would otherwise
// be per-rule class-attribute dictionaries.

// wordFix is one disallowed-spelling-to-preferred-form entry (H006). Kept as
// an ordered slice, not a map, because scan order is a deliberate tie-break
// when two entries could match the same line.
type wordFix struct {
	Incorrect string
	Correct   string
}

// incorrectWords lists disallowed spellings and their preferred forms (H006).
var incorrectWords = []wordFix{
	{"Latex", "LaTeX"},
	{"latex", "LaTeX"},

	{"e-mail", "email"},

	{"cms", "CMS"},
	{"СЬS", "CMS"},
	{"СMS", "CMS"},
	{"СМS", "CMS"},
	{"сms", "CMS"},
	{"смs", "CMS"},
	{"СМС", "CMS"},
	{"смс", "CMS"},

	{"css", "CSS"},
	{"html", "HTML"},
	{"pdf", "PDF"},
	{"php", "PHP"},
	{"svg", "SVG"},
	{"xml", "XML"},
	{"odf", "ODF"},
	{"odt", "ODT"},
	{"dll", "DLL"},
	{"Dll", "DLL"},
	{"exe", "EXE"},
	{"qml", "QML"},

	{"web документ", "веб-документ"},
	{"Web документ", "веб-документ"},
	{"WEB документ", "веб-документ"},
	{"web приложение", "веб-приложение"},
	{"Web приложение", "веб-приложение"},
	{"WEB приложение", "веб-приложение"},
	{"web приложения", "веб-приложения"},
	{"Web приложения", "веб-приложения"},
	{"WEB приложения", "веб-приложения"},

	{"c++", "C++"},
	{"с++", "C++"},
	{"С++", "C++"},
	{"с#", "C#"},
	{"С#", "C#"},
	{"сpp", "cpp"},
	{"срр", "cpp"},
	{"pascal", "Pascal"},

	{"c++11", "C++11"},
	{"с++11", "C++11"},
	{"С++11", "C++11"},
	{"c++17", "C++17"},
	{"с++17", "C++17"},
	{"С++17", "C++17"},
	{"c++20", "C++20"},
	{"с++20", "C++20"},
	{"С++20", "C++20"},

	{"ok", "OK"},
	{"Ok", "OK"},
	{"ОК", "OK"},
	{"ок", "OK"},

	{"id", "ID"},
	{"Id", "ID"},

	{"javaScript", "JavaScript"},
	{"Javascript", "JavaScript"},
	{"javascript", "JavaScript"},

	{"Php", "PHP"},

	{"Йе", "Qt"},
	{"йе", "Qt"},
	{"qt", "Qt"},

	{"android", "Android"},
	{"java", "Java"},

	{"apk", "APK"},

	{"markdon", "Markdown"},
	{"markdown", "Markdown"},

	{"Github", "GitHub"},
	{"github", "GitHub"},
	{"git", "Git"},

	{"т.е.", "т. е."},
	{"Т.е.", "Т. е."},
	{"т.д.", "т. д."},
	{"т.ч.", "т. ч."},
	{"т.п.", "т. п."},
}

// incorrectLanguages maps a fenced-code-block language identifier to the
// identifier it should be (H007).
var incorrectLanguages = map[string]string{
	"console": "shell",
	"py":      "python",
}

// forbiddenHTMLTags lists substrings that must not appear in prose (H019),
// matched case-insensitively.
var forbiddenHTMLTags = []string{
	"<pre class",
	"<table",
	"<strong",
	"<b>",
	"<b ",
	"<a>",
	"<a ",
	"<i>",
	"<i ",
	"<p>",
	"<p ",
	"<h1",
	"<h2",
	"<h3",
	"<h4",
	"<h5",
	"<h6",
	"</",
}

// russianPolitePronouns lists capitalized Russian polite "you" pronoun forms
// that should be lowercase mid-sentence (H024).
var russianPolitePronouns = []string{
	"Вы",
	"Вас",
	"Вам",
	"Вами",
	"Ваш",
	"Вашего",
	"Ваше",
	"Вашу",
	"Вашей",
	"Ваша",
	"Вашему",
	"Вашим",
	"Вашем",
	"Вашею",
	"Ваши",
	"Ваших",
	"Вашими",
}

// calloutCommentMarkers lists HTML-comment callout markers that exempt a
// paragraph line from either the colon-before-code or colon-before-image
// requirement.
var calloutCommentMarkers = []string{
	"<!-- !details -->",
	"<!-- !note -->",
	"<!-- !important -->",
	"<!-- !warning -->",
}

// calloutBracketMarkers lists the GitHub-style "[!NOTE]" bracket callout
// markers. These additionally exempt a line from the colon-before-code
// requirement (H013) but not from colon-before-image (H014).
var calloutBracketMarkers = []string{
	"[!DETAILS]",
	"[!WARNING]",
	"[!IMPORTANT]",
	"[!NOTE]",
}

// ruleTitles gives the stable human-readable title for every rule code, used
// both as the default diagnostic message and for documentation.
var ruleTitles = map[string]string{
	"H001": "Presence of a space in the Markdown file name",
	"H002": "Presence of a space in the path to the Markdown file",
	"H003": "YAML is missing",
	"H004": "The lang field is missing in YAML",
	"H005": "In YAML, lang is not set to en or ru",
	"H006": "Incorrect word form used",
	"H007": "Incorrect code block language identifier",
	"H008": "Trailing whitespace at end of line",
	"H009": "Double spaces in line",
	"H010": "Tab character found",
	"H011": "No empty line at end of file",
	"H012": "Two consecutive empty lines",
	"H013": "Missing colon before code block",
	"H014": "Missing colon before image",
	"H015": "Space before punctuation mark",
	"H016": "Incorrect dash/hyphen usage",
	"H017": "Three dots instead of ellipsis character",
	"H018": "Curly/straight quotes instead of angle quotes",
	"H019": "HTML tags in markdown content",
	"H020": "Image caption starts with lowercase letter",
	"H021": "Lowercase letter after sentence-ending punctuation",
	"H022": "Non-breaking space character found",
	"H023": "No empty line between paragraphs",
	"H024": "Capitalized Russian polite pronoun (use lowercase when addressing reader)",
	"H025": "Latin x or Cyrillic x used instead of multiplication sign ×",
	"H026": "Image markdown ![ found not at start of line",
	"H028": "Horizontal bar ― (dialogue dash) should not be used",
	"H029": "Space required after №",
	"H030": "Question mark followed by period (?.)",
}
