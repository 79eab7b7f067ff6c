package lint

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// MinLength is the character count below which a README is considered too short.
const MinLength = 400

// Rule is a single content check. Rules are plain values so the rule set is
// data: Check walks them in order and never interleaves their logic.
type Rule struct {
	// Name is the stable identifier used in JSON output.
	Name string
	// Tier selects the issue list the message lands in.
	Tier Tier
	// Message is the issue text reported when Violated returns true.
	Message string
	// Violated reports whether doc breaks the rule.
	Violated func(doc Document) bool
}

// htmlTagNames is the fixed set of elements treated as real HTML. Anything
// else in angle brackets (<path>, <number>) is placeholder notation.
var htmlTagNames = []string{
	"div", "span", "p", "br", "hr", "img", "a",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li",
	"table", "thead", "tbody", "tr", "th", "td",
	"pre", "code", "blockquote", "details", "summary",
}

// spaceClass is the whitespace class of the rules. RE2's \s is ASCII-only, so
// no-break and other Unicode spaces are added explicitly.
const (
	spaceClass    = `[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]`
	nonSpaceClass = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]`
)

var (
	imageRefPattern    = regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`)
	linkOrImagePattern = regexp.MustCompile(`!?\[[^\]]*\]\(([^)]+)\)`)
	h1Pattern          = regexp.MustCompile(`(?m)^#` + spaceClass + `+` + nonSpaceClass + `+`)
	descriptionPattern = regexp.MustCompile(`(?ms)^#` + spaceClass + `+.+\n\n.*` + nonSpaceClass)
	htmlTagPattern     = regexp.MustCompile(`(?i)</?\s*(?:` + strings.Join(htmlTagNames, "|") + `)\b[^>]*>`)
	installPattern     = regexp.MustCompile(`(?i)\binstall\b`)
	usagePattern       = regexp.MustCompile(`(?i)\busage\b`)
	innerSpacePattern  = regexp.MustCompile(nonSpaceClass + spaceClass + `+` + nonSpaceClass)
)

// defaultRules is evaluated in this exact order.
var defaultRules = []Rule{
	{
		Name:     "relative-image",
		Tier:     TierBasic,
		Message:  "Relative image URLs detected.",
		Violated: func(doc Document) bool { return HasRelativeImage(doc.LintView) },
	},
	{
		Name:     "missing-h1",
		Tier:     TierBasic,
		Message:  "Missing H1 title.",
		Violated: func(doc Document) bool { return !HasH1(doc.Raw) },
	},
	{
		Name:     "too-short",
		Tier:     TierStrict,
		Message:  "README is very short (<400 chars).",
		Violated: func(doc Document) bool { return IsTooShort(doc.Raw) },
	},
	{
		Name:     "no-code-block",
		Tier:     TierStrict,
		Message:  "No code blocks found.",
		Violated: func(doc Document) bool { return !HasCodeBlock(doc.Raw) },
	},
	{
		Name:     "missing-description",
		Tier:     TierStrict,
		Message:  "Missing description text under H1.",
		Violated: func(doc Document) bool { return !HasDescription(doc.Raw) },
	},
	{
		Name:     "raw-html",
		Tier:     TierStrict,
		Message:  "Raw HTML detected (may be sanitized on npm).",
		Violated: func(doc Document) bool { return HasRawHTML(doc.LintView) },
	},
	{
		Name:     "missing-install",
		Tier:     TierStrict,
		Message:  `No "Install" section detected (keyword "install" not found).`,
		Violated: func(doc Document) bool { return !installPattern.MatchString(doc.Raw) },
	},
	{
		Name:     "missing-usage",
		Tier:     TierStrict,
		Message:  `No "Usage" section detected (keyword "usage" not found).`,
		Violated: func(doc Document) bool { return !usagePattern.MatchString(doc.Raw) },
	},
	{
		Name:     "spaced-url",
		Tier:     TierStrict,
		Message:  "Found spaces inside markdown URLs (likely broken links).",
		Violated: func(doc Document) bool { return HasSpacedURL(doc.LintView) },
	},
}

// DefaultRules returns a copy of the built-in rule set in evaluation order.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// IsAbsoluteAssetTarget reports whether an image target is already fetchable
// without a base URL.
func IsAbsoluteAssetTarget(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "data:")
}

// HasRelativeImage reports whether text contains at least one image whose
// target is neither http(s) nor a data URI.
func HasRelativeImage(text string) bool {
	for _, m := range imageRefPattern.FindAllStringSubmatch(text, -1) {
		if !IsAbsoluteAssetTarget(m[1]) {
			return true
		}
	}
	return false
}

// HasH1 reports whether some line starts with "#", whitespace and content.
func HasH1(text string) bool {
	return h1Pattern.MatchString(text)
}

// IsTooShort reports whether text is shorter than MinLength characters,
// counted as UTF-16 code units the way browsers and npm measure strings.
func IsTooShort(text string) bool {
	n := 0
	for _, r := range text {
		n += len(utf16.Encode([]rune{r})) // utf16.RuneLen(r) needs Go 1.23
		if n >= MinLength {
			return false
		}
	}
	return true
}

// HasCodeBlock reports whether text contains a fence marker.
func HasCodeBlock(text string) bool {
	return strings.Contains(text, "```")
}

// HasDescription reports whether some heading line is followed by a blank
// line and more content anywhere later in the document.
func HasDescription(text string) bool {
	return descriptionPattern.MatchString(text)
}

// HasRawHTML reports whether text contains an opening or closing tag from
// htmlTagNames.
func HasRawHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// HasSpacedURL reports whether any link or image target contains whitespace
// between non-whitespace characters.
func HasSpacedURL(text string) bool {
	for _, m := range linkOrImagePattern.FindAllStringSubmatch(text, -1) {
		if innerSpacePattern.MatchString(m[1]) {
			return true
		}
	}
	return false
}
