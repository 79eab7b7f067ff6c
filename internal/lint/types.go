package lint

// Tier says which issue list a rule reports into.
type Tier int

const (
	// TierBasic issues block `check` in its default mode.
	TierBasic Tier = iota
	// TierStrict issues are only reported when strict mode is requested.
	TierStrict
)

// String returns the human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Document is a markdown text together with its lint view.
type Document struct {
	// Raw is the markdown exactly as given.
	Raw string
	// LintView is Raw with fenced and inline code removed.
	LintView string
}

// NewDocument builds the two views of md used by the rules.
func NewDocument(md string) Document {
	return Document{Raw: md, LintView: LintView(md)}
}

// CheckResult holds the issues found by Check, in rule evaluation order.
type CheckResult struct {
	Issues       []string `json:"issues"`
	StrictIssues []string `json:"strict_issues"`
}

// Reported returns the issues a caller should surface: the basic issues,
// followed by the strict ones when strict is set.
func (r CheckResult) Reported(strict bool) []string {
	out := make([]string, 0, len(r.Issues)+len(r.StrictIssues))
	out = append(out, r.Issues...)
	if strict {
		out = append(out, r.StrictIssues...)
	}
	return out
}

// Passed reports whether no issue would be surfaced in the given mode.
func (r CheckResult) Passed(strict bool) bool {
	if len(r.Issues) > 0 {
		return false
	}
	return !strict || len(r.StrictIssues) == 0
}
