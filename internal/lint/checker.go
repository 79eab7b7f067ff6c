package lint

// Check runs the default rule set against md. It is pure and safe for
// concurrent use.
func Check(md string) CheckResult {
	return CheckWith(md, defaultRules)
}

// CheckWith runs rules against md in order. Each rule reports at most one
// issue, so repeated violations collapse into a single entry.
func CheckWith(md string, rules []Rule) CheckResult {
	doc := NewDocument(md)
	result := CheckResult{
		Issues:       []string{},
		StrictIssues: []string{},
	}

	for _, rule := range rules {
		if !rule.Violated(doc) {
			continue
		}
		switch rule.Tier {
		case TierStrict:
			result.StrictIssues = append(result.StrictIssues, rule.Message)
		default:
			result.Issues = append(result.Issues, rule.Message)
		}
	}

	return result
}
