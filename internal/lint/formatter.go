package lint

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter formats check results for output.
type Formatter interface {
	Format(w io.Writer, result CheckResult, file string, strict bool) error
}

// TextFormatter formats results as the human-readable list printed by `check`.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result CheckResult, _ string, strict bool) error {
	reported := result.Reported(strict)
	if len(reported) == 0 {
		_, err := fmt.Fprintln(w, "✅ README passed checks.")
		return err
	}

	if _, err := fmt.Fprintln(w, "⚠️ README issues:"); err != nil {
		return err
	}
	for _, issue := range reported {
		if _, err := fmt.Fprintf(w, "- %s\n", issue); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	File         string   `json:"file"`
	Strict       bool     `json:"strict"`
	Passed       bool     `json:"passed"`
	Issues       []string `json:"issues"`
	StrictIssues []string `json:"strict_issues"`
}

// Format outputs results in JSON format. Strict issues are always listed so
// tooling can show advisories; Passed honours the strict flag.
func (f *JSONFormatter) Format(w io.Writer, result CheckResult, file string, strict bool) error {
	output := JSONOutput{
		File:         file,
		Strict:       strict,
		Passed:       result.Passed(strict),
		Issues:       nonNil(result.Issues),
		StrictIssues: nonNil(result.StrictIssues),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
