package scaffold

import (
	"fmt"
	"io"
)

// Kind says what a scaffolded file is.
type Kind string

const (
	KindWorkflow Kind = "workflow"
	KindReadme   Kind = "readme"
	KindAsset    Kind = "asset"
	KindConfig   Kind = "config"
)

// Action is what Run did with a file.
type Action string

const (
	ActionWritten   Action = "written"
	ActionSkipped   Action = "skipped"
	ActionUnchanged Action = "unchanged"
)

// Entry records the outcome for one file.
type Entry struct {
	Path   string
	Kind   Kind
	Action Action
}

// Report lists the outcome of every file Run considered, in order.
type Report struct {
	Entries []Entry
}

func (r *Report) add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// WroteAny reports whether at least one file was written.
func (r *Report) WroteAny() bool {
	for _, e := range r.Entries {
		if e.Action == ActionWritten {
			return true
		}
	}
	return false
}

// Written returns the paths that were written.
func (r *Report) Written() []string {
	var out []string
	for _, e := range r.Entries {
		if e.Action == ActionWritten {
			out = append(out, e.Path)
		}
	}
	return out
}

// Print writes the human-readable summary shown by `init`.
func (r *Report) Print(w io.Writer) error {
	for _, e := range r.Entries {
		var line string
		switch e.Action {
		case ActionWritten:
			line = "✅ Wrote " + e.Path
			if e.Kind == KindAsset {
				line += " (placeholder image)"
			}
		case ActionSkipped:
			line = fmt.Sprintf("ℹ️ Skipped %s (already exists). Use --force to overwrite.", e.Path)
		case ActionUnchanged:
			line = "ℹ️ README already contains badges section; no changes made."
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	summary := "✅ Init complete."
	if !r.WroteAny() {
		summary = "ℹ️ Nothing to do. Try --force to overwrite existing files."
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
