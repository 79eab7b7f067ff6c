package scaffold

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// WorkflowPath is where the CI workflow is written, relative to the project.
const WorkflowPath = ".github/workflows/readme-preview.yml"

// Workflow is the subset of the GitHub Actions schema the scaffold emits.
type Workflow struct {
	Name string         `yaml:"name"`
	On   Triggers       `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Triggers lists the events that start the workflow.
type Triggers struct {
	PullRequest PullRequestTrigger `yaml:"pull_request"`
	Push        PushTrigger        `yaml:"push"`
}

// PullRequestTrigger runs on every pull request.
type PullRequestTrigger struct {
	Branches []string `yaml:"branches,omitempty"`
}

// PushTrigger runs on pushes to the listed branches.
type PushTrigger struct {
	Branches []string `yaml:"branches"`
}

// Job is a single workflow job.
type Job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single job step; either Uses or Run is set.
type Step struct {
	Name string         `yaml:"name"`
	Uses string         `yaml:"uses,omitempty"`
	With map[string]any `yaml:"with,omitempty"`
	Run  string         `yaml:"run,omitempty"`
}

// MarshalYAML emits the "on" key unquoted, the way workflow files are
// conventionally written. yaml.v3 otherwise quotes it as a YAML 1.1 boolean.
func (w Workflow) MarshalYAML() (any, error) {
	type plain Workflow
	var node yaml.Node
	if err := node.Encode(plain(w)); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; key.Value == "on" {
			key.Tag = ""
			key.Style = 0
		}
	}
	return &node, nil
}

// NewWorkflow returns the README check workflow with the given display name.
func NewWorkflow(name string) Workflow {
	return Workflow{
		Name: name,
		On: Triggers{
			Push: PushTrigger{Branches: []string{"main"}},
		},
		Jobs: map[string]Job{
			"readme-preview-check": {
				RunsOn: "ubuntu-latest",
				Steps: []Step{
					{Name: "Checkout", Uses: "actions/checkout@v4"},
					{
						Name: "Setup Node",
						Uses: "actions/setup-node@v4",
						With: map[string]any{"node-version": 20, "cache": "npm"},
					},
					{Name: "Install deps", Run: "npm ci"},
					{Name: "README checks", Run: "npx readme-preview check --strict"},
				},
			},
		},
	}
}

// MarshalWorkflow renders w as YAML with two-space indentation.
func MarshalWorkflow(w Workflow) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
