package scaffold

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	derrors "git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/repository"
)

// Options selects what Run writes.
type Options struct {
	// Dir is the project root.
	Dir string
	// Force overwrites existing files.
	Force bool
	// WorkflowOnly skips the README.
	WorkflowOnly bool
	// ReadmeOnly skips the workflow.
	ReadmeOnly bool
	// Assets adds the placeholder screenshot.
	Assets bool
	// Config adds a .readme-preview.yaml populated with defaults.
	Config bool
	// WorkflowName is the workflow's display name.
	WorkflowName string
}

// Run scaffolds the project in opts.Dir. Files that already exist are left
// alone unless opts.Force is set, except that a missing README is always
// created. Skips are reported, not returned as errors.
func Run(opts Options) (*Report, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.WorkflowName == "" {
		opts.WorkflowName = config.DefaultWorkflowName
	}
	if opts.WorkflowOnly && opts.ReadmeOnly {
		return nil, derrors.ValidationError("--workflow-only and --readme-only are mutually exclusive").Build()
	}

	report := &Report{}

	if !opts.ReadmeOnly {
		if err := writeWorkflow(opts, report); err != nil {
			return report, err
		}
	}

	if !opts.WorkflowOnly {
		if err := writeReadme(opts, report); err != nil {
			return report, err
		}
	}

	if opts.Assets {
		if err := write(opts.Dir, ScreenshotPath, placeholderImage(), opts.Force, KindAsset, report); err != nil {
			return report, err
		}
	}

	if opts.Config {
		if err := writeConfig(opts, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func writeWorkflow(opts Options, report *Report) error {
	data, err := MarshalWorkflow(NewWorkflow(opts.WorkflowName))
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryInternal, "failed to marshal workflow").Build()
	}
	return write(opts.Dir, WorkflowPath, data, opts.Force, KindWorkflow, report)
}

func writeReadme(opts Options, report *Report) error {
	path := filepath.Join(opts.Dir, ReadmePath)
	exists := fileExists(path)

	current := defaultReadme
	if exists {
		data, err := os.ReadFile(path) // #nosec G304 -- README inside the project dir
		if err != nil {
			return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read README").WithContext("file", path).Build()
		}
		current = string(data)
	}

	slug, ok := repository.Resolve(opts.Dir)
	if !ok {
		slug = placeholderSlug
	}

	patched, changed := PatchReadme(current, slug)
	if !changed && exists {
		report.add(Entry{Path: path, Kind: KindReadme, Action: ActionUnchanged})
		return nil
	}

	return write(opts.Dir, ReadmePath, []byte(patched+"\n"), opts.Force || !exists, KindReadme, report)
}

func writeConfig(opts Options, report *Report) error {
	path := filepath.Join(opts.Dir, config.DefaultFileName)
	if fileExists(path) && !opts.Force {
		report.add(Entry{Path: path, Kind: KindConfig, Action: ActionSkipped})
		return nil
	}
	if err := config.Init(path, true); err != nil {
		return err
	}
	report.add(Entry{Path: path, Kind: KindConfig, Action: ActionWritten})
	return nil
}

func write(dir, rel string, content []byte, overwrite bool, kind Kind, report *Report) error {
	path, err := writeProjectFile(dir, rel, content, overwrite)
	switch {
	case errors.Is(err, errExists):
		slog.Debug("Skipping existing file", logfields.Path(path))
		report.add(Entry{Path: path, Kind: kind, Action: ActionSkipped})
		return nil
	case err != nil:
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to write scaffold file").
			WithContext("file", filepath.Join(dir, rel)).Build()
	}
	slog.Debug("Wrote file", logfields.Path(path))
	report.add(Entry{Path: path, Kind: kind, Action: ActionWritten})
	return nil
}
