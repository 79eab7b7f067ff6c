package preview

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
)

const (
	// BuildDir is the output directory of `build`, relative to the project.
	BuildDir = ".readme-preview"
	// BuildFile is the page written inside BuildDir.
	BuildFile = "index.html"
)

// WriteBuild writes html to <dir>/.readme-preview/index.html, replacing any
// previous build, and returns the path written.
func WriteBuild(dir, html string) (string, error) {
	outDir := filepath.Join(dir, BuildDir)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to create build directory").
			WithContext("path", outDir).Build()
	}

	out := filepath.Join(outDir, BuildFile)
	// #nosec G306 -- static preview page is meant to be opened by other tools
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to write build").
			WithContext("file", out).Build()
	}
	return out, nil
}
