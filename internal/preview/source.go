package preview

import (
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/lint"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/metrics"
	"git.home.luguber.info/inful/readme-preview/internal/render"
)

// ReadMarkdown reads a README file as text.
func ReadMarkdown(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-selected README
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFoundError("could not read file").WithContext("file", path).Build()
		}
		return "", errors.WrapError(err, errors.CategoryFileSystem, "could not read file").WithContext("file", path).Build()
	}
	return string(data), nil
}

// Source renders and checks one README file on demand.
type Source struct {
	File     string
	Options  render.Options
	Renderer *render.Renderer
	Recorder metrics.Recorder
}

// Page is the outcome of one Source build.
type Page struct {
	HTML  string
	Check lint.CheckResult
}

// Build reads the file, renders it and runs the checker. Render time, outcome
// and issue counts go to the Recorder.
func (s *Source) Build() (*Page, error) {
	md, err := ReadMarkdown(s.File)
	if err != nil {
		return nil, err
	}

	renderer := s.Renderer
	if renderer == nil {
		renderer = render.NewRenderer()
	}
	rec := s.Recorder
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	start := time.Now()
	html, err := renderer.Render(md, s.Options)
	elapsed := time.Since(start)
	rec.ObserveRenderDuration(elapsed)
	if err != nil {
		rec.IncRenderResult(metrics.ResultFailed)
		return nil, err
	}
	rec.IncRenderResult(metrics.ResultSuccess)

	result := lint.Check(md)
	rec.SetCheckIssues(lint.TierBasic.String(), len(result.Issues))
	rec.SetCheckIssues(lint.TierStrict.String(), len(result.StrictIssues))

	slog.Debug("Rendered README",
		logfields.File(s.File),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000),
		logfields.Issues(len(result.Issues)),
		logfields.StrictIssues(len(result.StrictIssues)))

	return &Page{HTML: html, Check: result}, nil
}
