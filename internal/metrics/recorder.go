package metrics

import "time"

// ResultLabel enumerates render outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for rendering, checking and serving.
// Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveRenderDuration(d time.Duration)
	IncRenderResult(result ResultLabel)
	SetCheckIssues(tier string, n int)
	IncPreviewRequest(status int)
	IncRebuild(trigger string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) IncRenderResult(ResultLabel)         {}
func (NoopRecorder) SetCheckIssues(string, int)          {}
func (NoopRecorder) IncPreviewRequest(int)               {}
func (NoopRecorder) IncRebuild(string)                   {}
