// Package metrics provides optional Prometheus instrumentation for
// readme-preview.
//
// Components receive a Recorder and default to NoopRecorder, so no call site
// needs a nil check:
//
//	srv := preview.NewServer(html) // NoopRecorder
//	srv := preview.NewServer(html, preview.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The preview server mounts HTTPHandler at /metrics when metrics are enabled
// with --metrics. One-shot commands (build, check) never register a recorder.
package metrics
