package metrics

import (
	"strconv"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "readme_preview"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	renderDuration  prom.Histogram
	renderResults   *prom.CounterVec
	checkIssues     *prom.GaugeVec
	previewRequests *prom.CounterVec
	rebuilds        *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.renderDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time to turn the README into a preview page",
			Buckets:   prom.DefBuckets,
		})
		pr.renderResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_results_total",
			Help:      "Render results by outcome",
		}, []string{"result"})
		pr.checkIssues = prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "check_issues",
			Help:      "Issues reported by the last check, by tier",
		}, []string{"tier"})
		pr.previewRequests = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "preview_requests_total",
			Help:      "Preview HTTP requests by status code",
		}, []string{"code"})
		pr.rebuilds = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Preview rebuilds by trigger",
		}, []string{"trigger"})
		reg.MustRegister(pr.renderDuration, pr.renderResults, pr.checkIssues, pr.previewRequests, pr.rebuilds)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderResult(result ResultLabel) {
	if p == nil || p.renderResults == nil {
		return
	}
	p.renderResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) SetCheckIssues(tier string, n int) {
	if p == nil || p.checkIssues == nil {
		return
	}
	p.checkIssues.WithLabelValues(tier).Set(float64(n))
}

func (p *PrometheusRecorder) IncPreviewRequest(status int) {
	if p == nil || p.previewRequests == nil {
		return
	}
	p.previewRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (p *PrometheusRecorder) IncRebuild(trigger string) {
	if p == nil || p.rebuilds == nil {
		return
	}
	p.rebuilds.WithLabelValues(trigger).Inc()
}
