package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	renders        *prom.CounterVec
	renderDuration *prom.HistogramVec
	fallbacks      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry is created when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docmark",
			Name:      "renders_total",
			Help:      "Render invocations by input kind",
		}, []string{"kind"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "docmark",
			Name:      "render_duration_seconds",
			Help:      "Render duration by input kind",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		fallbacks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docmark",
			Name:      "render_fallbacks_total",
			Help:      "Best-effort fallbacks to original text by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(pr.renders, pr.renderDuration, pr.fallbacks)
	return pr
}

func (p *PrometheusRecorder) IncRender(kind InputKind) {
	if p == nil || p.renders == nil {
		return
	}
	p.renders.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(kind InputKind, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFallback(reason FallbackReason) {
	if p == nil || p.fallbacks == nil {
		return
	}
	p.fallbacks.WithLabelValues(string(reason)).Inc()
}
