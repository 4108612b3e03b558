package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder_SafeToCall(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncRender(InputTree)
	r.ObserveRenderDuration(InputText, time.Millisecond)
	r.IncFallback(FallbackDirectiveParse)
}

func TestPrometheusRecorder_CountsRenders(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncRender(InputTree)
	r.IncRender(InputTree)
	r.IncRender(InputText)

	require.Equal(t, 2.0, testutil.ToFloat64(r.renders.WithLabelValues("tree")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.renders.WithLabelValues("text")))
}

func TestPrometheusRecorder_CountsFallbacks(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncFallback(FallbackMarkupConvert)

	require.Equal(t, 1.0, testutil.ToFloat64(r.fallbacks.WithLabelValues("markup_convert")))
	require.Equal(t, 0.0, testutil.ToFloat64(r.fallbacks.WithLabelValues("directive_parse")))
}

func TestPrometheusRecorder_NilReceiverSafe(t *testing.T) {
	var p *PrometheusRecorder
	p.IncRender(InputTree)
	p.ObserveRenderDuration(InputTree, time.Second)
	p.IncFallback(FallbackDirectiveParse)
}
