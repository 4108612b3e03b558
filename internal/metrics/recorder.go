// Package metrics provides observability hooks for the rendering pipeline.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics cost nothing unless a real implementation is
// wired in (the Prometheus recorder lives in prometheus_recorder.go).
package metrics

import "time"

// InputKind labels render counters by entry point.
type InputKind string

const (
	// InputTree is a structured documentation-tree render.
	InputTree InputKind = "tree"
	// InputText is a raw free-text render.
	InputText InputKind = "text"
)

// FallbackReason labels best-effort fallbacks to the original input text.
type FallbackReason string

const (
	// FallbackDirectiveParse records unbalanced inline directive braces.
	FallbackDirectiveParse FallbackReason = "directive_parse"
	// FallbackMarkupConvert records a failed HTML-like markup conversion.
	FallbackMarkupConvert FallbackReason = "markup_convert"
)

// Recorder defines observability hooks for render metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe on
// the zero NoopRecorder so injection stays optional.
type Recorder interface {
	IncRender(kind InputKind)
	ObserveRenderDuration(kind InputKind, d time.Duration)
	IncFallback(reason FallbackReason)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRender(InputKind)                            {}
func (NoopRecorder) ObserveRenderDuration(InputKind, time.Duration) {}
func (NoopRecorder) IncFallback(FallbackReason)                     {}
