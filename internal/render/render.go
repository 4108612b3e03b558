// Package render turns documentation trees and raw comment text into
// Markdown suitable for editor tooltips and completion popups.
//
// Rendering is purely functional over its inputs: all mutable state is local
// to a call, so renders may run concurrently without coordination. No input,
// however malformed, produces an error at this boundary; every failure
// degrades to best-effort original text.
package render

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"git.home.luguber.info/inful/docmark/internal/doctree"
	"git.home.luguber.info/inful/docmark/internal/entity"
	"git.home.luguber.info/inful/docmark/internal/htmlconv"
	"git.home.luguber.info/inful/docmark/internal/inline"
	"git.home.luguber.info/inful/docmark/internal/logfields"
	"git.home.luguber.info/inful/docmark/internal/metrics"
	"git.home.luguber.info/inful/docmark/internal/protocol"
)

// Renderer renders documentation comments to Markdown. The zero-configured
// renderer from New is ready to use; options exist to wire observability.
type Renderer struct {
	rec metrics.Recorder
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRecorder wires a metrics recorder into the renderer.
func WithRecorder(rec metrics.Recorder) Option {
	return func(r *Renderer) {
		if rec != nil {
			r.rec = rec
		}
	}
}

// New returns a Renderer. Metrics default to the no-op recorder.
func New(opts ...Option) *Renderer {
	r := &Renderer{rec: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Comment renders a full documentation comment: summary sentence, body and
// block tags joined by blank lines. Sections that render blank are omitted
// entirely, so an empty comment yields an empty string with no separator
// artifacts.
func (r *Renderer) Comment(c doctree.Comment) string {
	start := time.Now()
	parts := make([]string, 0, 3)
	if s := r.Nodes(c.FirstSentence); s != "" {
		parts = append(parts, s)
	}
	if s := r.Nodes(c.Body); s != "" {
		parts = append(parts, s)
	}
	if s := r.BlockTags(c.BlockTags); s != "" {
		parts = append(parts, s)
	}
	r.rec.IncRender(metrics.InputTree)
	r.rec.ObserveRenderDuration(metrics.InputTree, time.Since(start))
	return strings.Join(parts, "\n\n")
}

// MarkupContent renders a comment into the typed wrapper the presentation
// layer expects.
func (r *Renderer) MarkupContent(c doctree.Comment) protocol.MarkupContent {
	return protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: r.Comment(c)}
}

// Nodes renders an ordered node sequence to normalized Markdown.
func (r *Renderer) Nodes(nodes []doctree.Node) string {
	var out strings.Builder
	var open openMarkup
	for i := range nodes {
		r.renderNode(&nodes[i], &out, &open)
	}
	return r.normalize(out.String())
}

// Text renders raw free-text comment input: HTML-like markup is converted
// when detected, then inline directives are expanded and entity references
// decoded. Conversion failures fall back to the original text.
func (r *Renderer) Text(raw string) string {
	start := time.Now()
	out := raw
	if htmlconv.IsHTMLLike(out) {
		converted, err := htmlconv.ToMarkdown(out)
		if err != nil {
			slog.Warn("markup conversion failed, falling back to plain text", logfields.Error(err))
			r.rec.IncFallback(metrics.FallbackMarkupConvert)
		} else {
			out = converted
		}
	}
	out = r.expand(out)
	out = entity.DecodeAll(out)
	r.rec.IncRender(metrics.InputText)
	r.rec.ObserveRenderDuration(metrics.InputText, time.Since(start))
	return out
}

// openMarkup tracks the markup elements currently open during traversal.
// Lookup is LIFO-biased rather than strict stack discipline so unbalanced
// input stays tolerable: a close marker removes the most recently opened
// matching name, and a close with no match is ignored.
type openMarkup []string

func (o *openMarkup) push(name string) { *o = append(*o, name) }

func (o *openMarkup) remove(name string) {
	s := *o
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == name {
			*o = append(s[:i], s[i+1:]...)
			return
		}
	}
}

func (o openMarkup) inCodeOrPre() bool {
	for _, name := range o {
		if name == "code" || name == "pre" {
			return true
		}
	}
	return false
}

var (
	lineBreakRun = regexp.MustCompile(`\s*\n\s*`)
	spaceRun     = regexp.MustCompile(` {2,}`)
)

func (r *Renderer) renderNode(n *doctree.Node, out *strings.Builder, open *openMarkup) {
	switch n.Kind {
	case doctree.KindText:
		body := n.Body
		if !open.inCodeOrPre() {
			body = lineBreakRun.ReplaceAllString(body, " ")
			body = spaceRun.ReplaceAllString(body, " ")
		}
		out.WriteString(body)

	case doctree.KindLiteral:
		out.WriteByte('`')
		out.WriteString(n.Body)
		out.WriteByte('`')

	case doctree.KindLink:
		if label := r.Nodes(n.Children); label != "" {
			out.WriteString(label)
		} else if strings.TrimSpace(n.Reference) != "" {
			out.WriteByte('`')
			out.WriteString(n.Reference)
			out.WriteByte('`')
		}

	case doctree.KindSeeReference:
		out.WriteString(r.Nodes(n.Children))

	case doctree.KindMarkupStart:
		name := strings.ToLower(n.Name)
		out.WriteString(openToken(name))
		open.push(name)

	case doctree.KindMarkupEnd:
		name := strings.ToLower(n.Name)
		out.WriteString(closeToken(name))
		open.remove(name)

	case doctree.KindEntity:
		out.WriteString(entity.Decode(n.Name))

	case doctree.KindErroneous:
		out.WriteString(n.Body)

	case doctree.KindUnknownTag:
		out.WriteString(n.Body)
	}
}

// openToken maps an element name to its Markdown opening token. Unlisted
// elements emit nothing but are still tracked for nesting.
func openToken(name string) string {
	switch name {
	case "p":
		return "\n\n"
	case "br":
		return "\n"
	case "pre":
		return "\n\n```\n"
	case "code":
		return "`"
	case "b", "strong":
		return "**"
	case "i", "em":
		return "*"
	default:
		return ""
	}
}

func closeToken(name string) string {
	switch name {
	case "pre":
		return "\n```\n"
	case "code":
		return "`"
	case "b", "strong":
		return "**"
	case "i", "em":
		return "*"
	case "p":
		return "\n\n"
	default:
		return ""
	}
}

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	blankLineRun  = regexp.MustCompile(`\n{3,}`)
)

// normalize applies the final cleanup every rendered fragment goes through:
// outer whitespace trimmed, trailing spaces before newlines dropped, runs of
// blank lines collapsed to one, and a last directive expansion pass so
// literal braces that survived tree rendering still resolve.
func (r *Renderer) normalize(text string) string {
	t := strings.TrimSpace(text)
	t = trailingSpace.ReplaceAllString(t, "\n")
	t = blankLineRun.ReplaceAllString(t, "\n\n")
	return r.expand(t)
}

func (r *Renderer) expand(text string) string {
	out, err := inline.Expand(text)
	if err != nil {
		slog.Debug("inline directive expansion failed, keeping text as-is", logfields.Error(err))
		r.rec.IncFallback(metrics.FallbackDirectiveParse)
		return text
	}
	return out
}
