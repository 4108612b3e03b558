// Package hover assembles presentation payloads for hover and completion
// requests: a fenced signature header followed by the rendered documentation.
// Symbol lookup and signature formatting belong to external collaborators;
// this package only composes their output with the renderer's.
package hover

import (
	"strings"

	"git.home.luguber.info/inful/docmark/internal/doctree"
	"git.home.luguber.info/inful/docmark/internal/protocol"
	"git.home.luguber.info/inful/docmark/internal/render"
)

// Provider builds hover and completion documentation content.
type Provider struct {
	language string
	renderer *render.Renderer
}

// New returns a Provider that fences signatures as the given language.
// A nil renderer gets the default configuration.
func New(language string, r *render.Renderer) *Provider {
	if r == nil {
		r = render.New()
	}
	return &Provider{language: language, renderer: r}
}

// Content combines a declaration signature with its rendered documentation.
// The signature appears in a fenced code block; when the comment renders
// non-blank it follows after a horizontal rule. Either part may be absent.
func (p *Provider) Content(signature string, comment *doctree.Comment) protocol.MarkupContent {
	var b strings.Builder
	if signature != "" {
		b.WriteString("```")
		b.WriteString(p.language)
		b.WriteByte('\n')
		b.WriteString(signature)
		b.WriteString("\n```")
	}
	if comment != nil {
		if docs := p.renderer.Comment(*comment); docs != "" {
			if b.Len() > 0 {
				b.WriteString("\n\n---\n\n")
			}
			b.WriteString(docs)
		}
	}
	return protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: b.String()}
}

// Hover wraps Content in a hover response, attaching the source range when
// the caller knows it.
func (p *Provider) Hover(signature string, comment *doctree.Comment, rng *protocol.Range) *protocol.Hover {
	return &protocol.Hover{Contents: p.Content(signature, comment), Range: rng}
}

// ResolveCompletion attaches rendered documentation to a completion item.
// Items without a comment are left untouched.
func (p *Provider) ResolveCompletion(item *protocol.CompletionItem, comment *doctree.Comment) {
	if item == nil || comment == nil {
		return
	}
	content := p.renderer.MarkupContent(*comment)
	if content.Value == "" {
		return
	}
	item.Documentation = &content
}
