// Package protocol holds the editor-protocol value types the renderer
// produces. Transport is out of scope; these are plain JSON-tagged structs a
// language server hands to its serialization layer.
package protocol

// MarkupKind describes the format of a MarkupContent value.
type MarkupKind string

const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

// MarkupContent is a string payload tagged with its markup format.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// Position is a zero-based line/character location in a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open [Start, End) span in a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Hover is the response payload for a hover request.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// CompletionItem is the subset of a completion entry this module touches:
// the label shown in the list, an optional signature detail line, and the
// rendered documentation attached during resolution.
type CompletionItem struct {
	Label         string         `json:"label"`
	Detail        string         `json:"detail,omitempty"`
	Documentation *MarkupContent `json:"documentation,omitempty"`
}
