package markdown

// LinkKind classifies a link-like construct found in rendered output.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is one extracted link-like construct.
type Link struct {
	Kind        LinkKind
	Destination string
}
