// Package doctree defines the pre-parsed documentation comment model consumed
// by the renderer.
//
// A documentation tree is an ordered sequence of nodes produced by an external
// comment parser. The renderer only reads trees; it never mutates them, and a
// tree is only meaningful for the duration of a single rendering call.
package doctree

// NodeKind identifies the variant of a Node. The set is closed; rendering code
// switches exhaustively over it.
type NodeKind int

const (
	// KindText is a plain prose run.
	KindText NodeKind = iota
	// KindLiteral is a verbatim span, rendered as inline code.
	KindLiteral
	// KindLink is a cross-reference with an optional label subtree.
	KindLink
	// KindSeeReference is the reference portion of a see-also construct.
	KindSeeReference
	// KindMarkupStart opens a markup element (e.g. <p>, <code>).
	KindMarkupStart
	// KindMarkupEnd closes a markup element.
	KindMarkupEnd
	// KindEntity is a named character reference (e.g. &amp;).
	KindEntity
	// KindErroneous is a malformed construct captured as raw text.
	KindErroneous
	// KindUnknownTag is a directive or tag the comment parser did not
	// recognize, captured as raw text.
	KindUnknownTag
)

// Node is one element of a documentation tree. Which fields are meaningful
// depends on Kind:
//
//   - Body: Text, Literal, Erroneous and UnknownTag content
//   - Name: MarkupStart/MarkupEnd element name, Entity name
//   - Reference: Link target
//   - Children: Link label, SeeReference reference trees
type Node struct {
	Kind      NodeKind
	Body      string
	Name      string
	Reference string
	Children  []Node
}

// Text returns a prose run node.
func Text(body string) Node { return Node{Kind: KindText, Body: body} }

// Literal returns a verbatim span node.
func Literal(body string) Node { return Node{Kind: KindLiteral, Body: body} }

// Link returns a cross-reference node. label may be nil when the source
// comment gave none.
func Link(label []Node, reference string) Node {
	return Node{Kind: KindLink, Reference: reference, Children: label}
}

// See returns a see-also reference node.
func See(reference []Node) Node {
	return Node{Kind: KindSeeReference, Children: reference}
}

// MarkupStart returns an element-open node.
func MarkupStart(name string) Node { return Node{Kind: KindMarkupStart, Name: name} }

// MarkupEnd returns an element-close node.
func MarkupEnd(name string) Node { return Node{Kind: KindMarkupEnd, Name: name} }

// Entity returns a named character reference node.
func Entity(name string) Node { return Node{Kind: KindEntity, Name: name} }

// Erroneous returns a node carrying the raw text of a malformed construct.
func Erroneous(body string) Node { return Node{Kind: KindErroneous, Body: body} }

// UnknownTag returns a node carrying the raw text of an unrecognized tag.
func UnknownTag(raw string) Node { return Node{Kind: KindUnknownTag, Body: raw} }

// Comment is a full documentation comment: a leading summary sentence, the
// remaining body, and the trailing block tags.
type Comment struct {
	FirstSentence []Node
	Body          []Node
	BlockTags     []BlockTag
}
