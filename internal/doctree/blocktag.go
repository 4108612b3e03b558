package doctree

// TagKind identifies the variant of a BlockTag. The set is closed; rendering
// code switches exhaustively over it, with TagUnknown as the raw-text
// fallback.
type TagKind int

const (
	TagAuthor TagKind = iota
	TagSince
	TagSee
	TagParam
	TagReturn
	TagThrows
	TagDeprecated
	TagUnknown
)

// BlockTag is a declaration-level documentation annotation (@param, @return,
// @throws, ...). Name carries the parameter or exception name for TagParam
// and TagThrows; Raw carries the captured source text for TagUnknown.
type BlockTag struct {
	Kind        TagKind
	Name        string
	TypeParam   bool
	Description []Node
	Raw         string
}

// Author returns an @author tag.
func Author(name []Node) BlockTag { return BlockTag{Kind: TagAuthor, Description: name} }

// Since returns an @since tag.
func Since(body []Node) BlockTag { return BlockTag{Kind: TagSince, Description: body} }

// SeeTag returns an @see tag.
func SeeTag(reference []Node) BlockTag { return BlockTag{Kind: TagSee, Description: reference} }

// Param returns an @param tag; typeParam selects the type-parameter form.
func Param(name string, typeParam bool, description []Node) BlockTag {
	return BlockTag{Kind: TagParam, Name: name, TypeParam: typeParam, Description: description}
}

// Return returns an @return tag.
func Return(description []Node) BlockTag { return BlockTag{Kind: TagReturn, Description: description} }

// Throws returns an @throws tag for the named exception.
func Throws(exception string, description []Node) BlockTag {
	return BlockTag{Kind: TagThrows, Name: exception, Description: description}
}

// Deprecated returns an @deprecated tag.
func Deprecated(body []Node) BlockTag { return BlockTag{Kind: TagDeprecated, Description: body} }

// UnknownBlockTag returns a tag carrying unrecognized source text verbatim.
func UnknownBlockTag(raw string) BlockTag { return BlockTag{Kind: TagUnknown, Raw: raw} }
