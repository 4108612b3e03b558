package render

import (
	"strings"

	"git.home.luguber.info/inful/docmark/internal/doctree"
)

// BlockTags renders a block-tag sequence as one Markdown line per tag, then
// applies the shared final normalization pass to the combined block.
func (r *Renderer) BlockTags(tags []doctree.BlockTag) string {
	lines := make([]string, 0, len(tags))
	for _, t := range tags {
		lines = append(lines, r.blockTagLine(t))
	}
	return r.normalize(strings.Join(lines, "\n"))
}

func (r *Renderer) blockTagLine(t doctree.BlockTag) string {
	switch t.Kind {
	case doctree.TagAuthor:
		return formatBlock("@author", r.Nodes(t.Description))
	case doctree.TagSince:
		return formatBlock("@since", r.Nodes(t.Description))
	case doctree.TagSee:
		return formatBlock("@see", r.Nodes(t.Description))
	case doctree.TagParam:
		return formatParam(t.Name, r.Nodes(t.Description), t.TypeParam)
	case doctree.TagReturn:
		return formatBlock("@return", r.Nodes(t.Description))
	case doctree.TagThrows:
		body := t.Name
		if desc := r.Nodes(t.Description); desc != "" {
			body += " - " + desc
		}
		return formatBlock("@throws", body)
	case doctree.TagDeprecated:
		return formatBlock("@deprecated", r.Nodes(t.Description))
	case doctree.TagUnknown:
		return t.Raw
	}
	// The kind set is closed; anything else is treated like TagUnknown.
	return t.Raw
}

// formatBlock emits "label body", with the body omitted entirely when it
// rendered blank.
func formatBlock(label, body string) string {
	if body == "" {
		return label
	}
	return label + " " + body
}

func formatParam(name, desc string, typeParam bool) string {
	prefix := "@param"
	if typeParam {
		prefix = "@typeparam"
	}
	if desc == "" {
		return prefix + " " + name
	}
	return prefix + " " + name + " - " + desc
}
