// Package entity decodes the small set of named character references that
// show up in documentation comments.
package entity

import "regexp"

// Decode maps a named character reference to its literal text. Names outside
// the supported set are rendered back in entity syntax unchanged; callers
// never see an error. nbsp intentionally decodes to a plain space so rendered
// Markdown stays free of non-breaking-space code points.
func Decode(name string) string {
	switch name {
	case "lt":
		return "<"
	case "gt":
		return ">"
	case "amp":
		return "&"
	case "nbsp":
		return " "
	case "quot":
		return "\""
	default:
		return "&" + name + ";"
	}
}

var entityRef = regexp.MustCompile(`&([a-zA-Z]+);`)

// DecodeAll decodes every named reference in text in a single pass.
// Replacement output is not rescanned, so "&amp;amp;" decodes to "&amp;" and
// no further.
func DecodeAll(text string) string {
	return entityRef.ReplaceAllStringFunc(text, func(ref string) string {
		return Decode(ref[1 : len(ref)-1])
	})
}
