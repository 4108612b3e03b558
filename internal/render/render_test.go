package render

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docmark/internal/doctree"
	"git.home.luguber.info/inful/docmark/internal/metrics"
	"git.home.luguber.info/inful/docmark/internal/protocol"
)

func TestNodes_TextAndLiteralAndCode(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{
		doctree.Text("Computes "),
		doctree.Literal("sum"),
		doctree.Text(" of "),
		doctree.MarkupStart("code"),
		doctree.Text("a"),
		doctree.MarkupEnd("code"),
	})
	require.Equal(t, "Computes `sum` of `a`", out)
}

func TestNodes_WhitespaceCollapsedOutsideCode(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Text("a\n  b")})
	require.Equal(t, "a b", out)
}

func TestNodes_WhitespacePreservedInsideCode(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{
		doctree.MarkupStart("code"),
		doctree.Text("a\n  b"),
		doctree.MarkupEnd("code"),
	})
	require.Equal(t, "`a\n  b`", out)
}

func TestNodes_WhitespacePreservedInsidePre(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{
		doctree.MarkupStart("pre"),
		doctree.Text("x  :=  1\n  y := 2"),
		doctree.MarkupEnd("pre"),
	})
	require.Equal(t, "```\nx  :=  1\n  y := 2\n```", out)
}

func TestNodes_HorizontalSpaceRunsCollapse(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Text("a    b")})
	require.Equal(t, "a b", out)
}

func TestNodes_MarkupTokens(t *testing.T) {
	r := New()
	cases := []struct {
		name  string
		nodes []doctree.Node
		want  string
	}{
		{
			"bold",
			[]doctree.Node{doctree.MarkupStart("b"), doctree.Text("x"), doctree.MarkupEnd("b")},
			"**x**",
		},
		{
			"strong",
			[]doctree.Node{doctree.MarkupStart("strong"), doctree.Text("x"), doctree.MarkupEnd("strong")},
			"**x**",
		},
		{
			"italic",
			[]doctree.Node{doctree.MarkupStart("i"), doctree.Text("x"), doctree.MarkupEnd("i")},
			"*x*",
		},
		{
			"emphasis",
			[]doctree.Node{doctree.MarkupStart("em"), doctree.Text("x"), doctree.MarkupEnd("em")},
			"*x*",
		},
		{
			"paragraph break",
			[]doctree.Node{doctree.Text("a"), doctree.MarkupStart("p"), doctree.Text("b")},
			"a\n\nb",
		},
		{
			"line break",
			[]doctree.Node{doctree.Text("a"), doctree.MarkupStart("br"), doctree.Text("b")},
			"a\nb",
		},
		{
			"unknown element emits nothing",
			[]doctree.Node{doctree.MarkupStart("span"), doctree.Text("x"), doctree.MarkupEnd("span")},
			"x",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, r.Nodes(tc.nodes))
		})
	}
}

func TestNodes_UppercaseElementNamesNormalized(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.MarkupStart("B"), doctree.Text("x"), doctree.MarkupEnd("B")})
	require.Equal(t, "**x**", out)
}

func TestNodes_UnbalancedCloseTolerated(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Text("a"), doctree.MarkupEnd("b"), doctree.Text("c")})
	require.Equal(t, "a**c", out)
}

func TestNodes_LinkPrefersLabel(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{
		doctree.Link([]doctree.Node{doctree.Text("the list")}, "java.util.List"),
	})
	require.Equal(t, "the list", out)
}

func TestNodes_LinkFallsBackToReference(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Link(nil, "java.util.List")})
	require.Equal(t, "`java.util.List`", out)
}

func TestNodes_LinkWithNothingEmitsNothing(t *testing.T) {
	r := New()
	require.Equal(t, "", r.Nodes([]doctree.Node{doctree.Link(nil, "")}))
}

func TestNodes_SeeReferenceUnwrapped(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.See([]doctree.Node{doctree.Text("Collections")})})
	require.Equal(t, "Collections", out)
}

func TestNodes_EntityDecoded(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Text("a "), doctree.Entity("lt"), doctree.Text(" b")})
	require.Equal(t, "a < b", out)
}

func TestNodes_UnknownEntityPassedThrough(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Entity("copy")})
	require.Equal(t, "&copy;", out)
}

func TestNodes_ErroneousEmittedVerbatim(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Erroneous("@bogus<")})
	require.Equal(t, "@bogus<", out)
}

func TestNodes_UnknownTagResolvedByFinalPass(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.UnknownTag("{@index term}")})
	// The final expansion pass resolves the surviving directive braces.
	require.Equal(t, "term", out)
}

func TestNodes_BlankLineRunsCollapse(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{
		doctree.Text("a"),
		doctree.MarkupStart("p"),
		doctree.MarkupEnd("p"),
		doctree.MarkupStart("p"),
		doctree.Text("b"),
	})
	require.Equal(t, "a\n\nb", out)
}

func TestNodes_FinalPassExpandsDirectives(t *testing.T) {
	r := New()
	out := r.Nodes([]doctree.Node{doctree.Text("use {@code nil} here")})
	require.Equal(t, "use `nil` here", out)
}

func TestNodes_EmptyInput(t *testing.T) {
	r := New()
	require.Equal(t, "", r.Nodes(nil))
}

func TestText_DirectiveOnly(t *testing.T) {
	r := New()
	require.Equal(t, "`x < y`", r.Text("{@code x < y}"))
}

func TestText_HTMLLikeConverted(t *testing.T) {
	r := New()
	require.Equal(t, "**Warning**: deprecated", r.Text("<b>Warning</b>: deprecated"))
}

func TestText_PlainPassthrough(t *testing.T) {
	r := New()
	require.Equal(t, "nothing special here", r.Text("nothing special here"))
}

func TestText_EmptyInput(t *testing.T) {
	r := New()
	require.Equal(t, "", r.Text(""))
}

func TestText_EntitiesDecoded(t *testing.T) {
	r := New()
	require.Equal(t, "a < b", r.Text("a &lt; b"))
}

func TestText_UnbalancedBracesFallBackToOriginal(t *testing.T) {
	r := New()
	in := "{@code never closed"
	require.Equal(t, in, r.Text(in))
}

func TestText_FallbackRecordedInMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	r := New(WithRecorder(rec))

	r.Text("{@code never closed")

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() == "docmark_render_fallbacks_total" {
			found = true
		}
	}
	require.True(t, found, "fallback counter should be registered and populated")
}

func TestComment_SectionsJoinedByBlankLines(t *testing.T) {
	r := New()
	c := doctree.Comment{
		FirstSentence: []doctree.Node{doctree.Text("Does a thing.")},
		Body:          []doctree.Node{doctree.Text("More detail.")},
		BlockTags:     []doctree.BlockTag{doctree.Return([]doctree.Node{doctree.Text("the thing")})},
	}
	require.Equal(t, "Does a thing.\n\nMore detail.\n\n@return the thing", r.Comment(c))
}

func TestComment_EmptySectionsOmitted(t *testing.T) {
	r := New()
	c := doctree.Comment{
		FirstSentence: []doctree.Node{doctree.Text("Summary only.")},
	}
	require.Equal(t, "Summary only.", r.Comment(c))
}

func TestComment_EmptyCommentYieldsEmptyString(t *testing.T) {
	r := New()
	require.Equal(t, "", r.Comment(doctree.Comment{}))
}

func TestMarkupContent_Kind(t *testing.T) {
	r := New()
	mc := r.MarkupContent(doctree.Comment{FirstSentence: []doctree.Node{doctree.Text("hi")}})
	require.Equal(t, protocol.MarkupKindMarkdown, mc.Kind)
	require.Equal(t, "hi", mc.Value)
}
