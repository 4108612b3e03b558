package inline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand_NoBracesUnchanged(t *testing.T) {
	for _, text := range []string{
		"",
		"plain prose",
		"operators like a < b stay put",
		"unicode: héllo wörld",
	} {
		out, err := Expand(text)
		require.NoError(t, err)
		require.Equal(t, text, out)
	}
}

func TestExpand_CodeDirective(t *testing.T) {
	out, err := Expand("{@code x < y}")
	require.NoError(t, err)
	require.Equal(t, "`x < y`", out)
}

func TestExpand_LinkDirectives(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{@link String}", "`String`"},
		{"{@linkplain java.util.List}", "`java.util.List`"},
	}
	for _, tc := range cases {
		out, err := Expand(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, out)
	}
}

func TestExpand_LiteralDirectiveUnwrapped(t *testing.T) {
	out, err := Expand("{@literal a<b>c}")
	require.NoError(t, err)
	require.Equal(t, "a<b>c", out)
}

func TestExpand_UnknownDirectiveKeepsContent(t *testing.T) {
	out, err := Expand("see {@value #MAX} for details")
	require.NoError(t, err)
	require.Equal(t, "see #MAX for details", out)
}

func TestExpand_NestedDirectives(t *testing.T) {
	out, err := Expand("{@code outer {@literal inner} tail}")
	require.NoError(t, err)
	require.Equal(t, "`outer inner tail`", out)
}

func TestExpand_SurroundingTextPreserved(t *testing.T) {
	out, err := Expand("Returns {@code null} when empty.")
	require.NoError(t, err)
	require.Equal(t, "Returns `null` when empty.", out)
}

func TestExpand_SingleSpaceAfterNameConsumed(t *testing.T) {
	// Only the first space separates the name from the content.
	out, err := Expand("{@code  two spaces}")
	require.NoError(t, err)
	require.Equal(t, "` two spaces`", out)
}

func TestExpand_UnmatchedOpenBraceFails(t *testing.T) {
	_, err := Expand("{@code never closed")
	require.Error(t, err)
}

func TestExpand_StrayCloseBraceIsLiteral(t *testing.T) {
	out, err := Expand("a } b")
	require.NoError(t, err)
	require.Equal(t, "a } b", out)
}

func TestExpand_DepthCap(t *testing.T) {
	deep := strings.Repeat("{@code ", 100) + "x" + strings.Repeat("}", 100)
	_, err := Expand(deep)
	require.Error(t, err)
}

func TestExpandOrOriginal_FallsBackOnFailure(t *testing.T) {
	in := "{@code never closed"
	require.Equal(t, in, ExpandOrOriginal(in))
}

func TestExpandOrOriginal_ExpandsOnSuccess(t *testing.T) {
	require.Equal(t, "`x`", ExpandOrOriginal("{@code x}"))
}
