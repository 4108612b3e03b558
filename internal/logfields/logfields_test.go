package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_NilError(t *testing.T) {
	attr := Error(nil)
	require.Equal(t, KeyError, attr.Key)
	require.Equal(t, "", attr.Value.String())
}

func TestError_WrapsMessage(t *testing.T) {
	attr := Error(errors.New("boom"))
	require.Equal(t, "boom", attr.Value.String())
}

func TestDirective_KeyAndValue(t *testing.T) {
	attr := Directive("code")
	require.Equal(t, KeyDirective, attr.Key)
	require.Equal(t, "code", attr.Value.String())
}
