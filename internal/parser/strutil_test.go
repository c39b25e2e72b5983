package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	require.Equal(t, `"User"`, Quote("User"))
	require.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
}

func TestIndent(t *testing.T) {
	require.Equal(t, "  a\n  b", Indent("a\nb", 2))
	require.Equal(t, "a\n\nb", Indent("a\n\nb", 0))
	require.Equal(t, "    x\n\n    y", Indent("x\n\ny", 4))
}

func TestUniq(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, Uniq([]string{"a", "b", "a", "c", "b"}))
	require.Equal(t, []int{3, 1, 2}, Uniq([]int{3, 1, 3, 2, 1}))
	require.Empty(t, Uniq([]string{}))
}
