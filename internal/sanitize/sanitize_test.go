package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanEscapesHTML(t *testing.T) {
	require.Equal(t, "&lt;b&gt;hola&lt;/b&gt;", Clean("<b>hola</b>", MaxName))
	require.Equal(t, "Tornillos &amp; tuercas", Clean("Tornillos & tuercas", MaxName))
}

func TestCleanCapsLength(t *testing.T) {
	long := strings.Repeat("a", 200)
	require.Len(t, Clean(long, MaxName), MaxName)
}

func TestCleanCountsRunes(t *testing.T) {
	long := strings.Repeat("ñ", 120)
	got := Clean(long, MaxName)
	require.Equal(t, MaxName, len([]rune(got)))
	require.True(t, strings.HasPrefix(got, "ñ"))
}

func TestCleanShortValueUntouched(t *testing.T) {
	require.Equal(t, "Chaqueta", Clean("Chaqueta", MaxName))
}
