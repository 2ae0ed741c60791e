package synonyms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandOriginalFirst(t *testing.T) {
	tbl := DefaultTable()

	got := tbl.Expand("Red Shoes")
	require.NotEmpty(t, got)
	require.Equal(t, "red shoes", got[0])

	var hasSneakers bool
	for _, v := range got {
		if strings.Contains(v, "sneakers") {
			hasSneakers = true
		}
	}
	require.True(t, hasSneakers, "expected a sneakers variant in %v", got)
}

func TestExpandDeduplicates(t *testing.T) {
	tbl := DefaultTable()

	got := tbl.Expand("shoes shoes")
	seen := map[string]int{}
	for _, v := range got {
		seen[v]++
		require.Equal(t, 1, seen[v], "duplicate variant %q", v)
	}
}

func TestExpandWholeWordOnly(t *testing.T) {
	tbl := DefaultTable()

	// "black" is a known term but "blackboard" must not be rewritten.
	got := tbl.Expand("blackboard black")
	require.Equal(t, "blackboard black", got[0])
	require.Contains(t, got, "blackboard dark")
	for _, v := range got {
		require.True(t, strings.HasPrefix(v, "blackboard "), "unexpected variant %q", v)
	}
}

func TestExpandUnknownTokens(t *testing.T) {
	tbl := DefaultTable()

	got := tbl.Expand("quantum flux")
	require.Equal(t, []string{"quantum flux"}, got)
}

func TestExpandDeterministicOrder(t *testing.T) {
	tbl := DefaultTable()

	first := tbl.Expand("red shoes")
	for i := 0; i < 20; i++ {
		require.Equal(t, first, tbl.Expand("red shoes"))
	}
}

func TestAllSynonymsClosure(t *testing.T) {
	tbl := DefaultTable()

	got := tbl.AllSynonyms("canvas")
	require.Equal(t, "canvas", got[0])
	// Direct synonyms.
	require.Contains(t, got, "kicks")
	// Reverse: "shoes" lists canvas as a synonym, so it and its other
	// synonyms join the closure.
	require.Contains(t, got, "shoes")
	require.Contains(t, got, "footwear")

	seen := map[string]struct{}{}
	for _, s := range got {
		_, dup := seen[s]
		require.False(t, dup, "duplicate %q", s)
		seen[s] = struct{}{}
	}
}

func TestAllSynonymsUnknownTerm(t *testing.T) {
	tbl := DefaultTable()

	require.Equal(t, []string{"widget"}, tbl.AllSynonyms("Widget"))
}
