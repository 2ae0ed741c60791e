package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/core/errx"
)

func testCatalog() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Nike Air Max Red", Category: "footwear", PriceNGN: 45000, StockLevel: 3, Description: "Classic red sneakers", VoiceTags: []string{"sneakers", "red", "nike"}},
		{ID: "2", Name: "White Canvas Sneakers", Category: "footwear", PriceNGN: 18000, StockLevel: 5, Description: "Plain white canvas", VoiceTags: []string{"canvas", "white"}},
		{ID: "3", Name: "Black Leather Bag", Category: "accessories", PriceNGN: 35000, StockLevel: 2, Description: "Handmade leather handbag", VoiceTags: []string{"bag", "leather"}},
		{ID: "4", Name: "Gold Chain Necklace", Category: "jewelry", PriceNGN: 25000, StockLevel: 0, Description: "18k gold plated chain", VoiceTags: []string{"chain", "gold"}},
	}
}

func TestSmartSearchFindsSynonymMatches(t *testing.T) {
	r := NewResolver(nil)

	// "kicks" never appears in the catalog; only synonym expansion can
	// reach the sneakers.
	got := r.SmartSearch("kicks", testCatalog())
	require.NotEmpty(t, got)
	for _, p := range got {
		require.Contains(t, []string{"1", "2"}, p.ID)
	}
}

func TestSmartSearchNoDuplicateIDs(t *testing.T) {
	r := NewResolver(nil)

	catalog := append(testCatalog(), testCatalog()...)
	got := r.SmartSearch("shoes", catalog)

	seen := map[string]struct{}{}
	for _, p := range got {
		_, dup := seen[p.ID]
		require.False(t, dup, "duplicate product id %q", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestSmartSearchNeverNil(t *testing.T) {
	r := NewResolver(nil)

	got := r.SmartSearch("zzz-nothing-matches", testCatalog())
	require.NotNil(t, got)
	require.Empty(t, got)

	got = r.SmartSearch("anything", nil)
	require.NotNil(t, got)
}

func TestSmartSearchRanking(t *testing.T) {
	r := NewResolver(nil)

	got := r.SmartSearch("red sneakers", testCatalog())
	require.NotEmpty(t, got)
	// The red sneakers match name, description and tags; they must
	// outrank the plain white pair.
	require.Equal(t, "1", got[0].ID)
}

func TestSmartSearchStableTieBreak(t *testing.T) {
	r := NewResolver(nil)

	catalog := []model.Product{
		{ID: "a", Name: "Blue Polo Shirt", VoiceTags: []string{"shirt"}},
		{ID: "b", Name: "Blue Polo Shirt", VoiceTags: []string{"shirt"}},
	}
	got := r.SmartSearch("blue polo shirt", catalog)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "b", got[1].ID)
}

func TestSelectFromListOrdinal(t *testing.T) {
	r := NewResolver(nil)
	catalog := testCatalog()

	tests := []struct {
		text string
		want string
	}{
		{"the first one", "1"},
		{"the second one", "2"},
		{"number 3", "3"},
		{"2", "2"},
		{"I'll take the 4th", "4"},
	}
	for _, tc := range tests {
		got, err := r.SelectFromList(tc.text, catalog)
		require.NoError(t, err, "text %q", tc.text)
		require.Equal(t, tc.want, got.ID, "text %q", tc.text)
	}
}

func TestSelectFromListByName(t *testing.T) {
	r := NewResolver(nil)

	got, err := r.SelectFromList("the black leather bag please", testCatalog())
	require.NoError(t, err)
	require.Equal(t, "3", got.ID)

	got, err = r.SelectFromList("canvas", testCatalog())
	require.NoError(t, err)
	require.Equal(t, "2", got.ID)
}

func TestSelectFromListByAttribute(t *testing.T) {
	r := NewResolver(nil)

	// "golden" resolves through the synonym table to "gold".
	got, err := r.SelectFromList("the golden one", testCatalog())
	require.NoError(t, err)
	require.Equal(t, "4", got.ID)
}

func TestSelectFromListEarliestWins(t *testing.T) {
	r := NewResolver(nil)

	catalog := []model.Product{
		{ID: "x", Name: "Red Cap"},
		{ID: "y", Name: "Red Scarf"},
	}
	got, err := r.SelectFromList("red", catalog)
	require.NoError(t, err)
	require.Equal(t, "x", got.ID)
}

func TestSelectFromListNoMatch(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.SelectFromList("none of these", testCatalog())
	require.ErrorIs(t, err, errx.ErrAmbiguousSelection)

	_, err = r.SelectFromList("the first one", nil)
	require.ErrorIs(t, err, errx.ErrAmbiguousSelection)

	// Ordinal out of range falls through without matching.
	_, err = r.SelectFromList("number 9", testCatalog()[:2])
	require.ErrorIs(t, err, errx.ErrAmbiguousSelection)
}
