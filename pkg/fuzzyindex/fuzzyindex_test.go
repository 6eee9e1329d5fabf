package fuzzyindex_test

import (
	"sync"
	"testing"

	"github.com/hyperbros/cardstore/pkg/fuzzyindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardDocs() []fuzzyindex.Document {
	return []fuzzyindex.Document{
		{ID: "p1", Fields: []fuzzyindex.Field{
			{Text: "Fire Dragon", Weight: 1.0},
			{Text: "Beasts", Weight: 0.5},
		}},
		{ID: "p2", Fields: []fuzzyindex.Field{
			{Text: "Ice Fire", Weight: 1.0},
			{Text: "Beasts", Weight: 0.5},
		}},
		{ID: "p3", Fields: []fuzzyindex.Field{
			{Text: "Water Serpent", Weight: 1.0},
			{Text: "Serpents", Weight: 0.5},
		}},
	}
}

func ids(ms []fuzzyindex.Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestIndexSearch(t *testing.T) {
	ix := fuzzyindex.New(cardDocs())

	t.Run("EmptyQueryMatchesNothing", func(t *testing.T) {
		assert.Empty(t, ix.Search(""))
		assert.Empty(t, ix.Search("   "))
	})

	t.Run("PrefixBeatsSubstring", func(t *testing.T) {
		got := ix.Search("fire")
		assert.Equal(t, []string{"p1", "p2"}, ids(got))
	})

	t.Run("SubstringBeatsFuzzy", func(t *testing.T) {
		// "serpent" is a substring of p3's title and only a fuzzy
		// subsequence of nothing else.
		got := ix.Search("serpent")
		require.NotEmpty(t, got)
		assert.Equal(t, "p3", got[0].ID)
	})

	t.Run("FuzzyTypoStillMatches", func(t *testing.T) {
		got := ix.Search("drgon")
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("TitleOutweighsCategory", func(t *testing.T) {
		// "beasts" is a category prefix on p1 and p2, scores must
		// stay worse than a same-tier title match would be.
		title := ix.Search("fire")
		category := ix.Search("beasts")
		require.NotEmpty(t, title)
		require.NotEmpty(t, category)
		assert.Less(t, title[0].Score, category[0].Score)
	})

	t.Run("LowerScoreIsBetter", func(t *testing.T) {
		got := ix.Search("fire")
		require.Len(t, got, 2)
		assert.Less(t, got[0].Score, got[1].Score)
	})

	t.Run("EqualScoresKeepCatalogOrder", func(t *testing.T) {
		got := ix.Search("beasts")
		assert.Equal(t, []string{"p1", "p2"}, ids(got))
	})

	t.Run("FoldsCaseAndAccents", func(t *testing.T) {
		ix := fuzzyindex.New([]fuzzyindex.Document{
			{ID: "p1", Fields: []fuzzyindex.Field{
				{Text: "Pokémon Éevee", Weight: 1.0},
			}},
		})
		got := ix.Search("POKEMON")
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].ID)
	})

	t.Run("ZeroWeightFieldIgnored", func(t *testing.T) {
		ix := fuzzyindex.New([]fuzzyindex.Document{
			{ID: "p1", Fields: []fuzzyindex.Field{
				{Text: "hidden", Weight: 0},
			}},
		})
		assert.Empty(t, ix.Search("hidden"))
	})

	t.Run("ConcurrentSearchesDoNotInterfere", func(t *testing.T) {
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, []string{"p1", "p2"}, ids(ix.Search("fire")))
				assert.Equal(t, []string{"p3"}, ids(ix.Search("serpent")))
			}()
		}
		wg.Wait()
	})
}

func TestFold(t *testing.T) {
	assert.Equal(t, "pokemon", fuzzyindex.Fold("Pokémon"))
	assert.Equal(t, "fire dragon", fuzzyindex.Fold("Fire Dragon"))
}
