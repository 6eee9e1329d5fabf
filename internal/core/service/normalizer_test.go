package service_test

import (
	"testing"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedNode() domain.CatalogNode {
	return domain.CatalogNode{
		ID:      "cG9zdDox",
		Slug:    "fire-dragon",
		Title:   "Fire Dragon",
		Content: "<p>A <strong>rare</strong> card.</p>",
		Pricing: &domain.PricingNode{ProductID: "101", ProductPrice: 12.5},
		Media: &domain.MediaNode{
			SourceURL: "https://cdn.example.com/fire-dragon.jpg",
			AltText:   "Fire Dragon Card",
			Details:   &domain.MediaDetails{Width: 864, Height: 1200},
		},
		CategoryEdges: []domain.CategoryEdge{
			{Node: domain.Category{ID: "c1", Name: "Beasts", Slug: "beasts"}},
		},
	}
}

func TestNormalizeProduct(t *testing.T) {
	t.Run("FlattensNestedNode", func(t *testing.T) {
		p, err := service.NormalizeProduct(nestedNode())
		require.NoError(t, err)

		assert.Equal(t, "cG9zdDox", p.ID)
		assert.Equal(t, "fire-dragon", p.Slug)
		assert.Equal(t, "Fire Dragon", p.Title)
		assert.Equal(t, 12.5, p.Price)

		require.NotNil(t, p.Image)
		assert.Equal(t, "https://cdn.example.com/fire-dragon.jpg", p.Image.URL)
		assert.Equal(t, 864, p.Image.Width)
		assert.Equal(t, 1200, p.Image.Height)
		assert.Equal(t, "Fire Dragon Card", p.Image.Alt)

		require.Len(t, p.Categories, 1)
		assert.Equal(t, "beasts", p.Categories[0].Slug)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once, err := service.NormalizeProduct(nestedNode())
		require.NoError(t, err)

		twice, err := service.NormalizeProduct(once.Node())
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})

	t.Run("MissingCategoriesIsEmptySet", func(t *testing.T) {
		n := nestedNode()
		n.CategoryEdges = nil
		p, err := service.NormalizeProduct(n)
		require.NoError(t, err)
		assert.Empty(t, p.Categories)
	})

	t.Run("MissingMediaToleratedForListing", func(t *testing.T) {
		n := nestedNode()
		n.Media = nil
		p, err := service.NormalizeProduct(n)
		require.NoError(t, err)
		assert.Nil(t, p.Image)

		err = service.RequireImage(p)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingMedia)
	})

	t.Run("ImagePresentSatisfiesDetail", func(t *testing.T) {
		p, err := service.NormalizeProduct(nestedNode())
		require.NoError(t, err)
		assert.NoError(t, service.RequireImage(p))
	})

	t.Run("MissingPricingIsMalformed", func(t *testing.T) {
		n := nestedNode()
		n.Pricing = nil
		_, err := service.NormalizeProduct(n)
		assert.Error(t, err)
	})

	t.Run("NegativePriceIsMalformed", func(t *testing.T) {
		n := nestedNode()
		n.Pricing.ProductPrice = -1
		_, err := service.NormalizeProduct(n)
		assert.Error(t, err)
	})

	t.Run("NonPositiveDimensionsAreMalformed", func(t *testing.T) {
		n := nestedNode()
		n.Media.Details.Height = 0
		_, err := service.NormalizeProduct(n)
		assert.Error(t, err)
	})

	t.Run("MissingIdentityIsMalformed", func(t *testing.T) {
		n := nestedNode()
		n.ID = ""
		_, err := service.NormalizeProduct(n)
		assert.Error(t, err)

		n = nestedNode()
		n.Slug = ""
		_, err = service.NormalizeProduct(n)
		assert.Error(t, err)
	})

	t.Run("FlatFieldsWinOverNested", func(t *testing.T) {
		n := nestedNode()
		flatPrice := 99.0
		n.Price = &flatPrice
		p, err := service.NormalizeProduct(n)
		require.NoError(t, err)
		assert.Equal(t, 99.0, p.Price)
	})
}

func TestNormalizeCatalog(t *testing.T) {
	t.Run("SkipsMalformedKeepsRest", func(t *testing.T) {
		good := nestedNode()
		bad := nestedNode()
		bad.ID = ""
		other := nestedNode()
		other.ID = "cG9zdDoy"
		other.Slug = "ice-fire"

		ps := service.NormalizeCatalog([]domain.CatalogNode{good, bad, other})
		require.Len(t, ps, 2)
		assert.Equal(t, "fire-dragon", ps[0].Slug)
		assert.Equal(t, "ice-fire", ps[1].Slug)
	})
}

func TestNewCategoryIndex(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		in := []domain.Category{
			{ID: "c2", Name: "Serpents", Slug: "serpents"},
			{ID: "c1", Name: "Beasts", Slug: "beasts"},
		}
		out, err := service.NewCategoryIndex(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("DuplicateSlugSurfaced", func(t *testing.T) {
		in := []domain.Category{
			{ID: "c1", Name: "Beasts", Slug: "beasts"},
			{ID: "c9", Name: "Beasts Again", Slug: "beasts"},
		}
		out, err := service.NewCategoryIndex(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

		// First occurrence wins, the page can still render.
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)
	})
}
