package domain_test

import (
	"testing"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterState(t *testing.T) {
	t.Run("ZeroValueHasNoFilters", func(t *testing.T) {
		var s domain.FilterState
		_, ok := s.Category()
		assert.False(t, ok)
		_, ok = s.Query()
		assert.False(t, ok)
	})

	t.Run("SelectAndClearCategory", func(t *testing.T) {
		var s domain.FilterState
		s.SelectCategory("beasts")
		slug, ok := s.Category()
		assert.True(t, ok)
		assert.Equal(t, "beasts", slug)

		s.ClearCategory()
		_, ok = s.Category()
		assert.False(t, ok)
	})

	t.Run("SetQueryTrims", func(t *testing.T) {
		var s domain.FilterState
		s.SetQuery("  fire  ")
		q, ok := s.Query()
		assert.True(t, ok)
		assert.Equal(t, "fire", q)
	})

	t.Run("WhitespaceQueryClears", func(t *testing.T) {
		var s domain.FilterState
		s.SetQuery("fire")
		s.SetQuery(" \t ")
		_, ok := s.Query()
		assert.False(t, ok)
	})

	t.Run("ClearResetsBothAxes", func(t *testing.T) {
		var s domain.FilterState
		s.SelectCategory("beasts")
		s.SetQuery("fire")

		s.Clear()

		_, hasCategory := s.Category()
		_, hasQuery := s.Query()
		assert.False(t, hasCategory)
		assert.False(t, hasQuery)
	})

	t.Run("AxesAreIndependent", func(t *testing.T) {
		var s domain.FilterState
		s.SelectCategory("beasts")
		s.SetQuery("fire")

		s.ClearQuery()

		slug, ok := s.Category()
		assert.True(t, ok)
		assert.Equal(t, "beasts", slug)
		_, ok = s.Query()
		assert.False(t, ok)
	})
}

func TestProductInCategory(t *testing.T) {
	p := domain.Product{
		Categories: []domain.Category{
			{ID: "c1", Name: "Beasts", Slug: "beasts"},
		},
	}
	assert.True(t, p.InCategory("beasts"))
	assert.False(t, p.InCategory("serpents"))
	assert.False(t, domain.Product{}.InCategory("beasts"))
}
