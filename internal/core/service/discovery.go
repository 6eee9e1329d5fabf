package service

import (
	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/pkg/fuzzyindex"
)

// SearchWeights configures the field weighting of the search index.
// The title outweighs category names.
type SearchWeights struct {
	Title    float64
	Category float64
}

func (w SearchWeights) normalize() SearchWeights {
	if w.Title <= 0 {
		w.Title = 1.0
	}
	if w.Category <= 0 {
		w.Category = 0.5
	}
	return w
}

// Discovery recomputes the visible product list for a filter state.
// The search index is built once from the product list and read-only
// afterward, so VisibleProducts is pure and safe to call
// concurrently.
type Discovery struct {
	products []domain.Product
	byID     map[string]domain.Product
	index    *fuzzyindex.Index
}

func NewDiscovery(products []domain.Product, w SearchWeights) *Discovery {
	w = w.normalize()

	byID := make(map[string]domain.Product, len(products))
	docs := make([]fuzzyindex.Document, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p

		fields := []fuzzyindex.Field{{Text: p.Title, Weight: w.Title}}
		for _, name := range p.CategoryNames() {
			fields = append(fields, fuzzyindex.Field{Text: name, Weight: w.Category})
		}
		docs = append(docs, fuzzyindex.Document{ID: p.ID, Fields: fields})
	}

	return &Discovery{
		products: products,
		byID:     byID,
		index:    fuzzyindex.New(docs),
	}
}

// VisibleProducts returns the products to render for the given filter
// state. The category set and the search set are computed
// independently and intersected, never narrowed sequentially, so the
// result does not depend on which filter was applied first. Order is
// search rank while a query is active, catalog order otherwise. An
// empty result is a normal outcome, an unknown category slug simply
// matches nothing.
func (d *Discovery) VisibleProducts(fs domain.FilterState) []domain.Product {
	slug, hasCategory := fs.Category()
	query, hasQuery := fs.Query()

	switch {
	case !hasCategory && !hasQuery:
		return append([]domain.Product(nil), d.products...)
	case hasCategory && !hasQuery:
		return d.filterByCategory(d.products, slug)
	case !hasCategory:
		return d.searchRanked(query)
	default:
		return d.filterByCategory(d.searchRanked(query), slug)
	}
}

// searchRanked runs the index over the full, unfiltered catalog and
// resolves matches back to products in rank order. Equal scores keep
// catalog order.
func (d *Discovery) searchRanked(query string) []domain.Product {
	matches := d.index.Search(query)
	out := make([]domain.Product, 0, len(matches))
	for _, m := range matches {
		if p, ok := d.byID[m.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (d *Discovery) filterByCategory(ps []domain.Product, slug string) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if p.InCategory(slug) {
			out = append(out, p)
		}
	}
	return out
}
