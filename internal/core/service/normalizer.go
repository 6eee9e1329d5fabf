package service

import (
	"fmt"
	"log/slog"

	"github.com/hyperbros/cardstore/internal/core/domain"
)

// NormalizeProduct flattens one catalog node into a Product: top-level
// fields are copied, the pricing sub-object is merged up, the media
// sub-object collapses into a single image, category edges become a
// flat category set. Flat fields already present on the node win over
// their nested variants, so normalizing an already-flat node returns
// it unchanged.
//
// A missing media node yields a product without an image, detail
// callers reject that via RequireImage. A missing category list is an
// empty set. Missing identity, slug or pricing makes the record
// malformed.
func NormalizeProduct(n domain.CatalogNode) (domain.Product, error) {
	const op = "NormalizeProduct"

	if n.ID == "" {
		return domain.Product{}, fmt.Errorf("%s: record without id", op)
	}
	if n.Slug == "" {
		return domain.Product{}, fmt.Errorf("%s: record %q without slug", op, n.ID)
	}

	p := domain.Product{
		ID:      n.ID,
		Title:   n.Title,
		Slug:    n.Slug,
		Content: n.Content,
	}

	switch {
	case n.Price != nil:
		p.Price = *n.Price
	case n.Pricing != nil:
		p.Price = n.Pricing.ProductPrice
	default:
		return domain.Product{}, fmt.Errorf("%s: record %q without pricing", op, n.ID)
	}
	if p.Price < 0 {
		return domain.Product{}, fmt.Errorf("%s: record %q with negative price", op, n.ID)
	}

	img, err := flattenMedia(n)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: record %q: %w", op, n.ID, err)
	}
	p.Image = img

	switch {
	case n.Categories != nil:
		p.Categories = n.Categories
	case len(n.CategoryEdges) != 0:
		p.Categories = make([]domain.Category, 0, len(n.CategoryEdges))
		for _, e := range n.CategoryEdges {
			p.Categories = append(p.Categories, e.Node)
		}
	}

	return p, nil
}

func flattenMedia(n domain.CatalogNode) (*domain.ProductImage, error) {
	if n.Image != nil {
		return n.Image, nil
	}
	if n.Media == nil {
		return nil, nil
	}

	img := &domain.ProductImage{
		URL: n.Media.SourceURL,
		Alt: n.Media.AltText,
	}
	if d := n.Media.Details; d != nil {
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("media with non-positive dimensions %dx%d",
				d.Width, d.Height)
		}
		img.Width = d.Width
		img.Height = d.Height
	}
	return img, nil
}

// RequireImage enforces the detail-view media contract.
func RequireImage(p domain.Product) error {
	if p.Image == nil || p.Image.URL == "" {
		return fmt.Errorf("product %q: %w", p.Slug, domain.ErrMissingMedia)
	}
	return nil
}

// NormalizeCatalog normalizes every node, skipping and reporting
// malformed records so one bad record never takes the whole catalog
// down with it.
func NormalizeCatalog(nodes []domain.CatalogNode) []domain.Product {
	const op = "NormalizeCatalog"
	log := slog.With("op", op)

	ps := make([]domain.Product, 0, len(nodes))
	for _, n := range nodes {
		p, err := NormalizeProduct(n)
		if err != nil {
			log.Warn("skipping malformed catalog record", "err", err)
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

// NewCategoryIndex flattens raw categories preserving API order. A
// duplicate slug is reported as ErrDuplicateCategory together with
// the pruned list (first occurrence wins), so the caller can log the
// integrity issue and still render.
func NewCategoryIndex(cats []domain.Category) ([]domain.Category, error) {
	const op = "NewCategoryIndex"

	seen := make(map[string]struct{}, len(cats))
	out := make([]domain.Category, 0, len(cats))
	var dupErr error

	for _, c := range cats {
		if _, ok := seen[c.Slug]; ok {
			dupErr = fmt.Errorf("%s: %q: %w", op, c.Slug, domain.ErrDuplicateCategory)
			continue
		}
		seen[c.Slug] = struct{}{}
		out = append(out, c)
	}
	return out, dupErr
}
