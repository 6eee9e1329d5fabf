package domain

// A CatalogNode is one product record as the catalog API returns it:
// identity at the top level, pricing and media in nested sub-objects,
// categories as edges. A node that went through normalization once
// carries the flat fields instead, nested sub-objects absent.
type (
	CatalogNode struct {
		ID      string
		Slug    string
		Title   string
		Content string

		Pricing       *PricingNode
		Media         *MediaNode
		CategoryEdges []CategoryEdge

		// Flat variants, set when the node is already normalized.
		// Presence decides, flat fields win over nested ones.
		Price      *float64
		Image      *ProductImage
		Categories []Category
	}

	PricingNode struct {
		ProductID    string
		ProductPrice float64
	}

	MediaNode struct {
		SourceURL string
		AltText   string
		Details   *MediaDetails
	}

	MediaDetails struct {
		Width  int
		Height int
	}

	CategoryEdge struct {
		Node Category
	}
)

// Node converts a normalized product back into its flat catalog-node
// form. Normalizing the result yields the product unchanged.
func (p Product) Node() CatalogNode {
	price := p.Price
	return CatalogNode{
		ID:         p.ID,
		Slug:       p.Slug,
		Title:      p.Title,
		Content:    p.Content,
		Price:      &price,
		Image:      p.Image,
		Categories: p.Categories,
	}
}
