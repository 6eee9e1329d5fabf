package catalogapi

import (
	"encoding/json"

	"github.com/hyperbros/cardstore/internal/core/domain"
)

type (
	gqlRequest struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}

	gqlError struct {
		Message string `json:"message"`
	}

	envelope[T any] struct {
		Data   T          `json:"data"`
		Errors []gqlError `json:"errors"`
	}
)

type (
	productsData struct {
		Products connection[productNode] `json:"products"`
	}

	productData struct {
		Product *productNode `json:"product"`
	}

	categoriesData struct {
		ProductCategories connection[categoryNode] `json:"productCategories"`
	}

	connection[T any] struct {
		Edges []edge[T] `json:"edges"`
	}

	edge[T any] struct {
		Node T `json:"node"`
	}

	productNode struct {
		ID            string                    `json:"id"`
		Slug          string                    `json:"slug"`
		Title         string                    `json:"title"`
		Content       string                    `json:"content"`
		Product       *pricingNode              `json:"product"`
		FeaturedImage *featuredImage            `json:"featuredImage"`
		Categories    *connection[categoryNode] `json:"productCategories"`
	}

	pricingNode struct {
		ProductID    json.Number `json:"productId"`
		ProductPrice float64     `json:"productPrice"`
	}

	featuredImage struct {
		Node mediaNode `json:"node"`
	}

	mediaNode struct {
		AltText      string        `json:"altText"`
		SourceURL    string        `json:"sourceUrl"`
		MediaDetails *mediaDetails `json:"mediaDetails"`
	}

	mediaDetails struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}

	categoryNode struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
)

func (n productNode) toDomain() domain.CatalogNode {
	out := domain.CatalogNode{
		ID:      n.ID,
		Slug:    n.Slug,
		Title:   n.Title,
		Content: n.Content,
	}

	if n.Product != nil {
		out.Pricing = &domain.PricingNode{
			ProductID:    n.Product.ProductID.String(),
			ProductPrice: n.Product.ProductPrice,
		}
	}

	if n.FeaturedImage != nil {
		m := n.FeaturedImage.Node
		out.Media = &domain.MediaNode{
			SourceURL: m.SourceURL,
			AltText:   m.AltText,
		}
		if m.MediaDetails != nil {
			out.Media.Details = &domain.MediaDetails{
				Width:  m.MediaDetails.Width,
				Height: m.MediaDetails.Height,
			}
		}
	}

	if n.Categories != nil {
		for _, e := range n.Categories.Edges {
			out.CategoryEdges = append(out.CategoryEdges, domain.CategoryEdge{
				Node: e.Node.toDomain(),
			})
		}
	}

	return out
}

func (n categoryNode) toDomain() domain.Category {
	return domain.Category{ID: n.ID, Name: n.Name, Slug: n.Slug}
}
