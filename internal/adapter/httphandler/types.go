package httphandler

import "github.com/hyperbros/cardstore/internal/core/domain"

type (
	Product struct {
		ID         string        `json:"id"`
		Title      string        `json:"title"`
		Slug       string        `json:"slug"`
		Price      float64       `json:"price"`
		Image      *ProductImage `json:"image,omitempty"`
		Categories []Category    `json:"categories,omitempty"`
	}

	ProductImage struct {
		URL    string `json:"url"`
		Width  int    `json:"width,omitempty"`
		Height int    `json:"height,omitempty"`
		Alt    string `json:"alt,omitempty"`
	}

	Category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	// ProductDetail is the detail-view payload: the product with its
	// rich content plus the flat attributes the checkout widget
	// consumes.
	ProductDetail struct {
		Product
		Content  string       `json:"content,omitempty"`
		Checkout CheckoutItem `json:"checkout"`
	}

	CheckoutItem struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		URL         string  `json:"url"`
		ImageURL    string  `json:"image_url"`
		MaxQuantity int     `json:"max_quantity,omitempty"`
	}

	DiscoveryResult struct {
		Category string    `json:"category,omitempty"`
		Query    string    `json:"query,omitempty"`
		Products []Product `json:"products"`
	}
)

func toProduct(p domain.Product) Product {
	out := Product{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
		Price: p.Price,
	}

	if p.Image != nil {
		out.Image = &ProductImage{
			URL:    p.Image.URL,
			Width:  p.Image.Width,
			Height: p.Image.Height,
			Alt:    p.Image.Alt,
		}
	}

	for _, c := range p.Categories {
		out.Categories = append(out.Categories, toCategory(c))
	}
	return out
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toCategory(c domain.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCheckoutItem(it domain.CheckoutItem) CheckoutItem {
	return CheckoutItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		URL:         it.URL,
		ImageURL:    it.ImageURL,
		MaxQuantity: it.MaxQuantity,
	}
}
