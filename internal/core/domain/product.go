package domain

type (
	Product struct {
		ID         string
		Title      string
		Slug       string
		Price      float64
		Image      *ProductImage
		Content    string
		Categories []Category
	}

	ProductImage struct {
		URL    string
		Width  int
		Height int
		Alt    string
	}

	Category struct {
		ID   string
		Name string
		Slug string
	}
)

// InCategory reports whether the product carries a category with the
// given slug.
func (p Product) InCategory(slug string) bool {
	for _, c := range p.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// CategoryNames returns the display names of the product categories
// in catalog order.
func (p Product) CategoryNames() []string {
	if len(p.Categories) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return names
}

// A CheckoutItem is the flat attribute set handed to the checkout
// widget for one product. The widget is opaque, it only consumes
// these fields.
type CheckoutItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	URL         string
	ImageURL    string
	MaxQuantity int // 0 means unconstrained
}
