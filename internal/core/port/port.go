package port

import (
	"context"

	"github.com/hyperbros/cardstore/internal/core/domain"
)

// CatalogSource is the external content API the catalog is fetched
// from. Retries and timeouts live behind this boundary, the core only
// sees data or an error.
type CatalogSource interface {
	FetchCatalog(context.Context) ([]domain.CatalogNode, error)
	FetchProduct(ctx context.Context, slug string) (domain.CatalogNode, error)
	FetchCategories(context.Context) ([]domain.Category, error)
}

// CatalogStore keeps the last normalized catalog snapshot so pages
// can render while the content API is unreachable.
type CatalogStore interface {
	StoreCatalog(context.Context, []domain.Product, []domain.Category) error
	ReadCatalog(context.Context) ([]domain.Product, []domain.Category, error)
}

type ProductsLister interface {
	ListProducts(context.Context) []domain.Product
}

type ProductProvider interface {
	ProductBySlug(ctx context.Context, slug string) (domain.Product, domain.CheckoutItem, error)
}

type CategoriesLister interface {
	ListCategories(context.Context) []domain.Category
}

type CatalogDiscoverer interface {
	Discover(ctx context.Context, categorySlug, query string) []domain.Product
}
