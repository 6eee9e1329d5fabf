package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/internal/core/port"
	"github.com/hyperbros/cardstore/pkg/htmltext"
)

var _ port.ProductsLister = (*Service)(nil)
var _ port.ProductProvider = (*Service)(nil)
var _ port.CategoriesLister = (*Service)(nil)
var _ port.CatalogDiscoverer = (*Service)(nil)

const descriptionLimit = 160

// CheckoutConfig shapes the attributes handed to the checkout widget.
type CheckoutConfig struct {
	ItemURL     string
	MaxQuantity int
}

// Service owns the catalog for one process lifetime: it loads the
// product and category lists once, builds the discovery engine over
// them and serves the read operations the rendering layer consumes.
type Service struct {
	source   port.CatalogSource
	store    port.CatalogStore // optional snapshot fallback
	checkout CheckoutConfig
	weights  SearchWeights

	products   []domain.Product
	categories []domain.Category
	bySlug     map[string]domain.Product
	disc       *Discovery
}

func New(
	source port.CatalogSource,
	store port.CatalogStore,
	checkout CheckoutConfig,
	weights SearchWeights,
) *Service {
	if checkout.ItemURL == "" {
		checkout.ItemURL = "/"
	}
	return &Service{
		source:   source,
		store:    store,
		checkout: checkout,
		weights:  weights,
	}
}

// Load fetches and normalizes the catalog, builds the category index
// and the discovery engine. On fetch failure it falls back to the
// last stored snapshot, a successful fetch refreshes that snapshot.
// Must complete before the service starts answering.
func (s *Service) Load(ctx context.Context) error {
	const op = "Service.Load"
	log := slog.With("op", op)

	products, categories, err := s.fetchCatalog(ctx)
	if err != nil {
		products, categories, err = s.readSnapshot(ctx, err)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Warn("content API unreachable, serving catalog snapshot")
	} else {
		s.storeSnapshot(ctx, products, categories)
	}

	s.install(products, categories)
	log.Info("catalog is ready",
		"nProducts", len(products), "nCategories", len(categories))
	return nil
}

func (s *Service) fetchCatalog(
	ctx context.Context,
) ([]domain.Product, []domain.Category, error) {
	nodes, err := s.source.FetchCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	rawCats, err := s.source.FetchCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	products := NormalizeCatalog(nodes)

	categories, dupErr := NewCategoryIndex(rawCats)
	if dupErr != nil {
		// Integrity issue, logged and not shown to the visitor.
		slog.Error("category index integrity", "err", dupErr)
	}
	return products, categories, nil
}

func (s *Service) readSnapshot(
	ctx context.Context, fetchErr error,
) ([]domain.Product, []domain.Category, error) {
	if s.store == nil {
		return nil, nil, fetchErr
	}
	products, categories, err := s.store.ReadCatalog(ctx)
	if err != nil {
		return nil, nil, errors.Join(fetchErr, err)
	}
	return products, categories, nil
}

func (s *Service) storeSnapshot(
	ctx context.Context, ps []domain.Product, cs []domain.Category,
) {
	if s.store == nil {
		return
	}
	if err := s.store.StoreCatalog(ctx, ps, cs); err != nil {
		slog.Warn("failed to store catalog snapshot", "err", err)
	}
}

func (s *Service) install(ps []domain.Product, cs []domain.Category) {
	s.products = ps
	s.categories = cs
	s.bySlug = make(map[string]domain.Product, len(ps))
	for _, p := range ps {
		s.bySlug[p.Slug] = p
	}
	s.disc = NewDiscovery(ps, s.weights)
}

// ListProducts returns the full catalog in catalog order. Products
// without an image stay listed, the listing view omits the image.
func (s *Service) ListProducts(context.Context) []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

func (s *Service) ListCategories(context.Context) []domain.Category {
	return append([]domain.Category(nil), s.categories...)
}

// ProductBySlug serves the detail view: the product with its rich
// content plus the flat checkout attributes. Detail pages require an
// image, a record without one fails with ErrMissingMedia. When the
// content API is unreachable the loaded catalog copy answers instead,
// without content.
func (s *Service) ProductBySlug(
	ctx context.Context, slug string,
) (domain.Product, domain.CheckoutItem, error) {
	const op = "Service.ProductBySlug"

	var p domain.Product
	node, err := s.source.FetchProduct(ctx, slug)
	switch {
	case err == nil:
		p, err = NormalizeProduct(node)
		if err != nil {
			return domain.Product{}, domain.CheckoutItem{},
				fmt.Errorf("%s: %w", op, err)
		}
	case errors.Is(err, domain.ErrProductNotFound):
		return domain.Product{}, domain.CheckoutItem{},
			fmt.Errorf("%s: %q: %w", op, slug, domain.ErrProductNotFound)
	default:
		slog.Warn("detail fetch failed, using loaded catalog",
			"op", op, "slug", slug, "err", err)
		var ok bool
		p, ok = s.bySlug[slug]
		if !ok {
			return domain.Product{}, domain.CheckoutItem{},
				fmt.Errorf("%s: %q: %w", op, slug, domain.ErrProductNotFound)
		}
	}

	if err := RequireImage(p); err != nil {
		return domain.Product{}, domain.CheckoutItem{},
			fmt.Errorf("%s: %w", op, err)
	}

	return p, s.checkoutItem(p), nil
}

func (s *Service) checkoutItem(p domain.Product) domain.CheckoutItem {
	desc := htmltext.Excerpt(p.Content, descriptionLimit)
	if desc == "" {
		desc = p.Title + " trading card."
	}
	return domain.CheckoutItem{
		ID:          p.ID,
		Name:        p.Title,
		Description: desc,
		Price:       p.Price,
		URL:         s.checkout.ItemURL,
		ImageURL:    p.Image.URL,
		MaxQuantity: s.checkout.MaxQuantity,
	}
}

// Discover computes the visible set for one request. The filter state
// is request-scoped, nothing persists between calls.
func (s *Service) Discover(
	_ context.Context, categorySlug, query string,
) []domain.Product {
	var fs domain.FilterState
	if categorySlug != "" {
		fs.SelectCategory(categorySlug)
	}
	fs.SetQuery(query)
	return s.disc.VisibleProducts(fs)
}
