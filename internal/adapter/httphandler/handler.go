package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/internal/core/port"
)

// GET v1/products (200 OK)
// GET v1/products/{slug} (200 OK, 404 Not found, 502 Bad gateway)
// GET v1/categories (200 OK)
// GET v1/discovery?category=slug&q=text (200 OK, empty set is a normal result)

type CatalogHandler struct {
	lister     port.ProductsLister
	provider   port.ProductProvider
	categories port.CategoriesLister
	discoverer port.CatalogDiscoverer
}

func RegisterCatalog(
	mux *http.ServeMux,
	lister port.ProductsLister,
	provider port.ProductProvider,
	categories port.CategoriesLister,
	discoverer port.CatalogDiscoverer,
) {
	h := CatalogHandler{lister, provider, categories, discoverer}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/discovery", h.GetDiscovery)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"

	ps := h.lister.ListProducts(r.Context())
	writeJSON(w, op, toProducts(ps))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	slug := r.PathValue("slug")

	p, item, err := h.provider.ProductBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrMissingMedia):
			http.Error(w, "product media is missing", http.StatusBadGateway)
			log.Error("detail page cannot render", "slug", slug, "err", err)
		default:
			http.Error(w, "failed to load product", http.StatusInternalServerError)
			log.Error("failed to load product", "slug", slug, "err", err)
		}
		return
	}

	detail := ProductDetail{
		Product:  toProduct(p),
		Content:  p.Content,
		Checkout: toCheckoutItem(item),
	}
	writeJSON(w, op, detail)
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"

	cs := h.categories.ListCategories(r.Context())
	out := make([]Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategory(c))
	}
	writeJSON(w, op, out)
}

func (h CatalogHandler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetDiscovery"

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	ps := h.discoverer.Discover(r.Context(), category, query)
	writeJSON(w, op, DiscoveryResult{
		Category: category,
		Query:    query,
		Products: toProducts(ps),
	})
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
