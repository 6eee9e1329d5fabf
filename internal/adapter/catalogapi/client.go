package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/internal/core/port"
	"github.com/hyperbros/cardstore/pkg/retry"
)

var _ port.CatalogSource = (*Client)(nil)

// errTransient marks failures worth retrying: network errors and
// 5xx responses. GraphQL-level errors are not transient.
var errTransient = errors.New("transient content API failure")

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	retryBaseDelay     = 200 * time.Millisecond
)

type Config struct {
	URL         string
	Timeout     time.Duration
	MaxAttempts int
}

// Client reads the product/category graph from the content API over
// plain HTTP POST. Retries with backoff live here, callers only see
// data or an error.
type Client struct {
	httpc    *http.Client
	url      string
	retryCfg retry.RetryConfig
}

func New(cfg Config) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	return Client{
		httpc: &http.Client{Timeout: cfg.Timeout},
		url:   cfg.URL,
		retryCfg: retry.RetryConfig{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     retry.ExponentialBackoff(retryBaseDelay),
			ShouldRetry: func(err error) bool {
				return errors.Is(err, errTransient)
			},
		},
	}
}

func (c Client) FetchCatalog(ctx context.Context) ([]domain.CatalogNode, error) {
	const op = "Client.FetchCatalog"

	data, err := query[productsData](ctx, c, allProductsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nodes := make([]domain.CatalogNode, 0, len(data.Products.Edges))
	for _, e := range data.Products.Edges {
		nodes = append(nodes, e.Node.toDomain())
	}
	return nodes, nil
}

func (c Client) FetchProduct(
	ctx context.Context, slug string,
) (domain.CatalogNode, error) {
	const op = "Client.FetchProduct"

	vars := map[string]any{"slug": slug}
	data, err := query[productData](ctx, c, productBySlugQuery, vars)
	if err != nil {
		return domain.CatalogNode{}, fmt.Errorf("%s: %w", op, err)
	}
	if data.Product == nil {
		return domain.CatalogNode{},
			fmt.Errorf("%s: %q: %w", op, slug, domain.ErrProductNotFound)
	}
	return data.Product.toDomain(), nil
}

func (c Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.FetchCategories"

	data, err := query[categoriesData](ctx, c, allCategoriesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cats := make([]domain.Category, 0, len(data.ProductCategories.Edges))
	for _, e := range data.ProductCategories.Edges {
		cats = append(cats, e.Node.toDomain())
	}
	return cats, nil
}

func query[T any](
	ctx context.Context, c Client, doc string, vars map[string]any,
) (T, error) {
	return retry.DoWithResult(ctx, c.retryCfg, func() (T, error) {
		return post[T](ctx, c, doc, vars)
	})
}

func post[T any](
	ctx context.Context, c Client, doc string, vars map[string]any,
) (T, error) {
	var zero T

	body, err := json.Marshal(gqlRequest{Query: doc, Variables: vars})
	if err != nil {
		return zero, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.url, bytes.NewReader(body),
	)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", errTransient, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return zero, fmt.Errorf("%w: status %d", errTransient, res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var env envelope[T]
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Errors) != 0 {
		return zero, fmt.Errorf("graphql: %s", env.Errors[0].Message)
	}
	return env.Data, nil
}
