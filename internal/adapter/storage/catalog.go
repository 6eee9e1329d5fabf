package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hyperbros/cardstore/internal/core/domain"
	"github.com/hyperbros/cardstore/internal/core/port"
)

var _ port.CatalogStore = (*CatalogRepository)(nil)

// CatalogRepository persists the last normalized catalog so a page
// render can still happen while the content API is down. A store
// replaces the whole snapshot, catalog order is kept via a position
// column.
type CatalogRepository struct {
	sqldb sqldb
}

func NewCatalogRepository(sqldb sqldb) CatalogRepository {
	return CatalogRepository{sqldb}
}

func (r CatalogRepository) StoreCatalog(
	ctx context.Context, ps []domain.Product, cs []domain.Category,
) (storeErr error) {
	const op = "CatalogRepository.StoreCatalog"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	for _, table := range []string{"products", "categories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%s: failed to clear %s: %w", op, table, err)
		}
	}

	if err := r.insertProducts(ctx, tx, ps); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.insertCategories(ctx, tx, cs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r CatalogRepository) insertProducts(
	ctx context.Context, tx stmtPreparer, ps []domain.Product,
) error {
	const op = "CatalogRepository.insertProducts"
	log := slog.With("op", op)

	query := `
		INSERT INTO products (
			id, slug, title, price, image, categories, content, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i, p := range ps {
		var imgB []byte
		if p.Image != nil {
			imgB, _ = json.Marshal(p.Image)
		}
		catB, _ := json.Marshal(p.Categories)

		_, err := stmt.ExecContext(ctx,
			p.ID, p.Slug, p.Title, p.Price,
			nullableJSON(imgB), string(catB), p.Content, i,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}
	return nil
}

func (r CatalogRepository) insertCategories(
	ctx context.Context, tx stmtPreparer, cs []domain.Category,
) error {
	const op = "CatalogRepository.insertCategories"
	log := slog.With("op", op)

	query := `
		INSERT INTO categories (id, name, slug, position)
		VALUES ($1, $2, $3, $4);
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for i, c := range cs {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, c.Slug, i); err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}
	return nil
}

func (r CatalogRepository) ReadCatalog(
	ctx context.Context,
) ([]domain.Product, []domain.Category, error) {
	const op = "CatalogRepository.ReadCatalog"

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := r.readProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(ps) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrEmptySnapshot)
	}

	cs, err := r.readCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, cs, nil
}

func (r CatalogRepository) readProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	query := `
		SELECT id, slug, title, price, image, categories, content
		FROM products ORDER BY position ASC;
	`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		var (
			p    domain.Product
			imgS *string
			catS string
		)
		err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Price, &imgS, &catS, &p.Content,
		)
		if err != nil {
			return nil, err
		}

		if imgS != nil {
			p.Image = new(domain.ProductImage)
			if err := json.Unmarshal([]byte(*imgS), p.Image); err != nil {
				return nil, err
			}
		}
		if err := json.Unmarshal([]byte(catS), &p.Categories); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, rows.Err()
}

func (r CatalogRepository) readCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug
		FROM categories ORDER BY position ASC;
	`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
