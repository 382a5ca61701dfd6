package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct {
	conn uow.DBTX
}

func NewCategoryRepository(conn uow.DBTX) *CategoryRepository {
	return &CategoryRepository{conn: conn}
}

func (c *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.conn.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing categories")
	}
	categories, err := collect(rows, scanCategory)
	if err != nil {
		return nil, convertErr(err, "scanning categories")
	}
	return categories, nil
}

func (c *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := scanCategory(c.conn.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding category %d", id)
	}
	return category, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	if err := row.Scan(&category.ID, &category.Name); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &category, nil
}
