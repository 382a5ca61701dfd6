package pgrepo

import (
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/jackc/pgx/v5"
)

const defaultPageLimit = 50

// pageBounds возвращает LIMIT и OFFSET для запроса.
func pageBounds(p repoargs.Page) (int64, int64) {
	limit := int64(p.Limit)
	if limit == 0 {
		limit = defaultPageLimit
	}
	return limit, int64(p.Offset)
}

// collect сканирует все строки rows функцией scan.
func collect[T any](rows pgx.Rows, scan func(row pgx.Row) (*T, error)) ([]T, error) {
	defer rows.Close()
	var res []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}
