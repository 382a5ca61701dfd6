package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, created_at, order_id, reviewer_id, reviewee_id, rating, text`

type ReviewRepository struct {
	conn uow.DBTX
}

func NewReviewRepository(conn uow.DBTX) *ReviewRepository {
	return &ReviewRepository{conn: conn}
}

// Create сохраняет отзыв. Второй отзыв того же автора по тому же заказу вернет domain.ErrDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error) {
	row := r.conn.QueryRow(ctx, `INSERT INTO reviews (order_id, reviewer_id, reviewee_id, rating, text)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+reviewColumns,
		args.OrderID, args.ReviewerID, args.RevieweeID, args.Rating, args.Text)
	review, err := scanReview(row)
	if err != nil {
		return nil, convertErr(err, "creating review of user %d for order %d", args.ReviewerID, args.OrderID)
	}
	return review, nil
}

func (r *ReviewRepository) ListByReviewee(
	ctx context.Context,
	revieweeID int64,
	p repoargs.Page,
) ([]domain.Review, error) {
	limit, offset := pageBounds(p)
	rows, err := r.conn.Query(ctx, `SELECT `+reviewColumns+` FROM reviews
		WHERE reviewee_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`, revieweeID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing reviews of user %d", revieweeID)
	}
	reviews, err := collect(rows, scanReview)
	if err != nil {
		return nil, convertErr(err, "scanning reviews of user %d", revieweeID)
	}
	return reviews, nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(&review.ID, &review.CreatedAt, &review.OrderID, &review.ReviewerID, &review.RevieweeID,
		&review.Rating, &review.Text)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &review, nil
}
