package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, created_at, order_id, executor_id, message`

type OfferRepository struct {
	conn uow.DBTX
}

func NewOfferRepository(conn uow.DBTX) *OfferRepository {
	return &OfferRepository{conn: conn}
}

// Create сохраняет отклик. Повторный отклик того же исполнителя на тот же заказ вернет domain.ErrDuplicateKey.
func (o *OfferRepository) Create(ctx context.Context, args repoargs.CreateOffer) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx, `INSERT INTO offers (order_id, executor_id, message)
		VALUES ($1, $2, $3) RETURNING `+offerColumns, args.OrderID, args.ExecutorID, args.Message)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "creating offer of executor %d for order %d", args.ExecutorID, args.OrderID)
	}
	return offer, nil
}

func (o *OfferRepository) FindByID(ctx context.Context, id int64) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "finding offer %d", id)
	}
	return offer, nil
}

// FindByOrderAndExecutor возвращает отклик исполнителя executorID на заказ orderID или domain.ErrRecordNotFound.
func (o *OfferRepository) FindByOrderAndExecutor(ctx context.Context, orderID, executorID int64) (*domain.Offer, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE order_id = $1 AND executor_id = $2`,
		orderID, executorID)
	offer, err := scanOffer(row)
	if err != nil {
		return nil, convertErr(err, "finding offer of executor %d for order %d", executorID, orderID)
	}
	return offer, nil
}

func (o *OfferRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Offer, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+offerColumns+` FROM offers WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, convertErr(err, "listing offers of order %d", orderID)
	}
	offers, err := collect(rows, scanOffer)
	if err != nil {
		return nil, convertErr(err, "scanning offers of order %d", orderID)
	}
	return offers, nil
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var offer domain.Offer
	if err := row.Scan(&offer.ID, &offer.CreatedAt, &offer.OrderID, &offer.ExecutorID, &offer.Message); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &offer, nil
}
