package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, title, description, price, status, customer_id, executor_id,
	category_id`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `INSERT INTO orders (title, description, price, status, customer_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+orderColumns,
		args.Title, args.Description, args.Price, domain.OrderStatusOpen, args.CustomerID, args.CategoryID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for customer %d", args.CustomerID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order %d", id)
	}
	return order, nil
}

// FindByIDForUpdate читает заказ с блокировкой строки до конца транзакции.
func (o *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "locking order %d", id)
	}
	return order, nil
}

// UpdateStatus меняет статус заказа только если текущий статус равен args.From. Если заказ уже
// в другом статусе, вернется domain.ErrRecordNotFound.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `UPDATE orders
		SET status = $3, executor_id = COALESCE($4, executor_id), updated_at = now()
		WHERE id = $1 AND status = $2 RETURNING `+orderColumns,
		args.ID, args.From, args.To, args.ExecutorID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "moving order %d from %s to %s", args.ID, args.From, args.To)
	}
	return order, nil
}

// ListOpen возвращает открытые заказы, кроме заказов excludeCustomerID, новые первыми.
func (o *OrderRepository) ListOpen(ctx context.Context, excludeCustomerID int64, p repoargs.Page) ([]domain.Order, error) {
	limit, offset := pageBounds(p)
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE status = $1 AND customer_id <> $2 ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		domain.OrderStatusOpen, excludeCustomerID, limit, offset)
	return o.collect(rows, err, "listing open orders")
}

func (o *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`, customerID)
	return o.collect(rows, err, "listing orders of customer %d", customerID)
}

func (o *OrderRepository) ListByExecutor(ctx context.Context, executorID int64) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE executor_id = $1 ORDER BY created_at DESC, id DESC`, executorID)
	return o.collect(rows, err, "listing orders of executor %d", executorID)
}

// List возвращает все заказы, при непустом status только в этом статусе.
func (o *OrderRepository) List(
	ctx context.Context,
	status domain.OrderStatusType,
	p repoargs.Page,
) ([]domain.Order, error) {
	limit, offset := pageBounds(p)
	rows, err := o.conn.Query(ctx, `SELECT `+orderColumns+` FROM orders
		WHERE ($1 = '' OR status = $1) ORDER BY id DESC LIMIT $2 OFFSET $3`,
		string(status), limit, offset)
	return o.collect(rows, err, "listing orders")
}

func (o *OrderRepository) collect(rows pgx.Rows, queryErr error, format string, args ...any) ([]domain.Order, error) {
	if queryErr != nil {
		return nil, convertErr(queryErr, format, args...)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, convertErr(err, format, args...)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Title,
		&order.Description,
		&order.Price,
		&order.Status,
		&order.CustomerID,
		&order.ExecutorID,
		&order.CategoryID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
