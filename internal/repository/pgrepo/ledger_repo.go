package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, created_at, user_id, amount, kind, order_id`

// LedgerRepository журнал финансовых операций (financial_transactions). Записи только добавляются.
type LedgerRepository struct {
	conn uow.DBTX
}

func NewLedgerRepository(conn uow.DBTX) *LedgerRepository {
	return &LedgerRepository{conn: conn}
}

func (l *LedgerRepository) Create(ctx context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
	row := l.conn.QueryRow(ctx, `INSERT INTO financial_transactions (user_id, amount, kind, order_id)
		VALUES ($1, $2, $3, $4) RETURNING `+ledgerColumns, args.UserID, args.Amount, args.Kind, args.OrderID)
	entry, err := scanLedgerEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s ledger entry for user %d", args.Kind, args.UserID)
	}
	return entry, nil
}

// ListByUser возвращает записи пользователя, новые первыми.
func (l *LedgerRepository) ListByUser(ctx context.Context, userID int64, p repoargs.Page) ([]domain.LedgerEntry, error) {
	limit, offset := pageBounds(p)
	rows, err := l.conn.Query(ctx, `SELECT `+ledgerColumns+` FROM financial_transactions
		WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing ledger of user %d", userID)
	}
	entries, err := collect(rows, scanLedgerEntry)
	if err != nil {
		return nil, convertErr(err, "scanning ledger of user %d", userID)
	}
	return entries, nil
}

func (l *LedgerRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.LedgerEntry, error) {
	rows, err := l.conn.Query(ctx, `SELECT `+ledgerColumns+` FROM financial_transactions
		WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, convertErr(err, "listing ledger of order %d", orderID)
	}
	entries, err := collect(rows, scanLedgerEntry)
	if err != nil {
		return nil, convertErr(err, "scanning ledger of order %d", orderID)
	}
	return entries, nil
}

// SumByUser возвращает сумму всех записей пользователя. Для согласованного журнала равна балансу.
func (l *LedgerRepository) SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := l.conn.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM financial_transactions
		WHERE user_id = $1`, userID).Scan(&sum)
	if err != nil {
		return decimal.Zero, convertErr(err, "summing ledger of user %d", userID)
	}
	return sum, nil
}

func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UserID, &entry.Amount, &entry.Kind, &entry.OrderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &entry, nil
}
