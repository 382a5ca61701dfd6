package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
)

// DepositRepository хранит txid уже зачисленных входящих переводов.
type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

// MarkProcessed фиксирует txid как обработанный. Возвращает false, если txid уже был обработан ранее.
func (d *DepositRepository) MarkProcessed(ctx context.Context, args repoargs.CreateDeposit) (bool, error) {
	tag, err := d.conn.Exec(ctx, `INSERT INTO processed_deposits (txid, user_id, amount) VALUES ($1, $2, $3)
		ON CONFLICT (txid) DO NOTHING`, args.TxID, args.UserID, args.Amount)
	if err != nil {
		return false, convertErr(err, "marking deposit `%s` as processed", args.TxID)
	}
	return tag.RowsAffected() == 1, nil
}
