package repoargs

import (
	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateLedgerEntry struct {
	UserID  int64
	Amount  decimal.Decimal
	Kind    domain.LedgerKind
	OrderID *int64
}

type CreateDeposit struct {
	TxID   string
	UserID int64
	Amount decimal.Decimal
}
