package payment

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
)

type Client interface {
	IncomingTransfers(ctx context.Context, address string) ([]domain.Transfer, error)
}

type Servicer interface {
	WalletsForPolling(ctx context.Context, afterID int64, limit uint) ([]domain.User, error)
	CreditDeposit(ctx context.Context, args service.CreditDepositArgs) (bool, error)
}
