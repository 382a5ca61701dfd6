package service

import (
	"context"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	GetOrCreate(ctx context.Context, args repoargs.CreateUser) (*domain.User, bool, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	AddBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.User, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error)
	SetWalletAddress(ctx context.Context, id int64, address string) (*domain.User, error)
	SetVIPUntil(ctx context.Context, id int64, until time.Time) (*domain.User, error)
	UpdateRating(ctx context.Context, id int64, rating decimal.Decimal, reviewsCount int) error
	ListWithWallets(ctx context.Context, afterID int64, limit uint) ([]domain.User, error)
	List(ctx context.Context, p repoargs.Page) ([]domain.User, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
	ListOpen(ctx context.Context, excludeCustomerID int64, p repoargs.Page) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListByExecutor(ctx context.Context, executorID int64) ([]domain.Order, error)
	List(ctx context.Context, status domain.OrderStatusType, p repoargs.Page) ([]domain.Order, error)
}

type OfferRepository interface {
	Create(ctx context.Context, args repoargs.CreateOffer) (*domain.Offer, error)
	FindByID(ctx context.Context, id int64) (*domain.Offer, error)
	FindByOrderAndExecutor(ctx context.Context, orderID, executorID int64) (*domain.Offer, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Offer, error)
}

type LedgerRepository interface {
	Create(ctx context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID int64, p repoargs.Page) ([]domain.LedgerEntry, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.LedgerEntry, error)
	SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key, value string) (*domain.Setting, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, args repoargs.CreateReview) (*domain.Review, error)
	ListByReviewee(ctx context.Context, revieweeID int64, p repoargs.Page) ([]domain.Review, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, args repoargs.CreateChatMessage) (*domain.ChatMessage, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.ChatMessage, error)
}

type DepositRepository interface {
	MarkProcessed(ctx context.Context, args repoargs.CreateDeposit) (bool, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}
