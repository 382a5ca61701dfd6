package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service"
)

type UserServicer interface {
	Start(ctx context.Context, args service.StartArgs) (*domain.User, string, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
	AdminLogin(ctx context.Context, args service.AdminLoginArgs) (string, error)
	Block(ctx context.Context, adminID, userID int64) (*domain.User, error)
	Unblock(ctx context.Context, adminID, userID int64) (*domain.User, error)
	PurchaseVIP(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context, adminID int64, p repoargs.Page) ([]domain.User, error)
}

type OrderServicer interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Get(ctx context.Context, actorID, orderID int64) (*domain.Order, error)
	Feed(ctx context.Context, userID int64, p repoargs.Page) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListByExecutor(ctx context.Context, executorID int64) ([]domain.Order, error)
	Offers(ctx context.Context, actorID, orderID int64) ([]domain.Offer, error)
	SubmitOffer(ctx context.Context, args service.SubmitOfferArgs) (*domain.Offer, error)
	SelectOffer(ctx context.Context, customerID, offerID int64) (*domain.Order, error)
	SubmitWork(ctx context.Context, executorID, orderID int64) (*domain.Order, error)
	AcceptWork(ctx context.Context, customerID, orderID int64) (*service.Payout, error)
	OpenDispute(ctx context.Context, customerID, orderID int64) (*domain.Order, error)
	ResolveDispute(
		ctx context.Context,
		adminID, orderID int64,
		winner domain.DisputeWinner,
	) (*domain.Order, error)
	ListAll(
		ctx context.Context,
		adminID int64,
		status domain.OrderStatusType,
		p repoargs.Page,
	) ([]domain.Order, error)
}

type LedgerServicer interface {
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	History(ctx context.Context, userID int64, p repoargs.Page) ([]domain.LedgerEntry, error)
	AdminCredit(ctx context.Context, adminID, userID int64, amount decimal.Decimal) (*domain.User, error)
	AdminDebit(ctx context.Context, adminID, userID int64, amount decimal.Decimal) (*domain.User, error)
	Reconcile(ctx context.Context, adminID, userID int64) (*service.Reconciliation, error)
}

type SettingsServicer interface {
	CommissionRate(ctx context.Context) (*service.CommissionRate, error)
	SetCommissionRate(ctx context.Context, adminID int64, percent decimal.Decimal) (*service.CommissionRate, error)
}

type ReviewServicer interface {
	Leave(ctx context.Context, args service.LeaveReviewArgs) (*domain.Review, error)
	ListFor(ctx context.Context, userID int64, p repoargs.Page) ([]domain.Review, error)
}

type ChatServicer interface {
	Send(ctx context.Context, args service.SendMessageArgs) (*domain.ChatMessage, error)
	Log(ctx context.Context, actorID, orderID int64) ([]domain.ChatMessage, error)
}

type WalletServicer interface {
	DepositAddress(ctx context.Context, userID int64) (string, error)
	Withdraw(ctx context.Context, args service.WithdrawArgs) (*service.Withdrawal, error)
}

type InteractionServicer interface {
	Current(ctx context.Context, userID int64) (*domain.Interaction, error)
	Begin(
		ctx context.Context,
		userID int64,
		kind domain.InteractionKind,
		orderID int64,
	) (*service.InteractionReply, error)
	Input(ctx context.Context, userID int64, text string) (*service.InteractionReply, error)
	Cancel(ctx context.Context, userID int64) error
}
