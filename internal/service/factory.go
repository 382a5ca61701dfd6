package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	Auth         *Authorizer
	Users        *UserService
	Orders       *OrderService
	Ledger       *LedgerService
	Settings     *SettingsService
	Reviews      *ReviewService
	Chat         *ChatService
	Wallet       *WalletService
	Interactions *InteractionService
}

// Dependencies внешние зависимости сервисного слоя.
type Dependencies struct {
	UOW            uow.UOW
	Logger         *logrus.Logger
	Notifier       Notifier
	Payments       PaymentProvider
	Limiter        RateLimiter
	Interactions   InteractionStore
	PasswordHasher PasswordHasher
}

// Options бизнес настройки сервисов.
type Options struct {
	AdminIDs                 []int64
	AdminPasswordHash        string
	JWTSecret                []byte
	DefaultCommissionPercent decimal.Decimal
	VIPPrice                 decimal.Decimal
	VIPDuration              time.Duration
	Limits                   DailyLimits
}

func Factory(deps Dependencies, opts Options) (*AppServices, error) {
	auth := NewAuthorizer(opts.AdminIDs)

	settings, err := NewSettingsService(deps.UOW, auth, opts.DefaultCommissionPercent)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	users, err := NewUserService(UserServiceArgs{
		UOW:               deps.UOW,
		Auth:              auth,
		PasswordHasher:    deps.PasswordHasher,
		AdminPasswordHash: opts.AdminPasswordHash,
		JWTSecret:         opts.JWTSecret,
		VIP:               VIPOptions{Price: opts.VIPPrice, Duration: opts.VIPDuration},
		Notifier:          deps.Notifier,
		Logger:            deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	orders, err := NewOrderService(OrderServiceArgs{
		UOW:      deps.UOW,
		Auth:     auth,
		Settings: settings,
		Notifier: deps.Notifier,
		Limiter:  deps.Limiter,
		Limits:   opts.Limits,
		Logger:   deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	ledger, err := NewLedgerService(deps.UOW, auth, deps.Notifier, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	reviews, err := NewReviewService(deps.UOW, deps.Notifier, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	chat, err := NewChatService(deps.UOW, auth, deps.Notifier, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	wallet, err := NewWalletService(deps.UOW, deps.Payments, deps.Notifier, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		Auth:         auth,
		Users:        users,
		Orders:       orders,
		Ledger:       ledger,
		Settings:     settings,
		Reviews:      reviews,
		Chat:         chat,
		Wallet:       wallet,
		Interactions: NewInteractionService(deps.Interactions, orders, reviews, wallet, deps.Logger),
	}, nil
}
