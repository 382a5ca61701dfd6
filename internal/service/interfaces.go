package service

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Notifier доставляет уведомления пользователям. Ошибки доставки не влияют на состояние заказов.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// PaymentProvider внешний платежный сервис.
type PaymentProvider interface {
	AllocateAddress(ctx context.Context, userID int64) (string, error)
	CreatePayout(ctx context.Context, address string, amount decimal.Decimal) (*domain.PayoutResult, error)
}

// RateLimiter дневные лимиты действий пользователей.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64) (bool, error)
}

// InteractionStore хранит незавершенные многошаговые действия пользователей. Get возвращает
// domain.ErrRecordNotFound, если действия нет.
type InteractionStore interface {
	Get(ctx context.Context, userID int64) (*domain.Interaction, error)
	Save(ctx context.Context, userID int64, interaction domain.Interaction) error
	Delete(ctx context.Context, userID int64) error
}
