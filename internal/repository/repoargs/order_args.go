package repoargs

import (
	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	Title       string
	Description string
	Price       decimal.Decimal
	CustomerID  int64
	CategoryID  int64
}

// UpdateOrderStatus переводит заказ из статуса From в статус To. Если ExecutorID не nil, исполнитель
// назначается в том же запросе.
type UpdateOrderStatus struct {
	ID         int64
	From       domain.OrderStatusType
	To         domain.OrderStatusType
	ExecutorID *int64
}

type CreateOffer struct {
	OrderID    int64
	ExecutorID int64
	Message    string
}
