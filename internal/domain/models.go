package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User пользователь бота. ID совпадает с идентификатором пользователя на платформе мессенджера.
type User struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Username      string
	Balance       decimal.Decimal
	WalletAddress string
	Blocked       bool
	Rating        decimal.Decimal
	ReviewsCount  int
	VIPUntil      *time.Time
}

// IsVIP возвращает true, если VIP статус пользователя действует на момент now.
func (u *User) IsVIP(now time.Time) bool {
	return u.VIPUntil != nil && u.VIPUntil.After(now)
}

type Order struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	Price       decimal.Decimal
	Status      OrderStatusType
	CustomerID  int64
	ExecutorID  *int64
	CategoryID  int64
}

// IsParticipant проверяет, является ли userID заказчиком или исполнителем заказа.
func (o *Order) IsParticipant(userID int64) bool {
	return o.CustomerID == userID || o.IsExecutor(userID)
}

func (o *Order) IsExecutor(userID int64) bool {
	return o.ExecutorID != nil && *o.ExecutorID == userID
}

// Counterpart возвращает вторую сторону заказа относительно userID. Если исполнитель не назначен
// или userID не участник заказа, вернется false.
func (o *Order) Counterpart(userID int64) (int64, bool) {
	switch {
	case o.ExecutorID == nil:
		return 0, false
	case userID == o.CustomerID:
		return *o.ExecutorID, true
	case userID == *o.ExecutorID:
		return o.CustomerID, true
	default:
		return 0, false
	}
}

type Offer struct {
	ID         int64
	CreatedAt  time.Time
	OrderID    int64
	ExecutorID int64
	Message    string
}

// LedgerEntry неизменяемая запись финансового журнала. Amount со знаком: списания отрицательные.
type LedgerEntry struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Amount    decimal.Decimal
	Kind      LedgerKind
	OrderID   *int64
}

type ChatMessage struct {
	ID            int64
	CreatedAt     time.Time
	OrderID       int64
	SenderID      int64
	ContentKind   ContentKind
	Text          string
	AttachmentRef string
}

type Review struct {
	ID         int64
	CreatedAt  time.Time
	OrderID    int64
	ReviewerID int64
	RevieweeID int64
	Rating     int
	Text       string
}

type Setting struct {
	Key       string
	Value     string
	Version   int64
	UpdatedAt time.Time
}

type Category struct {
	ID   int64
	Name string
}

// Deposit обработанная входящая транзакция. TxID уникален.
type Deposit struct {
	TxID      string
	CreatedAt time.Time
	UserID    int64
	Amount    decimal.Decimal
}

// Notification сообщение для доставки пользователю через канал уведомлений.
type Notification struct {
	RecipientID   int64
	Text          string
	AttachmentRef string
}

// PayoutResult результат выплаты у платежного провайдера. При Success == false Message содержит причину отказа.
type PayoutResult struct {
	Success   bool
	Reference string
	Message   string
}

// Transfer входящий перевод на адрес пользователя.
type Transfer struct {
	TxID   string
	From   string
	Amount decimal.Decimal
}
