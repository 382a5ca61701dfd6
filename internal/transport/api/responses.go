package api

import (
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
)

// Денежные суммы отдаются строкой с двумя знаками после запятой.

type UserResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Balance       string     `json:"balance"`
	WalletAddress string     `json:"wallet_address,omitempty"`
	Blocked       bool       `json:"blocked"`
	Rating        string     `json:"rating"`
	ReviewsCount  int        `json:"reviews_count"`
	VIPUntil      *time.Time `json:"vip_until,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Balance:       u.Balance.StringFixed(domain.MoneyPlaces),
		WalletAddress: u.WalletAddress,
		Blocked:       u.Blocked,
		Rating:        u.Rating.StringFixed(domain.RatingPlaces),
		ReviewsCount:  u.ReviewsCount,
		VIPUntil:      u.VIPUntil,
		CreatedAt:     u.CreatedAt,
	}
}

type OrderResponse struct {
	ID          int64                  `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Price       string                 `json:"price"`
	Status      domain.OrderStatusType `json:"status"`
	CustomerID  int64                  `json:"customer_id"`
	ExecutorID  *int64                 `json:"executor_id,omitempty"`
	CategoryID  int64                  `json:"category_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Price:       o.Price.StringFixed(domain.MoneyPlaces),
		Status:      o.Status,
		CustomerID:  o.CustomerID,
		ExecutorID:  o.ExecutorID,
		CategoryID:  o.CategoryID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOrdersResponse(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	return response
}

type OfferResponse struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	ExecutorID int64     `json:"executor_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func newOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:         o.ID,
		OrderID:    o.OrderID,
		ExecutorID: o.ExecutorID,
		Message:    o.Message,
		CreatedAt:  o.CreatedAt,
	}
}

type PayoutResponse struct {
	Order             OrderResponse `json:"order"`
	Commission        string        `json:"commission"`
	Reward            string        `json:"reward"`
	CommissionPercent string        `json:"commission_percent"`
}

func newPayoutResponse(p *service.Payout) PayoutResponse {
	return PayoutResponse{
		Order:             newOrderResponse(p.Order),
		Commission:        p.Commission.StringFixed(domain.MoneyPlaces),
		Reward:            p.Reward.StringFixed(domain.MoneyPlaces),
		CommissionPercent: p.Rate.Percent.String(),
	}
}

type LedgerEntryResponse struct {
	ID        int64             `json:"id"`
	Amount    string            `json:"amount"`
	Kind      domain.LedgerKind `json:"kind"`
	OrderID   *int64            `json:"order_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type ChatMessageResponse struct {
	ID            int64              `json:"id"`
	OrderID       int64              `json:"order_id"`
	SenderID      int64              `json:"sender_id"`
	ContentKind   domain.ContentKind `json:"content_kind"`
	Text          string             `json:"text,omitempty"`
	AttachmentRef string             `json:"attachment_ref,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func newChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:            m.ID,
		OrderID:       m.OrderID,
		SenderID:      m.SenderID,
		ContentKind:   m.ContentKind,
		Text:          m.Text,
		AttachmentRef: m.AttachmentRef,
		CreatedAt:     m.CreatedAt,
	}
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	ReviewerID int64     `json:"reviewer_id"`
	RevieweeID int64     `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

type CommissionResponse struct {
	Percent string `json:"percent"`
	Version int64  `json:"version"`
}
