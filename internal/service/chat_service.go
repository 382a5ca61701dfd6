package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/sirupsen/logrus"
)

// ChatService пересылает сообщения между участниками заказа и хранит переписку.
type ChatService struct {
	repos  *repos
	auth   *Authorizer
	notify *notifications
}

func NewChatService(u uow.UOW, auth *Authorizer, n Notifier, l *logrus.Logger) (*ChatService, error) {
	r, err := loadRepos(u.GetRepository)
	if err != nil {
		return nil, err
	}
	return &ChatService{
		repos:  r,
		auth:   auth,
		notify: newNotifications(n, l),
	}, nil
}

type SendMessageArgs struct {
	SenderID      int64
	OrderID       int64
	ContentKind   domain.ContentKind
	Text          string
	AttachmentRef string
}

// Send сохраняет сообщение участника заказа и пересылает его второй стороне.
func (s *ChatService) Send(ctx context.Context, args SendMessageArgs) (*domain.ChatMessage, error) {
	if !args.ContentKind.Valid() {
		return nil, domain.Reject(domain.ErrInvalidArgument, "unknown content kind `%s`", args.ContentKind)
	}
	if args.ContentKind == domain.ContentKindText && strings.TrimSpace(args.Text) == "" {
		return nil, domain.Reject(domain.ErrInvalidArgument, "text must not be empty")
	}
	if args.ContentKind != domain.ContentKindText && args.AttachmentRef == "" {
		return nil, domain.Reject(domain.ErrInvalidArgument, "attachment is required for %s", args.ContentKind)
	}

	order, err := s.repos.orders.FindByID(ctx, args.OrderID)
	if err != nil {
		return nil, orNotFound(err, "order %d not found", args.OrderID)
	}
	recipientID, ok := order.Counterpart(args.SenderID)
	if !ok {
		return nil, domain.Reject(domain.ErrNotAuthorized, "not a participant of order %d", order.ID)
	}
	switch order.Status {
	case domain.OrderStatusInProgress, domain.OrderStatusPendingApproval, domain.OrderStatusDispute:
	default:
		return nil, invalidTransition(order, "chat")
	}

	msg, err := s.repos.chat.Create(ctx, repoargs.CreateChatMessage{
		OrderID:       order.ID,
		SenderID:      args.SenderID,
		ContentKind:   args.ContentKind,
		Text:          args.Text,
		AttachmentRef: args.AttachmentRef,
	})
	if err != nil {
		return nil, fmt.Errorf("sending chat message: %w", err)
	}

	s.notify.deliver(ctx, domain.Notification{
		RecipientID:   recipientID,
		Text:          fmt.Sprintf("Сообщение по заказу #%d: %s", order.ID, msg.Text),
		AttachmentRef: msg.AttachmentRef,
	})
	return msg, nil
}

// Log возвращает переписку по заказу. Доступно участникам и администраторам.
func (s *ChatService) Log(ctx context.Context, actorID, orderID int64) ([]domain.ChatMessage, error) {
	order, err := s.repos.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, orNotFound(err, "order %d not found", orderID)
	}
	if !order.IsParticipant(actorID) && !s.auth.IsAdmin(actorID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "not a participant of order %d", orderID)
	}
	msgs, err := s.repos.chat.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing chat: %w", err)
	}
	return msgs, nil
}
