package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/sirupsen/logrus"
)

// notifications отправляет уведомления после фиксации транзакции. Ошибки доставки только логируются.
type notifications struct {
	n Notifier
	l *logrus.Entry
}

func newNotifications(n Notifier, l *logrus.Logger) *notifications {
	return &notifications{
		n: n,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "notifications",
		}),
	}
}

func (s *notifications) send(ctx context.Context, recipientID int64, format string, args ...any) {
	s.deliver(ctx, domain.Notification{RecipientID: recipientID, Text: fmt.Sprintf(format, args...)})
}

func (s *notifications) deliver(ctx context.Context, n domain.Notification) {
	if s.n == nil {
		return
	}
	if err := s.n.Notify(ctx, n); err != nil {
		s.l.WithError(err).WithField("recipient", n.RecipientID).Warn("notification delivery failed")
	}
}
