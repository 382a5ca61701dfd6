package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LedgerService баланс пользователей, журнал операций и административные корректировки.
type LedgerService struct {
	uow    uow.UOW
	repos  *repos
	auth   *Authorizer
	notify *notifications
	l      *logrus.Entry
}

func NewLedgerService(u uow.UOW, auth *Authorizer, n Notifier, l *logrus.Logger) (*LedgerService, error) {
	r, err := loadRepos(u.GetRepository)
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:    u,
		repos:  r,
		auth:   auth,
		notify: newNotifications(n, l),
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "ledger",
		}),
	}, nil
}

func (s *LedgerService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	user, err := s.repos.users.FindByID(ctx, userID)
	if err != nil {
		return decimal.Zero, orNotFound(err, "user %d not found", userID)
	}
	return user.Balance, nil
}

// History возвращает записи журнала пользователя, новые первыми.
func (s *LedgerService) History(ctx context.Context, userID int64, p repoargs.Page) ([]domain.LedgerEntry, error) {
	entries, err := s.repos.ledger.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("getting ledger history: %w", err)
	}
	return entries, nil
}

// AdminCredit зачисляет amount на баланс пользователя с записью admin_credit.
func (s *LedgerService) AdminCredit(
	ctx context.Context,
	adminID, userID int64,
	amount decimal.Decimal,
) (*domain.User, error) {
	user, err := s.adjust(ctx, adminID, userID, amount, domain.LedgerKindAdminCredit)
	if err != nil {
		return nil, fmt.Errorf("admin credit: %w", err)
	}
	s.notify.send(ctx, userID, "Администратор зачислил на ваш баланс %s", amount.StringFixed(domain.MoneyPlaces))
	return user, nil
}

// AdminDebit списывает amount с баланса пользователя с записью admin_debit. Списание больше баланса
// отклоняется.
func (s *LedgerService) AdminDebit(
	ctx context.Context,
	adminID, userID int64,
	amount decimal.Decimal,
) (*domain.User, error) {
	user, err := s.adjust(ctx, adminID, userID, amount, domain.LedgerKindAdminDebit)
	if err != nil {
		return nil, fmt.Errorf("admin debit: %w", err)
	}
	s.notify.send(ctx, userID, "Администратор списал с вашего баланса %s", amount.StringFixed(domain.MoneyPlaces))
	return user, nil
}

func (s *LedgerService) adjust(
	ctx context.Context,
	adminID, userID int64,
	amount decimal.Decimal,
	kind domain.LedgerKind,
) (*domain.User, error) {
	if !s.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "admin only")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		if kind == domain.LedgerKindAdminDebit {
			user, err = debit(c, r, userID, amount, kind, nil)
		} else {
			user, err = credit(c, r, userID, amount, kind, nil)
		}
		return err
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	s.l.WithFields(logrus.Fields{
		"admin":  adminID,
		"user":   userID,
		"kind":   kind,
		"amount": amount.String(),
	}).Info("balance adjusted")
	return user, nil
}

// Reconciliation сверка баланса пользователя с суммой его записей журнала.
type Reconciliation struct {
	UserID     int64
	Balance    decimal.Decimal
	LedgerSum  decimal.Decimal
	Consistent bool
}

// Reconcile сверяет баланс пользователя с журналом в одной транзакции. Доступно администраторам.
func (s *LedgerService) Reconcile(ctx context.Context, adminID, userID int64) (*Reconciliation, error) {
	if !s.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "admin only")
	}
	var res Reconciliation
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		user, err := r.users.FindByIDForUpdate(c, userID)
		if err != nil {
			return orNotFound(err, "user %d not found", userID)
		}
		sum, err := r.ledger.SumByUser(c, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		res = Reconciliation{
			UserID:     userID,
			Balance:    user.Balance,
			LedgerSum:  sum,
			Consistent: user.Balance.Equal(sum),
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("reconciling user %d: %w", userID, txErr)
	}
	if !res.Consistent {
		s.l.WithFields(logrus.Fields{
			"user":      userID,
			"balance":   res.Balance.String(),
			"ledgerSum": res.LedgerSum.String(),
		}).Warn("balance does not match ledger")
	}
	return &res, nil
}
