package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// WalletService депозиты и вывод средств через платежного провайдера.
type WalletService struct {
	uow      uow.UOW
	repos    *repos
	payments PaymentProvider
	notify   *notifications
	l        *logrus.Entry
}

func NewWalletService(u uow.UOW, payments PaymentProvider, n Notifier, l *logrus.Logger) (*WalletService, error) {
	r, err := loadRepos(u.GetRepository)
	if err != nil {
		return nil, err
	}
	return &WalletService{
		uow:      u,
		repos:    r,
		payments: payments,
		notify:   newNotifications(n, l),
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "wallet",
		}),
	}, nil
}

// DepositAddress возвращает адрес для пополнения. Адрес запрашивается у провайдера один раз и сохраняется.
func (s *WalletService) DepositAddress(ctx context.Context, userID int64) (string, error) {
	user, err := s.repos.users.FindByID(ctx, userID)
	if err != nil {
		return "", orNotFound(err, "user %d not found", userID)
	}
	if user.Blocked {
		return "", domain.Reject(domain.ErrNotAuthorized, "user is blocked")
	}
	if user.WalletAddress != "" {
		return user.WalletAddress, nil
	}

	address, err := s.payments.AllocateAddress(ctx, userID)
	if err != nil {
		s.l.WithError(err).WithField("user", userID).Error("allocating deposit address")
		return "", domain.Reject(domain.ErrExternalService, "payment provider failed to allocate address")
	}
	if _, err = s.repos.users.SetWalletAddress(ctx, userID, address); err != nil {
		return "", fmt.Errorf("saving deposit address: %w", err)
	}
	return address, nil
}

type CreditDepositArgs struct {
	TxID   string
	UserID int64
	Amount decimal.Decimal
}

// CreditDeposit зачисляет входящий перевод. Каждый txid зачисляется не более одного раза: для уже
// обработанного txid возвращается false без изменения баланса.
func (s *WalletService) CreditDeposit(ctx context.Context, args CreditDepositArgs) (bool, error) {
	if args.TxID == "" {
		return false, domain.Reject(domain.ErrInvalidArgument, "empty txid")
	}
	amount := domain.NormalizeMoney(args.Amount)
	if !amount.IsPositive() {
		return false, domain.Reject(domain.ErrInvalidArgument, "deposit amount must be positive")
	}

	var isNew bool
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		isNew, err = r.deposits.MarkProcessed(c, repoargs.CreateDeposit{
			TxID:   args.TxID,
			UserID: args.UserID,
			Amount: amount,
		})
		if err != nil || !isNew {
			return err //nolint:wrapcheck
		}
		_, err = credit(c, r, args.UserID, amount, domain.LedgerKindDeposit, nil)
		return err
	})
	if txErr != nil {
		return false, fmt.Errorf("crediting deposit `%s`: %w", args.TxID, txErr)
	}
	if isNew {
		s.l.WithFields(logrus.Fields{
			"user":   args.UserID,
			"txid":   args.TxID,
			"amount": amount.String(),
		}).Info("deposit credited")
		s.notify.send(ctx, args.UserID, "Баланс пополнен на %s", amount.StringFixed(domain.MoneyPlaces))
	}
	return isNew, nil
}

// WalletsForPolling возвращает пользователей с выданным адресом пополнения постранично по ID.
func (s *WalletService) WalletsForPolling(ctx context.Context, afterID int64, limit uint) ([]domain.User, error) {
	users, err := s.repos.users.ListWithWallets(ctx, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing wallets: %w", err)
	}
	return users, nil
}

type WithdrawArgs struct {
	UserID  int64
	Address string
	Amount  decimal.Decimal
}

// Withdrawal результат успешного вывода средств.
type Withdrawal struct {
	User      *domain.User
	Reference string
}

// Withdraw выводит средства на внешний адрес. Выплата у провайдера выполняется внутри транзакции
// с заблокированной строкой пользователя: при отказе провайдера баланс не меняется.
func (s *WalletService) Withdraw(ctx context.Context, args WithdrawArgs) (*Withdrawal, error) {
	if strings.TrimSpace(args.Address) == "" {
		return nil, domain.Reject(domain.ErrInvalidArgument, "address must not be empty")
	}
	if err := validateAmount(args.Amount); err != nil {
		return nil, err
	}

	var res Withdrawal
	txErr := s.uow.Do(uow.WithoutRetry(ctx), func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		user, err := r.users.FindByIDForUpdate(c, args.UserID)
		if err != nil {
			return orNotFound(err, "user %d not found", args.UserID)
		}
		if user.Blocked {
			return domain.Reject(domain.ErrNotAuthorized, "user is blocked")
		}
		if err = ensureFunds(user, args.Amount); err != nil {
			return err
		}

		payout, err := s.payments.CreatePayout(c, args.Address, args.Amount)
		if err != nil {
			s.l.WithError(err).WithField("user", args.UserID).Error("payout request failed")
			return domain.Reject(domain.ErrExternalService, "payment provider is unavailable")
		}
		if !payout.Success {
			return domain.Reject(domain.ErrExternalService, "payout rejected: %s", payout.Message)
		}

		res.Reference = payout.Reference
		res.User, err = postEntry(c, r, args.UserID, args.Amount.Neg(), domain.LedgerKindWithdrawal, nil)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("withdrawing: %w", txErr)
	}
	s.l.WithFields(logrus.Fields{
		"user":      args.UserID,
		"amount":    args.Amount.String(),
		"reference": res.Reference,
	}).Info("withdrawal completed")
	return &res, nil
}
