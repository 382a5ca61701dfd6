package service

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

// postEntry изменяет баланс пользователя на amount и добавляет запись журнала. Должна вызываться
// внутри транзакции: изменение баланса без записи журнала недопустимо.
func postEntry(
	ctx context.Context,
	r *repos,
	userID int64,
	amount decimal.Decimal,
	kind domain.LedgerKind,
	orderID *int64,
) (*domain.User, error) {
	user, err := r.users.AddBalance(ctx, userID, amount)
	if err != nil {
		return nil, orNotFound(err, "user %d not found", userID)
	}
	if _, err = r.ledger.Create(ctx, repoargs.CreateLedgerEntry{
		UserID:  userID,
		Amount:  amount,
		Kind:    kind,
		OrderID: orderID,
	}); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// credit зачисляет amount > 0 на баланс пользователя.
func credit(
	ctx context.Context,
	r *repos,
	userID int64,
	amount decimal.Decimal,
	kind domain.LedgerKind,
	orderID *int64,
) (*domain.User, error) {
	return postEntry(ctx, r, userID, amount, kind, orderID)
}

// debit блокирует строку пользователя, проверяет достаточность средств и списывает amount > 0.
func debit(
	ctx context.Context,
	r *repos,
	userID int64,
	amount decimal.Decimal,
	kind domain.LedgerKind,
	orderID *int64,
) (*domain.User, error) {
	user, err := r.users.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, "user %d not found", userID)
	}
	if err = ensureFunds(user, amount); err != nil {
		return nil, err
	}
	return postEntry(ctx, r, userID, amount.Neg(), kind, orderID)
}

func ensureFunds(user *domain.User, amount decimal.Decimal) error {
	if user.Balance.LessThan(amount) {
		return domain.Reject(domain.ErrInsufficientBalance,
			"balance %s is less than required %s", user.Balance.StringFixed(domain.MoneyPlaces),
			amount.StringFixed(domain.MoneyPlaces))
	}
	return nil
}

// validateAmount проверяет, что сумма положительна и не содержит долей копеек.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.Reject(domain.ErrInvalidArgument, "amount must be positive")
	}
	if !amount.Equal(domain.NormalizeMoney(amount)) {
		return domain.Reject(domain.ErrInvalidArgument, "amount must have at most %d decimal places",
			domain.MoneyPlaces)
	}
	return nil
}
