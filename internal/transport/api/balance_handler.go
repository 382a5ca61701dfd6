package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BalanceHandler struct {
	ledgerSvs LedgerServicer
	walletSvs WalletServicer
}

func NewBalanceHandler(ledgerSvs LedgerServicer, walletSvs WalletServicer) *BalanceHandler {
	return &BalanceHandler{
		ledgerSvs: ledgerSvs,
		walletSvs: walletSvs,
	}
}

type BalanceResponse struct {
	Current string `json:"current"`
}

// Index GET RouteGroup + BalanceRoute.
func (b *BalanceHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.ledgerSvs.Balance(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &BalanceResponse{Current: balance.StringFixed(domain.MoneyPlaces)})
}

// History GET RouteGroup + BalanceHistoryRoute. Записи журнала пользователя, новые сначала.
func (b *BalanceHandler) History(c *gin.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := b.ledgerSvs.History(reqCtx, getUserIDFromContext(c), page)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			ID:        entry.ID,
			Amount:    entry.Amount.StringFixed(domain.MoneyPlaces),
			Kind:      entry.Kind,
			OrderID:   entry.OrderID,
			CreatedAt: entry.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

// DepositAddress POST RouteGroup + BalanceDepositRoute. Адрес выделяется один раз и дальше не меняется.
func (b *BalanceHandler) DepositAddress(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	address, err := b.walletSvs.DepositAddress(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}

type WithdrawParams struct {
	Address string          `binding:"required,wallet_address" json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

// Withdraw POST RouteGroup + BalanceWithdrawRoute.
func (b *BalanceHandler) Withdraw(c *gin.Context) {
	var params WithdrawParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := b.walletSvs.Withdraw(reqCtx, service.WithdrawArgs{
		UserID:  getUserIDFromContext(c),
		Address: params.Address,
		Amount:  params.Amount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": withdrawal.Reference,
		"balance":   withdrawal.User.Balance.StringFixed(domain.MoneyPlaces),
	})
}

type AdjustBalanceParams struct {
	Amount decimal.Decimal `json:"amount"`
}

// AdminCredit POST RouteGroup + AdminCreditRoute.
func (b *BalanceHandler) AdminCredit(c *gin.Context) {
	b.adjust(c, b.ledgerSvs.AdminCredit)
}

// AdminDebit POST RouteGroup + AdminDebitRoute.
func (b *BalanceHandler) AdminDebit(c *gin.Context) {
	b.adjust(c, b.ledgerSvs.AdminDebit)
}

func (b *BalanceHandler) adjust(
	c *gin.Context,
	fn func(ctx context.Context, adminID, userID int64, amount decimal.Decimal) (*domain.User, error),
) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params AdjustBalanceParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := fn(reqCtx, getUserIDFromContext(c), userID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type ReconciliationResponse struct {
	UserID     int64  `json:"user_id"`
	Balance    string `json:"balance"`
	LedgerSum  string `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}

// Reconcile GET RouteGroup + AdminReconcileRoute.
func (b *BalanceHandler) Reconcile(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rec, err := b.ledgerSvs.Reconcile(reqCtx, getUserIDFromContext(c), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReconciliationResponse{
		UserID:     rec.UserID,
		Balance:    rec.Balance.StringFixed(domain.MoneyPlaces),
		LedgerSum:  rec.LedgerSum.StringFixed(domain.MoneyPlaces),
		Consistent: rec.Consistent,
	})
}
