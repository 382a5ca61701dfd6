package service

import (
	"errors"
	"testing"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WalletServiceTestSuite struct {
	MarketSuite
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) TestDepositAddressAllocatedOnce() {
	s.user(customerID, "0")

	s.payments.EXPECT().AllocateAddress(gomockAny, customerID).Return("TAddr1001", nil).Times(1)

	address, err := s.svs.Wallet.DepositAddress(s.ctx, customerID)
	s.Require().NoError(err)
	s.Equal("TAddr1001", address)

	address, err = s.svs.Wallet.DepositAddress(s.ctx, customerID)
	s.Require().NoError(err)
	s.Equal("TAddr1001", address)

	wallets, err := s.svs.Wallet.WalletsForPolling(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(wallets, 1)
	s.Equal(customerID, wallets[0].ID)
}

func (s *WalletServiceTestSuite) TestDepositAddressProviderFailure() {
	s.user(customerID, "0")

	s.payments.EXPECT().AllocateAddress(gomockAny, customerID).Return("", errors.New("503"))

	_, err := s.svs.Wallet.DepositAddress(s.ctx, customerID)
	s.requireKind(err, domain.ErrExternalService)

	wallets, err := s.svs.Wallet.WalletsForPolling(s.ctx, 0, 10)
	s.Require().NoError(err)
	s.Empty(wallets)
}

func (s *WalletServiceTestSuite) TestCreditDepositOncePerTxID() {
	s.user(customerID, "0")
	args := CreditDepositArgs{TxID: "abc123", UserID: customerID, Amount: decimal.RequireFromString("25.5")}

	isNew, err := s.svs.Wallet.CreditDeposit(s.ctx, args)
	s.Require().NoError(err)
	s.True(isNew)

	isNew, err = s.svs.Wallet.CreditDeposit(s.ctx, args)
	s.Require().NoError(err)
	s.False(isNew)

	s.requireBalance(customerID, "25.50")
	entries := s.history(customerID)
	s.Require().Len(entries, 1)
	s.Equal(domain.LedgerKindDeposit, entries[0].Kind)
	s.Len(s.notifier.to(customerID), 1)

	_, err = s.svs.Wallet.CreditDeposit(s.ctx, CreditDepositArgs{UserID: customerID, Amount: decimal.NewFromInt(1)})
	s.requireKind(err, domain.ErrInvalidArgument)
	_, err = s.svs.Wallet.CreditDeposit(s.ctx, CreditDepositArgs{TxID: "x", UserID: customerID})
	s.requireKind(err, domain.ErrInvalidArgument)
}

func (s *WalletServiceTestSuite) TestCreditDepositUnknownUser() {
	_, err := s.svs.Wallet.CreditDeposit(s.ctx, CreditDepositArgs{
		TxID: "orphan", UserID: strangerID, Amount: decimal.NewFromInt(1),
	})
	s.Require().Error(err)

	// откат транзакции освобождает txid.
	s.user(strangerID, "0")
	isNew, err := s.svs.Wallet.CreditDeposit(s.ctx, CreditDepositArgs{
		TxID: "orphan", UserID: strangerID, Amount: decimal.NewFromInt(1),
	})
	s.Require().NoError(err)
	s.True(isNew)
}

func (s *WalletServiceTestSuite) TestWithdraw() {
	s.user(customerID, "50.00")
	amount := decimal.NewFromInt(20)

	s.payments.EXPECT().CreatePayout(gomockAny, "TDest", amount).
		Return(&domain.PayoutResult{Success: true, Reference: "payout-1"}, nil)

	res, err := s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{UserID: customerID, Address: "TDest", Amount: amount})
	s.Require().NoError(err)
	s.Equal("payout-1", res.Reference)
	s.True(decimal.NewFromInt(30).Equal(res.User.Balance))

	entries := s.history(customerID)
	s.Require().Len(entries, 2)
	s.Equal(domain.LedgerKindWithdrawal, entries[0].Kind)
	s.True(amount.Neg().Equal(entries[0].Amount))
	s.requireReconciled(customerID)
}

func (s *WalletServiceTestSuite) TestWithdrawRejectedByProvider() {
	s.user(customerID, "50.00")

	s.payments.EXPECT().CreatePayout(gomockAny, "TDest", gomockAny).
		Return(&domain.PayoutResult{Success: false, Message: "address blacklisted"}, nil)

	_, err := s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{
		UserID: customerID, Address: "TDest", Amount: decimal.NewFromInt(20),
	})
	s.requireKind(err, domain.ErrExternalService)
	s.Contains(domain.ReasonOf(err), "address blacklisted")
	s.requireBalance(customerID, "50.00")
	s.Len(s.history(customerID), 1)
}

func (s *WalletServiceTestSuite) TestWithdrawProviderUnavailable() {
	s.user(customerID, "50.00")

	s.payments.EXPECT().CreatePayout(gomockAny, gomockAny, gomockAny).Return(nil, errors.New("timeout"))

	_, err := s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{
		UserID: customerID, Address: "TDest", Amount: decimal.NewFromInt(20),
	})
	s.requireKind(err, domain.ErrExternalService)
	s.requireBalance(customerID, "50.00")
}

func (s *WalletServiceTestSuite) TestWithdrawValidation() {
	s.user(customerID, "10.00")

	// до провайдера такие запросы не доходят.
	s.payments.EXPECT().CreatePayout(gomockAny, gomockAny, gomockAny).Times(0)

	_, err := s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{UserID: customerID, Address: "TDest",
		Amount: decimal.NewFromInt(11)})
	s.requireKind(err, domain.ErrInsufficientBalance)

	_, err = s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{UserID: customerID, Address: " ",
		Amount: decimal.NewFromInt(1)})
	s.requireKind(err, domain.ErrInvalidArgument)

	_, err = s.svs.Wallet.Withdraw(s.ctx, WithdrawArgs{UserID: customerID, Address: "TDest",
		Amount: decimal.RequireFromString("0.001")})
	s.requireKind(err, domain.ErrInvalidArgument)
	s.requireBalance(customerID, "10.00")
}
