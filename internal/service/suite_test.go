package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/memrepo"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service/mocks"
	"github.com/fsdevblog/gigmarket/internal/service/psswd"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminID       int64 = 900
	testAdminPassword       = "admin-password"
)

// recordingNotifier запоминает отправленные уведомления.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

func (r *recordingNotifier) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}

func (r *recordingNotifier) to(recipientID int64) []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []domain.Notification
	for _, n := range r.sent {
		if n.RecipientID == recipientID {
			res = append(res, n)
		}
	}
	return res
}

type memInteractions struct {
	states map[int64]domain.Interaction
}

func (m *memInteractions) Get(_ context.Context, userID int64) (*domain.Interaction, error) {
	state, ok := m.states[userID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &state, nil
}

func (m *memInteractions) Save(_ context.Context, userID int64, interaction domain.Interaction) error {
	m.states[userID] = interaction
	return nil
}

func (m *memInteractions) Delete(_ context.Context, userID int64) error {
	delete(m.states, userID)
	return nil
}

// MarketSuite поднимает все сервисы поверх хранилища в памяти.
type MarketSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	store        *memrepo.Store
	notifier     *recordingNotifier
	payments     *mocks.MockPaymentProvider
	limiter      *mocks.MockRateLimiter
	interactions *memInteractions
	limits       DailyLimits
	svs          *AppServices
}

func (s *MarketSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = memrepo.New("Дизайн", "Программирование")
	s.notifier = new(recordingNotifier)
	s.payments = mocks.NewMockPaymentProvider(s.mockCtrl)
	s.limiter = mocks.NewMockRateLimiter(s.mockCtrl)
	s.interactions = &memInteractions{states: make(map[int64]domain.Interaction)}

	hasher := psswd.PasswordHash{Cost: bcrypt.MinCost}
	adminHash, err := hasher.HashPassword(testAdminPassword)
	s.Require().NoError(err)

	l := logrus.New()
	l.SetOutput(io.Discard)

	svs, err := Factory(Dependencies{
		UOW:            s.store,
		Logger:         l,
		Notifier:       s.notifier,
		Payments:       s.payments,
		Limiter:        s.limiter,
		Interactions:   s.interactions,
		PasswordHasher: hasher,
	}, Options{
		AdminIDs:                 []int64{testAdminID},
		AdminPasswordHash:        adminHash,
		JWTSecret:                []byte("secret"),
		DefaultCommissionPercent: decimal.NewFromInt(10),
		VIPPrice:                 decimal.NewFromInt(5),
		VIPDuration:              30 * 24 * time.Hour,
		Limits:                   s.limits,
	})
	s.Require().NoError(err)
	s.svs = svs
}

func (s *MarketSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// user регистрирует пользователя и зачисляет ему balance через административное пополнение.
// Уведомление о пополнении сбрасывается.
func (s *MarketSuite) user(id int64, balance string) *domain.User {
	user, _, err := s.svs.Users.Start(s.ctx, StartArgs{ID: id, Username: "user"})
	s.Require().NoError(err)
	amount := decimal.RequireFromString(balance)
	if amount.IsPositive() {
		user, err = s.svs.Ledger.AdminCredit(s.ctx, testAdminID, id, amount)
		s.Require().NoError(err)
		s.notifier.reset()
	}
	return user
}

func (s *MarketSuite) balance(id int64) decimal.Decimal {
	balance, err := s.svs.Ledger.Balance(s.ctx, id)
	s.Require().NoError(err)
	return balance
}

func (s *MarketSuite) requireBalance(id int64, want string) {
	got := s.balance(id)
	s.Require().True(decimal.RequireFromString(want).Equal(got), "user %d balance: want %s, got %s", id, want, got)
}

func (s *MarketSuite) order(customerID int64, price string) *domain.Order {
	order, err := s.svs.Orders.Create(s.ctx, CreateOrderArgs{
		CustomerID:  customerID,
		CategoryID:  1,
		Title:       gofakeit.JobTitle(),
		Description: gofakeit.Sentence(12),
		Price:       decimal.RequireFromString(price),
	})
	s.Require().NoError(err)
	return order
}

// inProgress создает заказ и назначает исполнителя через отклик.
func (s *MarketSuite) inProgress(customerID, executorID int64, price string) *domain.Order {
	order := s.order(customerID, price)
	offer, err := s.svs.Orders.SubmitOffer(s.ctx, SubmitOfferArgs{
		OrderID:    order.ID,
		ExecutorID: executorID,
		Message:    "Сделаю за день",
	})
	s.Require().NoError(err)
	order, err = s.svs.Orders.SelectOffer(s.ctx, customerID, offer.ID)
	s.Require().NoError(err)
	return order
}

func (s *MarketSuite) pendingApproval(customerID, executorID int64, price string) *domain.Order {
	order := s.inProgress(customerID, executorID, price)
	order, err := s.svs.Orders.SubmitWork(s.ctx, executorID, order.ID)
	s.Require().NoError(err)
	return order
}

func (s *MarketSuite) orderLedger(orderID int64) []domain.LedgerEntry {
	repo, err := s.store.GetRepository("ledger")
	s.Require().NoError(err)
	entries, err := repo.(LedgerRepository).ListByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	return entries
}

func (s *MarketSuite) history(userID int64) []domain.LedgerEntry {
	entries, err := s.svs.Ledger.History(s.ctx, userID, repoargs.Page{Limit: 100})
	s.Require().NoError(err)
	return entries
}

func (s *MarketSuite) requireReconciled(userIDs ...int64) {
	for _, id := range userIDs {
		res, err := s.svs.Ledger.Reconcile(s.ctx, testAdminID, id)
		s.Require().NoError(err)
		s.Require().True(res.Consistent, "user %d: balance %s, ledger %s", id, res.Balance, res.LedgerSum)
	}
}

func (s *MarketSuite) requireKind(err error, kind error) {
	s.Require().Error(err)
	s.Require().ErrorIs(err, kind)
	s.Require().NotEmpty(domain.ReasonOf(err))
}
