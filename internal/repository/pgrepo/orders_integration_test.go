//go:build integration

package pgrepo

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// go test -tags integration ./internal/repository/pgrepo/ при заданном TEST_DATABASE_URI.

var errOrderTaken = errors.New("order is not open")

type OrderRepoIntegrationSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	uow        *uow.UnitOfWork
	orders     *OrderRepository
	users      *UserRepository
	categoryID int64
	nextUserID int64
}

func TestOrderRepoIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoIntegrationSuite))
}

func (s *OrderRepoIntegrationSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URI is not set")
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	pool, err := Connect(s.T().Context(), "../../db/migrations", dsn, l)
	s.Require().NoError(err)
	s.pool = pool

	s.uow = uow.NewUnitOfWork(pool)
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.OrderRepoName),
		func(db uow.DBTX) uow.Repository { return NewOrderRepository(db) }))
	s.orders = NewOrderRepository(pool)
	s.users = NewUserRepository(pool)

	s.Require().NoError(pool.QueryRow(s.T().Context(),
		`SELECT id FROM categories ORDER BY id LIMIT 1`).Scan(&s.categoryID))
	s.nextUserID = time.Now().UnixNano()
}

func (s *OrderRepoIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *OrderRepoIntegrationSuite) newUser() int64 {
	s.nextUserID++
	user, _, err := s.users.GetOrCreate(s.T().Context(), repoargs.CreateUser{
		ID:       s.nextUserID,
		Username: gofakeit.Username(),
	})
	s.Require().NoError(err)
	return user.ID
}

func (s *OrderRepoIntegrationSuite) newOrder() *domain.Order {
	order, err := s.orders.Create(s.T().Context(), repoargs.CreateOrder{
		Title:      gofakeit.JobTitle(),
		Price:      decimal.RequireFromString("25.00"),
		CustomerID: s.newUser(),
		CategoryID: s.categoryID,
	})
	s.Require().NoError(err)
	return order
}

func (s *OrderRepoIntegrationSuite) TestUpdateStatusComparesCurrentStatus() {
	order := s.newOrder()
	executorID := s.newUser()

	moved, err := s.orders.UpdateStatus(s.T().Context(), repoargs.UpdateOrderStatus{
		ID:         order.ID,
		From:       domain.OrderStatusOpen,
		To:         domain.OrderStatusInProgress,
		ExecutorID: &executorID,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusInProgress, moved.Status)
	s.Require().NotNil(moved.ExecutorID)
	s.Equal(executorID, *moved.ExecutorID)

	// статус уже не open: строка не меняется.
	otherID := s.newUser()
	_, err = s.orders.UpdateStatus(s.T().Context(), repoargs.UpdateOrderStatus{
		ID:         order.ID,
		From:       domain.OrderStatusOpen,
		To:         domain.OrderStatusInProgress,
		ExecutorID: &otherID,
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)

	current, err := s.orders.FindByID(s.T().Context(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusInProgress, current.Status)
	s.Equal(executorID, *current.ExecutorID)

	// без ExecutorID исполнитель сохраняется.
	moved, err = s.orders.UpdateStatus(s.T().Context(), repoargs.UpdateOrderStatus{
		ID:   order.ID,
		From: domain.OrderStatusInProgress,
		To:   domain.OrderStatusPendingApproval,
	})
	s.Require().NoError(err)
	s.Equal(executorID, *moved.ExecutorID)
}

// TestConcurrentSelectionSingleWinner параллельные check-then-act транзакции: заказ достается одному.
func (s *OrderRepoIntegrationSuite) TestConcurrentSelectionSingleWinner() {
	order := s.newOrder()
	const contenders = 8
	executors := make([]int64, contenders)
	for i := range executors {
		executors[i] = s.newUser()
	}

	var wins, taken atomic.Int32
	var wg sync.WaitGroup
	for _, executorID := range executors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.uow.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
				repo, err := uow.GetAs[*OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
				if err != nil {
					return err
				}
				current, err := repo.FindByIDForUpdate(ctx, order.ID)
				if err != nil {
					return err
				}
				if current.Status != domain.OrderStatusOpen {
					return errOrderTaken
				}
				_, err = repo.UpdateStatus(ctx, repoargs.UpdateOrderStatus{
					ID:         order.ID,
					From:       domain.OrderStatusOpen,
					To:         domain.OrderStatusInProgress,
					ExecutorID: &executorID,
				})
				return err
			})
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, errOrderTaken):
				taken.Add(1)
			default:
				s.Fail("unexpected error", err.Error())
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(int32(contenders-1), taken.Load())
}

// TestFindByIDForUpdateBlocks пока строка заблокирована транзакцией, вторая блокировка ждет.
func (s *OrderRepoIntegrationSuite) TestFindByIDForUpdateBlocks() {
	order := s.newOrder()
	locked := make(chan struct{})
	release := make(chan struct{})
	holderDone := make(chan error, 1)

	go func() {
		holderDone <- s.uow.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
			repo, err := uow.GetAs[*OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
			if err != nil {
				return err
			}
			if _, err = repo.FindByIDForUpdate(ctx, order.ID); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	waitCtx, cancel := context.WithTimeout(s.T().Context(), 300*time.Millisecond)
	defer cancel()
	err := s.uow.Do(waitCtx, func(ctx context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[*OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err
		}
		_, err = repo.FindByIDForUpdate(ctx, order.ID)
		return err
	})
	s.Require().Error(err, "блокировка должна ждать освобождения строки")

	close(release)
	s.Require().NoError(<-holderDone)

	_, err = s.orders.FindByIDForUpdate(s.T().Context(), order.ID)
	s.Require().NoError(err)
}
