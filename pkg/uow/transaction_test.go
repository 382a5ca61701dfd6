package uow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	db DBTX
}

type TransactionTestSuite struct {
	suite.Suite
	factories map[RepositoryName]RepositoryFactory
	calls     int
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) SetupTest() {
	s.calls = 0
	s.factories = map[RepositoryName]RepositoryFactory{
		"fake": func(db DBTX) Repository {
			s.calls++
			return &fakeRepo{db: db}
		},
	}
}

func (s *TransactionTestSuite) TestGetCachesInstances() {
	tx := NewTransaction(nil, s.factories)

	first, err := tx.Get("fake")
	s.Require().NoError(err)
	second, err := tx.Get("fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, s.calls)
}

func (s *TransactionTestSuite) TestGetAs() {
	tx := NewTransaction(nil, s.factories)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*fakeRepo](tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)

	_, err = GetAs[string](tx, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)
}

func (s *TransactionTestSuite) TestRegisterTwice() {
	u := NewUnitOfWork(nil)
	s.Require().NoError(u.Register("fake", s.factories["fake"]))
	s.Require().ErrorIs(u.Register("fake", s.factories["fake"]), ErrRepositoryAlreadyRegistered)

	_, err := u.GetRepository("missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *TransactionTestSuite) TestRetryable() {
	s.True(Retryable(&pgconn.PgError{Code: "40001"}))
	s.True(Retryable(fmt.Errorf("lock order: %w", &pgconn.PgError{Code: "40P01"})))
	s.False(Retryable(&pgconn.PgError{Code: "23505"}))
	s.False(Retryable(errors.New("boom")))
	s.False(Retryable(nil))
}

func (s *TransactionTestSuite) TestWithoutRetry() {
	s.False(retryDisabled(s.T().Context()))
	s.True(retryDisabled(WithoutRetry(s.T().Context())))
}
