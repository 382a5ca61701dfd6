package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	mock  redismock.ClientMock
	store *RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.store = NewRedisStore(db, 10*time.Minute)
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisStoreTestSuite) TestSaveAndGet() {
	state := domain.Interaction{
		Kind:    domain.InteractionMakingOffer,
		Step:    domain.StepConfirm,
		OrderID: 7,
		Data:    map[string]string{domain.StepMessage: "готов"},
	}
	payload := `{"kind":"making_offer","step":"confirm","order_id":7,"data":{"message":"готов"}}`

	s.mock.ExpectSet("interaction:42", payload, 10*time.Minute).SetVal("OK")
	s.Require().NoError(s.store.Save(s.ctx, 42, state))

	s.mock.ExpectGet("interaction:42").SetVal(payload)
	got, err := s.store.Get(s.ctx, 42)
	s.Require().NoError(err)
	s.Equal(state, *got)
}

func (s *RedisStoreTestSuite) TestGetMissing() {
	s.mock.ExpectGet("interaction:1").RedisNil()

	_, err := s.store.Get(s.ctx, 1)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RedisStoreTestSuite) TestGetCorrupted() {
	s.mock.ExpectGet("interaction:1").SetVal("{")

	_, err := s.store.Get(s.ctx, 1)
	s.Require().Error(err)
	s.NotErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RedisStoreTestSuite) TestRedisFailure() {
	s.mock.ExpectGet("interaction:1").SetErr(errors.New("connection refused"))
	_, err := s.store.Get(s.ctx, 1)
	s.Require().Error(err)

	s.mock.ExpectDel("interaction:1").SetErr(errors.New("connection refused"))
	s.Require().Error(s.store.Delete(s.ctx, 1))
}

func (s *RedisStoreTestSuite) TestDelete() {
	s.mock.ExpectDel("interaction:5").SetVal(1)
	s.Require().NoError(s.store.Delete(s.ctx, 5))
}
