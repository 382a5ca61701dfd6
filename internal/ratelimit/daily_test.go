package ratelimit

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	limiter := New(db)

	mock.ExpectIncr("ratelimit:orders:1:20240301").SetVal(1)
	mock.ExpectExpire("ratelimit:orders:1:20240301", counterTTL).SetVal(true)
	ok, err := limiter.Allow(ctx, "orders:1:20240301", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectIncr("ratelimit:orders:1:20240301").SetVal(2)
	ok, err = limiter.Allow(ctx, "orders:1:20240301", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectIncr("ratelimit:orders:1:20240301").SetVal(3)
	ok, err = limiter.Allow(ctx, "orders:1:20240301", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimiter_AllowRedisDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	limiter := New(db)

	mock.ExpectIncr("ratelimit:offers:1:20240301").SetErr(errors.New("connection refused"))
	ok, err := limiter.Allow(context.Background(), "offers:1:20240301", 5)
	require.Error(t, err)
	assert.False(t, ok)
}
