package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommission(t *testing.T) {
	cases := []struct {
		name  string
		price string
		rate  string
		want  string
	}{
		{name: "ten percent", price: "30.00", rate: "10", want: "3"},
		{name: "zero rate", price: "30.00", rate: "0", want: "0"},
		{name: "fractional rate rounds to cents", price: "10.00", rate: "3.333", want: "0.33"},
		{name: "free order", price: "0", rate: "15", want: "0"},
		{name: "full rate", price: "12.34", rate: "100", want: "12.34"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Commission(decimal.RequireFromString(c.price), decimal.RequireFromString(c.rate))
			assert.True(t, decimal.RequireFromString(c.want).Equal(got), "got %s", got)
		})
	}
}

func TestNextRating(t *testing.T) {
	// первая оценка замещает рейтинг по умолчанию.
	got := NextRating(decimal.NewFromInt(5), 0, 3)
	assert.True(t, decimal.NewFromInt(3).Equal(got))

	// (4.5 * 2 + 3) / 3 = 4
	got = NextRating(decimal.RequireFromString("4.5"), 2, 3)
	assert.True(t, decimal.NewFromInt(4).Equal(got))

	// (5 * 2 + 4) / 3 = 4.666.. -> 4.67
	got = NextRating(decimal.NewFromInt(5), 2, 4)
	assert.True(t, decimal.RequireFromString("4.67").Equal(got))
}

func TestOrderCounterpart(t *testing.T) {
	executorID := int64(20)
	order := Order{CustomerID: 10}

	_, ok := order.Counterpart(10)
	assert.False(t, ok, "исполнитель не назначен")

	order.ExecutorID = &executorID
	got, ok := order.Counterpart(10)
	require.True(t, ok)
	assert.Equal(t, executorID, got)

	got, ok = order.Counterpart(executorID)
	require.True(t, ok)
	assert.Equal(t, int64(10), got)

	_, ok = order.Counterpart(30)
	assert.False(t, ok)
	assert.True(t, order.IsParticipant(20))
	assert.False(t, order.IsParticipant(30))
}

func TestUserIsVIP(t *testing.T) {
	now := time.Now()
	user := User{}
	assert.False(t, user.IsVIP(now))

	past := now.Add(-time.Minute)
	user.VIPUntil = &past
	assert.False(t, user.IsVIP(now))

	future := now.Add(time.Hour)
	user.VIPUntil = &future
	assert.True(t, user.IsVIP(now))
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{err: Reject(ErrInsufficientBalance, "need %s", "10"), want: KindInsufficientBalance},
		{err: fmt.Errorf("wrap: %w", Reject(ErrInvalidTransition, "x")), want: KindInvalidTransition},
		{err: ErrNotAuthorized, want: KindNotAuthorized},
		{err: fmt.Errorf("[repository/x] %w", ErrRecordNotFound), want: KindNotFound},
		{err: Reject(ErrDuplicateOffer, "x"), want: KindDuplicateOffer},
		{err: Reject(ErrExternalService, "x"), want: KindExternalService},
		{err: Reject(ErrInvalidArgument, "x"), want: KindInvalidArgument},
		{err: errors.New("boom"), want: KindInternal},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, KindOf(c.err), c.err.Error())
	}

	assert.Equal(t, "need 10", ReasonOf(fmt.Errorf("wrap: %w", Reject(ErrInsufficientBalance, "need %s", "10"))))
	assert.Empty(t, ReasonOf(errors.New("boom")))
}
