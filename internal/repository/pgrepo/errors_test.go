package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	assert.NoError(t, convertErr(nil, "noop"))

	err := convertErr(pgx.ErrNoRows, "finding order %d", 7)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "[repository/finding order 7]")

	err = convertErr(&pgconn.PgError{Code: uniqueViolationCode}, "creating offer")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	err = convertErr(&pgconn.PgError{Code: foreignKeyViolationCode}, "creating order")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	err = convertErr(&pgconn.PgError{Code: "23514", Message: "balance check"}, "changing balance")
	assert.ErrorIs(t, err, domain.ErrUnknown)
	assert.Contains(t, err.Error(), "balance check")

	err = convertErr(&pgconn.PgError{Code: "40P01"}, "locking order")
	assert.ErrorIs(t, err, domain.ErrUnknown)
	assert.True(t, uow.Retryable(err), "код postgres должен остаться доступным для повтора транзакции")

	err = convertErr(errors.New("conn reset"), "listing")
	assert.ErrorIs(t, err, domain.ErrUnknown)
}
