package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

// коды postgres, после которых транзакцию можно безопасно повторить целиком.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

const defaultMaxAttempts = 3

type noRetryKey struct{}

// WithoutRetry помечает ctx так, что Do выполняет fn ровно один раз. Нужен, когда fn обращается
// к внешним системам.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func retryDisabled(ctx context.Context) bool {
	v, _ := ctx.Value(noRetryKey{}).(bool)
	return v
}

type UnitOfWork struct {
	conn         *pgxpool.Pool
	repositories map[RepositoryName]RepositoryFactory
	txOptions    pgx.TxOptions
	maxAttempts  int
}

// NewUnitOfWork создает UnitOfWork. Транзакции по умолчанию выполняются с уровнем изоляции READ COMMITTED,
// проверки состояния внутри fn должны перечитывать строки с блокировкой (SELECT ... FOR UPDATE).
func NewUnitOfWork(conn *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		maxAttempts:  defaultMaxAttempts,
	}
}

// SetIsoLevel устанавливает уровень изоляции транзакций.
func (u *UnitOfWork) SetIsoLevel(level pgx.TxIsoLevel) *UnitOfWork {
	u.txOptions.IsoLevel = level
	return u
}

// SetMaxAttempts ограничивает число попыток транзакции при конфликтах сериализации и дедлоках.
func (u *UnitOfWork) SetMaxAttempts(n int) *UnitOfWork {
	if n > 0 {
		u.maxAttempts = n
	}
	return u
}

// Register добавляет фабрику репозитория под именем name. Повторная регистрация имени дает
// ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return fmt.Errorf("%w: %s", ErrRepositoryAlreadyRegistered, name)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет fn в транзакции. Ошибка или паника внутри fn откатывают транзакцию. При конфликте
// сериализации или дедлоке fn выполняется заново в новой транзакции, если ctx не помечен WithoutRetry.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	attempts := u.maxAttempts
	if retryDisabled(ctx) {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = u.runTx(ctx, fn)
		if !Retryable(err) || ctx.Err() != nil || attempts == 1 {
			return err
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrTooManyAttempts, attempts, err)
}

//nolint:nonamedreturns
func (u *UnitOfWork) runTx(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return fmt.Errorf("begin tx: %w", txErr)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicInTransaction, r)
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rbErr)
		}
	}()

	if err = fn(ctx, NewTransaction(tx, u.repositories)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Retryable сообщает, что err вызвана конфликтом параллельных транзакций.
func Retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

// GetRepository возвращает репозиторий, работающий с пулом вне транзакции.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	factory, ok := u.repositories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
	}
	return factory(u.conn), nil
}

// GetRepositoryAs то же, что GetRepository, с приведением к T.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var zero T
	repo, err := u.GetRepository(name)
	if err != nil {
		return zero, err //nolint:wrapcheck
	}
	typed, ok := repo.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrInvalidRepositoryType, name, repo)
	}
	return typed, nil
}
