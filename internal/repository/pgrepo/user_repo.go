package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, username, balance, wallet_address, blocked, rating,
	reviews_count, vip_until`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// GetOrCreate возвращает пользователя по ID, создавая его при первом обращении. Второе значение true,
// если пользователь был создан.
func (u *UserRepository) GetOrCreate(ctx context.Context, args repoargs.CreateUser) (*domain.User, bool, error) {
	row := u.conn.QueryRow(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING RETURNING `+userColumns, args.ID, args.Username)
	user, err := scanUser(row)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, convertErr(err, "creating user %d", args.ID)
	}
	user, err = u.FindByID(ctx, args.ID)
	if err != nil {
		return nil, false, err
	}
	return user, false, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user %d", id)
	}
	return user, nil
}

// FindByIDForUpdate читает пользователя с блокировкой строки до конца транзакции.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user %d", id)
	}
	return user, nil
}

// AddBalance изменяет баланс на delta. Отрицательный итог отклоняется ограничением таблицы.
func (u *UserRepository) AddBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `UPDATE users SET balance = balance + $2, updated_at = now()
		WHERE id = $1 RETURNING `+userColumns, id, delta)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing balance of user %d by %s", id, delta)
	}
	return user, nil
}

func (u *UserRepository) SetBlocked(ctx context.Context, id int64, blocked bool) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `UPDATE users SET blocked = $2, updated_at = now()
		WHERE id = $1 RETURNING `+userColumns, id, blocked)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting blocked=%t for user %d", blocked, id)
	}
	return user, nil
}

func (u *UserRepository) SetWalletAddress(ctx context.Context, id int64, address string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `UPDATE users SET wallet_address = $2, updated_at = now()
		WHERE id = $1 RETURNING `+userColumns, id, address)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting wallet address for user %d", id)
	}
	return user, nil
}

func (u *UserRepository) SetVIPUntil(ctx context.Context, id int64, until time.Time) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `UPDATE users SET vip_until = $2, updated_at = now()
		WHERE id = $1 RETURNING `+userColumns, id, until)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting vip for user %d", id)
	}
	return user, nil
}

func (u *UserRepository) UpdateRating(ctx context.Context, id int64, rating decimal.Decimal, reviewsCount int) error {
	tag, err := u.conn.Exec(ctx, `UPDATE users SET rating = $2, reviews_count = $3, updated_at = now()
		WHERE id = $1`, id, rating, reviewsCount)
	if err != nil {
		return convertErr(err, "updating rating of user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating rating of user %d", id)
	}
	return nil
}

// ListWithWallets возвращает пользователей с выданным адресом для депозита, ID которых больше afterID.
func (u *UserRepository) ListWithWallets(ctx context.Context, afterID int64, limit uint) ([]domain.User, error) {
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users
		WHERE wallet_address <> '' AND id > $1 ORDER BY id LIMIT $2`, afterID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "listing users with wallets after %d", afterID)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, convertErr(err, "scanning users with wallets")
	}
	return users, nil
}

func (u *UserRepository) List(ctx context.Context, p repoargs.Page) ([]domain.User, error) {
	limit, offset := pageBounds(p)
	rows, err := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, convertErr(err, "scanning users")
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Balance,
		&user.WalletAddress,
		&user.Blocked,
		&user.Rating,
		&user.ReviewsCount,
		&user.VIPUntil,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
