package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr приводит ошибку драйвера к ошибкам слоя репозитория.
//   - pgx.ErrNoRows превращается в domain.ErrRecordNotFound.
//   - Нарушение уникальности превращается в domain.ErrDuplicateKey.
//   - Нарушение внешнего ключа превращается в domain.ErrRecordNotFound: ссылка на несуществующую запись.
//   - Остальное возвращается как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %w", msg, errType, err)
}
