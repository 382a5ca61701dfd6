package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/pkg/uow"
)

type SettingRepository struct {
	conn uow.DBTX
}

func NewSettingRepository(conn uow.DBTX) *SettingRepository {
	return &SettingRepository{conn: conn}
}

func (s *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := s.conn.QueryRow(ctx, `SELECT key, value, version, updated_at FROM settings WHERE key = $1`, key).
		Scan(&setting.Key, &setting.Value, &setting.Version, &setting.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting setting `%s`", key)
	}
	return &setting, nil
}

// Upsert записывает значение настройки и увеличивает ее версию.
func (s *SettingRepository) Upsert(ctx context.Context, key, value string) (*domain.Setting, error) {
	var setting domain.Setting
	err := s.conn.QueryRow(ctx, `INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, version = settings.version + 1, updated_at = now()
		RETURNING key, value, version, updated_at`, key, value).
		Scan(&setting.Key, &setting.Value, &setting.Version, &setting.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "upserting setting `%s`", key)
	}
	return &setting, nil
}
