package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts   uint = 30
	connectRetryInterval      = 3 * time.Second

	minPoolConns    int32 = 10
	poolMaxIdleTime       = 5 * time.Minute
)

// Connect подключается к postgres, повторяя попытки пока база недоступна, и применяет миграции из migrationsDir.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var attempts uint
	for {
		conn, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			version, err := applyMigrations(migrationsDir, dsn)
			if err != nil {
				conn.Close()
				return nil, err
			}
			l.WithField("schema_version", version).Info("postgres is ready")
			return conn, nil
		}

		attempts++
		if attempts >= connectMaxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", attempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, connectMaxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryInterval.Seconds())

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("init postgres connection: %w", ctx.Err())
		case <-time.After(connectRetryInterval):
		}
	}
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", confErr)
	}
	if poolConfig.MaxConns < minPoolConns {
		poolConfig.MaxConns = minPoolConns
	}
	poolConfig.MaxConnIdleTime = poolMaxIdleTime

	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("create postgres pool: %w", poolErr)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", poolConfig.ConnConfig.Host, pingErr)
	}
	return pool, nil
}

// applyMigrations поднимает схему до последней версии из dir и возвращает текущую версию.
func applyMigrations(dir string, dsn string) (uint, error) {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return 0, fmt.Errorf("open migrations %s: %w", dir, err)
	}
	defer m.Close()

	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", upErr)
	}
	version, dirty, vErr := m.Version()
	if errors.Is(vErr, migrate.ErrNilVersion) {
		return 0, nil
	}
	if vErr != nil {
		return 0, fmt.Errorf("read schema version: %w", vErr)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
