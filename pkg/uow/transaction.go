package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction выдает репозитории, работающие внутри одной pgx.Tx.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	tx        pgx.Tx
	instances map[RepositoryName]Repository
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		tx:        tx,
		instances: make(map[RepositoryName]Repository, len(factories)),
	}
}

// Get возвращает репозиторий name. В пределах транзакции экземпляр создается один раз.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.instances[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
	}
	repo := factory(t.tx)
	t.instances[name] = repo
	return repo, nil
}

// GetAs то же, что TX.Get, с приведением к T.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var zero T
	repo, err := t.Get(name)
	if err != nil {
		return zero, err //nolint:wrapcheck
	}
	typed, ok := repo.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrInvalidRepositoryType, name, repo)
	}
	return typed, nil
}
