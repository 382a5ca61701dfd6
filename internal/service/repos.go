package service

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
)

// repos набор репозиториев, полученных из одного источника: транзакции или соединения вне транзакции.
type repos struct {
	users      UserRepository
	orders     OrderRepository
	offers     OfferRepository
	ledger     LedgerRepository
	settings   SettingRepository
	reviews    ReviewRepository
	chat       ChatMessageRepository
	deposits   DepositRepository
	categories CategoryRepository
}

type repoGetter func(name uow.RepositoryName) (uow.Repository, error)

func repoAs[T any](get repoGetter, name repoargs.RepositoryName) (T, error) {
	var res T
	repo, err := get(uow.RepositoryName(name))
	if err != nil {
		return res, fmt.Errorf("getting repository `%s`: %w", name, err)
	}
	res, ok := repo.(T)
	if !ok {
		return res, fmt.Errorf("getting repository `%s`: %w", name, uow.ErrInvalidRepositoryType)
	}
	return res, nil
}

func loadRepos(get repoGetter) (*repos, error) {
	var r repos
	var err error
	if r.users, err = repoAs[UserRepository](get, repoargs.UserRepoName); err != nil {
		return nil, err
	}
	if r.orders, err = repoAs[OrderRepository](get, repoargs.OrderRepoName); err != nil {
		return nil, err
	}
	if r.offers, err = repoAs[OfferRepository](get, repoargs.OfferRepoName); err != nil {
		return nil, err
	}
	if r.ledger, err = repoAs[LedgerRepository](get, repoargs.LedgerRepoName); err != nil {
		return nil, err
	}
	if r.settings, err = repoAs[SettingRepository](get, repoargs.SettingRepoName); err != nil {
		return nil, err
	}
	if r.reviews, err = repoAs[ReviewRepository](get, repoargs.ReviewRepoName); err != nil {
		return nil, err
	}
	if r.chat, err = repoAs[ChatMessageRepository](get, repoargs.ChatMessageRepoName); err != nil {
		return nil, err
	}
	if r.deposits, err = repoAs[DepositRepository](get, repoargs.DepositRepoName); err != nil {
		return nil, err
	}
	if r.categories, err = repoAs[CategoryRepository](get, repoargs.CategoryRepoName); err != nil {
		return nil, err
	}
	return &r, nil
}

// txRepos возвращает репозитории, привязанные к транзакции tx.
func txRepos(tx uow.TX) (*repos, error) {
	return loadRepos(tx.Get)
}

// orNotFound превращает domain.ErrRecordNotFound из репозитория в отказ вида domain.ErrNotFound.
func orNotFound(err error, format string, args ...any) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Reject(domain.ErrNotFound, format, args...)
	}
	return err
}
