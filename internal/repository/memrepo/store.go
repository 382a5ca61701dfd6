// Package memrepo реализует репозитории и unit of work в памяти процесса. Транзакции выполняются
// последовательно, при ошибке состояние откатывается к снимку, сделанному в начале транзакции.
package memrepo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
)

type state struct {
	users      map[int64]domain.User
	orders     map[int64]domain.Order
	offers     []domain.Offer
	ledger     []domain.LedgerEntry
	settings   map[string]domain.Setting
	reviews    []domain.Review
	chat       []domain.ChatMessage
	deposits   map[string]domain.Deposit
	categories []domain.Category
	seq        int64
}

func (s *state) clone() *state {
	return &state{
		users:      maps.Clone(s.users),
		orders:     maps.Clone(s.orders),
		offers:     slices.Clone(s.offers),
		ledger:     slices.Clone(s.ledger),
		settings:   maps.Clone(s.settings),
		reviews:    slices.Clone(s.reviews),
		chat:       slices.Clone(s.chat),
		deposits:   maps.Clone(s.deposits),
		categories: slices.Clone(s.categories),
		seq:        s.seq,
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store хранилище в памяти. Реализует uow.UOW.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *state
	now  func() time.Time
}

var _ uow.UOW = (*Store)(nil)

// New создает пустое хранилище с категориями categories.
func New(categories ...string) *Store {
	s := &Store{
		data: &state{
			users:    make(map[int64]domain.User),
			orders:   make(map[int64]domain.Order),
			settings: make(map[string]domain.Setting),
			deposits: make(map[string]domain.Deposit),
		},
		now: time.Now,
	}
	for _, name := range categories {
		s.data.categories = append(s.data.categories, domain.Category{ID: s.data.nextID(), Name: name})
	}
	return s
}

// Register ничего не делает: все репозитории хранилища доступны без регистрации.
func (s *Store) Register(_ uow.RepositoryName, _ uow.RepositoryFactory) error {
	return nil
}

// Do выполняет fn эксклюзивно. Ошибка fn откатывает все изменения, сделанные внутри.
func (s *Store) Do(ctx context.Context, fn func(context.Context, uow.TX) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", uow.ErrPanicInTransaction, r)
		}
		if err != nil {
			s.mu.Lock()
			s.data = snapshot
			s.mu.Unlock()
		}
	}()

	return fn(ctx, tx{store: s})
}

func (s *Store) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return s.repository(name)
}

func (s *Store) repository(name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &UserRepository{s: s}, nil
	case repoargs.OrderRepoName:
		return &OrderRepository{s: s}, nil
	case repoargs.OfferRepoName:
		return &OfferRepository{s: s}, nil
	case repoargs.LedgerRepoName:
		return &LedgerRepository{s: s}, nil
	case repoargs.SettingRepoName:
		return &SettingRepository{s: s}, nil
	case repoargs.ReviewRepoName:
		return &ReviewRepository{s: s}, nil
	case repoargs.ChatMessageRepoName:
		return &ChatMessageRepository{s: s}, nil
	case repoargs.DepositRepoName:
		return &DepositRepository{s: s}, nil
	case repoargs.CategoryRepoName:
		return &CategoryRepository{s: s}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

type tx struct {
	store *Store
}

func (t tx) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.store.repository(name)
}

// read выполняет fn под блокировкой на чтение.
func (s *Store) read(fn func(d *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// write выполняет fn под эксклюзивной блокировкой.
func (s *Store) write(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicate(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}

func page[T any](items []T, p repoargs.Page) []T {
	limit := int(p.Limit)
	if limit == 0 {
		limit = 50
	}
	offset := int(p.Offset)
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
