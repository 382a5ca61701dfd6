package memrepo

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) GetOrCreate(_ context.Context, args repoargs.CreateUser) (*domain.User, bool, error) {
	var user domain.User
	var created bool
	err := r.s.write(func(d *state) error {
		if existing, ok := d.users[args.ID]; ok {
			user = existing
			return nil
		}
		now := r.s.now()
		user = domain.User{
			ID:        args.ID,
			CreatedAt: now,
			UpdatedAt: now,
			Username:  args.Username,
			Balance:   decimal.Zero,
			Rating:    decimal.NewFromInt(5), //nolint:mnd
		}
		d.users[args.ID] = user
		created = true
		return nil
	})
	return &user, created, err
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.s.read(func(d *state) error {
		u, ok := d.users[id]
		if !ok {
			return notFound("finding user %d", id)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	return r.FindByID(ctx, id)
}

func (r *UserRepository) update(id int64, fn func(u *domain.User) error) (*domain.User, error) {
	var user domain.User
	err := r.s.write(func(d *state) error {
		u, ok := d.users[id]
		if !ok {
			return notFound("updating user %d", id)
		}
		if err := fn(&u); err != nil {
			return err
		}
		u.UpdatedAt = r.s.now()
		d.users[id] = u
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) AddBalance(_ context.Context, id int64, delta decimal.Decimal) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error {
		next := u.Balance.Add(delta)
		if next.IsNegative() {
			return fmt.Errorf("[memrepo/changing balance of user %d] %w: balance check violated", id,
				domain.ErrUnknown)
		}
		u.Balance = next
		return nil
	})
}

func (r *UserRepository) SetBlocked(_ context.Context, id int64, blocked bool) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error {
		u.Blocked = blocked
		return nil
	})
}

func (r *UserRepository) SetWalletAddress(_ context.Context, id int64, address string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error {
		u.WalletAddress = address
		return nil
	})
}

func (r *UserRepository) SetVIPUntil(_ context.Context, id int64, until time.Time) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error {
		u.VIPUntil = &until
		return nil
	})
}

func (r *UserRepository) UpdateRating(_ context.Context, id int64, rating decimal.Decimal, reviewsCount int) error {
	_, err := r.update(id, func(u *domain.User) error {
		u.Rating = rating
		u.ReviewsCount = reviewsCount
		return nil
	})
	return err
}

func (r *UserRepository) ListWithWallets(_ context.Context, afterID int64, limit uint) ([]domain.User, error) {
	var res []domain.User
	err := r.s.read(func(d *state) error {
		for _, u := range sortedUsers(d) {
			if u.WalletAddress != "" && u.ID > afterID {
				res = append(res, u)
			}
		}
		return nil
	})
	if len(res) > int(limit) {
		res = res[:limit]
	}
	return res, err
}

func (r *UserRepository) List(_ context.Context, p repoargs.Page) ([]domain.User, error) {
	var res []domain.User
	err := r.s.read(func(d *state) error {
		res = page(sortedUsers(d), p)
		return nil
	})
	return res, err
}

func sortedUsers(d *state) []domain.User {
	users := make([]domain.User, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

type OrderRepository struct {
	s *Store
}

func (r *OrderRepository) Create(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	var order domain.Order
	err := r.s.write(func(d *state) error {
		if _, ok := d.users[args.CustomerID]; !ok {
			return notFound("creating order for customer %d", args.CustomerID)
		}
		if !slices.ContainsFunc(d.categories, func(c domain.Category) bool { return c.ID == args.CategoryID }) {
			return notFound("creating order in category %d", args.CategoryID)
		}
		now := r.s.now()
		order = domain.Order{
			ID:          d.nextID(),
			CreatedAt:   now,
			UpdatedAt:   now,
			Title:       args.Title,
			Description: args.Description,
			Price:       args.Price,
			Status:      domain.OrderStatusOpen,
			CustomerID:  args.CustomerID,
			CategoryID:  args.CategoryID,
		}
		d.orders[order.ID] = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	err := r.s.read(func(d *state) error {
		o, ok := d.orders[id]
		if !ok {
			return notFound("finding order %d", id)
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *OrderRepository) UpdateStatus(_ context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	var order domain.Order
	err := r.s.write(func(d *state) error {
		o, ok := d.orders[args.ID]
		if !ok || o.Status != args.From {
			return notFound("moving order %d from %s to %s", args.ID, args.From, args.To)
		}
		o.Status = args.To
		if args.ExecutorID != nil {
			executorID := *args.ExecutorID
			o.ExecutorID = &executorID
		}
		o.UpdatedAt = r.s.now()
		d.orders[o.ID] = o
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) filter(fn func(o domain.Order) bool) []domain.Order {
	var res []domain.Order
	_ = r.s.read(func(d *state) error {
		for _, o := range d.orders {
			if fn(o) {
				res = append(res, o)
			}
		}
		return nil
	})
	// новые первыми
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res
}

func (r *OrderRepository) ListOpen(_ context.Context, excludeCustomerID int64, p repoargs.Page) ([]domain.Order, error) {
	return page(r.filter(func(o domain.Order) bool {
		return o.Status == domain.OrderStatusOpen && o.CustomerID != excludeCustomerID
	}), p), nil
}

func (r *OrderRepository) ListByCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *OrderRepository) ListByExecutor(_ context.Context, executorID int64) ([]domain.Order, error) {
	return r.filter(func(o domain.Order) bool { return o.IsExecutor(executorID) }), nil
}

func (r *OrderRepository) List(
	_ context.Context,
	status domain.OrderStatusType,
	p repoargs.Page,
) ([]domain.Order, error) {
	return page(r.filter(func(o domain.Order) bool { return status == "" || o.Status == status }), p), nil
}

type OfferRepository struct {
	s *Store
}

func (r *OfferRepository) Create(_ context.Context, args repoargs.CreateOffer) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.s.write(func(d *state) error {
		for _, o := range d.offers {
			if o.OrderID == args.OrderID && o.ExecutorID == args.ExecutorID {
				return duplicate("creating offer of executor %d for order %d", args.ExecutorID, args.OrderID)
			}
		}
		offer = domain.Offer{
			ID:         d.nextID(),
			CreatedAt:  r.s.now(),
			OrderID:    args.OrderID,
			ExecutorID: args.ExecutorID,
			Message:    args.Message,
		}
		d.offers = append(d.offers, offer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) find(fn func(o domain.Offer) bool, format string, args ...any) (*domain.Offer, error) {
	var offer *domain.Offer
	_ = r.s.read(func(d *state) error {
		if i := slices.IndexFunc(d.offers, fn); i >= 0 {
			o := d.offers[i]
			offer = &o
		}
		return nil
	})
	if offer == nil {
		return nil, notFound(format, args...)
	}
	return offer, nil
}

func (r *OfferRepository) FindByID(_ context.Context, id int64) (*domain.Offer, error) {
	return r.find(func(o domain.Offer) bool { return o.ID == id }, "finding offer %d", id)
}

func (r *OfferRepository) FindByOrderAndExecutor(_ context.Context, orderID, executorID int64) (*domain.Offer, error) {
	return r.find(func(o domain.Offer) bool {
		return o.OrderID == orderID && o.ExecutorID == executorID
	}, "finding offer of executor %d for order %d", executorID, orderID)
}

func (r *OfferRepository) ListByOrder(_ context.Context, orderID int64) ([]domain.Offer, error) {
	var res []domain.Offer
	err := r.s.read(func(d *state) error {
		for _, o := range d.offers {
			if o.OrderID == orderID {
				res = append(res, o)
			}
		}
		return nil
	})
	return res, err
}

type LedgerRepository struct {
	s *Store
}

func (r *LedgerRepository) Create(_ context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := r.s.write(func(d *state) error {
		if _, ok := d.users[args.UserID]; !ok {
			return notFound("creating ledger entry for user %d", args.UserID)
		}
		entry = domain.LedgerEntry{
			ID:        d.nextID(),
			CreatedAt: r.s.now(),
			UserID:    args.UserID,
			Amount:    args.Amount,
			Kind:      args.Kind,
		}
		if args.OrderID != nil {
			orderID := *args.OrderID
			entry.OrderID = &orderID
		}
		d.ledger = append(d.ledger, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *LedgerRepository) ListByUser(_ context.Context, userID int64, p repoargs.Page) ([]domain.LedgerEntry, error) {
	var res []domain.LedgerEntry
	err := r.s.read(func(d *state) error {
		for i := len(d.ledger) - 1; i >= 0; i-- {
			if d.ledger[i].UserID == userID {
				res = append(res, d.ledger[i])
			}
		}
		return nil
	})
	return page(res, p), err
}

func (r *LedgerRepository) ListByOrder(_ context.Context, orderID int64) ([]domain.LedgerEntry, error) {
	var res []domain.LedgerEntry
	err := r.s.read(func(d *state) error {
		for _, e := range d.ledger {
			if e.OrderID != nil && *e.OrderID == orderID {
				res = append(res, e)
			}
		}
		return nil
	})
	return res, err
}

func (r *LedgerRepository) SumByUser(_ context.Context, userID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.s.read(func(d *state) error {
		for _, e := range d.ledger {
			if e.UserID == userID {
				sum = sum.Add(e.Amount)
			}
		}
		return nil
	})
	return sum, err
}

type SettingRepository struct {
	s *Store
}

func (r *SettingRepository) Get(_ context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.s.read(func(d *state) error {
		s, ok := d.settings[key]
		if !ok {
			return notFound("getting setting `%s`", key)
		}
		setting = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Upsert(_ context.Context, key, value string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.s.write(func(d *state) error {
		setting = d.settings[key]
		setting.Key = key
		setting.Value = value
		setting.Version++
		setting.UpdatedAt = r.s.now()
		d.settings[key] = setting
		return nil
	})
	return &setting, err
}

type ReviewRepository struct {
	s *Store
}

func (r *ReviewRepository) Create(_ context.Context, args repoargs.CreateReview) (*domain.Review, error) {
	var review domain.Review
	err := r.s.write(func(d *state) error {
		for _, rv := range d.reviews {
			if rv.OrderID == args.OrderID && rv.ReviewerID == args.ReviewerID {
				return duplicate("creating review of user %d for order %d", args.ReviewerID, args.OrderID)
			}
		}
		review = domain.Review{
			ID:         d.nextID(),
			CreatedAt:  r.s.now(),
			OrderID:    args.OrderID,
			ReviewerID: args.ReviewerID,
			RevieweeID: args.RevieweeID,
			Rating:     args.Rating,
			Text:       args.Text,
		}
		d.reviews = append(d.reviews, review)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListByReviewee(
	_ context.Context,
	revieweeID int64,
	p repoargs.Page,
) ([]domain.Review, error) {
	var res []domain.Review
	err := r.s.read(func(d *state) error {
		for i := len(d.reviews) - 1; i >= 0; i-- {
			if d.reviews[i].RevieweeID == revieweeID {
				res = append(res, d.reviews[i])
			}
		}
		return nil
	})
	return page(res, p), err
}

type ChatMessageRepository struct {
	s *Store
}

func (r *ChatMessageRepository) Create(
	_ context.Context,
	args repoargs.CreateChatMessage,
) (*domain.ChatMessage, error) {
	var msg domain.ChatMessage
	err := r.s.write(func(d *state) error {
		msg = domain.ChatMessage{
			ID:            d.nextID(),
			CreatedAt:     r.s.now(),
			OrderID:       args.OrderID,
			SenderID:      args.SenderID,
			ContentKind:   args.ContentKind,
			Text:          args.Text,
			AttachmentRef: args.AttachmentRef,
		}
		d.chat = append(d.chat, msg)
		return nil
	})
	return &msg, err
}

func (r *ChatMessageRepository) ListByOrder(_ context.Context, orderID int64) ([]domain.ChatMessage, error) {
	var res []domain.ChatMessage
	err := r.s.read(func(d *state) error {
		for _, m := range d.chat {
			if m.OrderID == orderID {
				res = append(res, m)
			}
		}
		return nil
	})
	return res, err
}

type DepositRepository struct {
	s *Store
}

func (r *DepositRepository) MarkProcessed(_ context.Context, args repoargs.CreateDeposit) (bool, error) {
	var isNew bool
	err := r.s.write(func(d *state) error {
		if _, ok := d.deposits[args.TxID]; ok {
			return nil
		}
		d.deposits[args.TxID] = domain.Deposit{
			TxID:      args.TxID,
			CreatedAt: r.s.now(),
			UserID:    args.UserID,
			Amount:    args.Amount,
		}
		isNew = true
		return nil
	})
	return isNew, err
}

type CategoryRepository struct {
	s *Store
}

func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	var res []domain.Category
	err := r.s.read(func(d *state) error {
		res = slices.Clone(d.categories)
		return nil
	})
	return res, err
}

func (r *CategoryRepository) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	var category *domain.Category
	_ = r.s.read(func(d *state) error {
		if i := slices.IndexFunc(d.categories, func(c domain.Category) bool { return c.ID == id }); i >= 0 {
			c := d.categories[i]
			category = &c
		}
		return nil
	})
	if category == nil {
		return nil, notFound("finding category %d", id)
	}
	return category, nil
}
