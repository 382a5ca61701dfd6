package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DailyLimits дневные лимиты действий для пользователей без VIP статуса. 0 означает отсутствие лимита.
type DailyLimits struct {
	Orders int64
	Offers int64
}

// OrderService машина состояний заказа. Каждый переход выполняется в одной транзакции: условие перехода
// перечитывается с блокировкой строки, а смена статуса выполняется как compare-and-set.
type OrderService struct {
	uow      uow.UOW
	repos    *repos
	auth     *Authorizer
	settings *SettingsService
	notify   *notifications
	limiter  RateLimiter
	limits   DailyLimits
	l        *logrus.Entry
	now      func() time.Time
}

type OrderServiceArgs struct {
	UOW      uow.UOW
	Auth     *Authorizer
	Settings *SettingsService
	Notifier Notifier
	Limiter  RateLimiter
	Limits   DailyLimits
	Logger   *logrus.Logger
}

func NewOrderService(args OrderServiceArgs) (*OrderService, error) {
	r, err := loadRepos(args.UOW.GetRepository)
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:      args.UOW,
		repos:    r,
		auth:     args.Auth,
		settings: args.Settings,
		notify:   newNotifications(args.Notifier, args.Logger),
		limiter:  args.Limiter,
		limits:   args.Limits,
		l: args.Logger.WithFields(logrus.Fields{
			"component": "service",
			"module":    "orders",
		}),
		now: time.Now,
	}, nil
}

type CreateOrderArgs struct {
	CustomerID  int64
	CategoryID  int64
	Title       string
	Description string
	Price       decimal.Decimal
}

// Create создает заказ в статусе open. При цене больше нуля сумма резервируется: списывается с баланса
// заказчика с записью order_payment.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	if err := validateOrder(args); err != nil {
		return nil, err
	}
	if err := o.checkDailyLimit(ctx, "orders", args.CustomerID, o.limits.Orders); err != nil {
		return nil, err
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		customer, err := r.users.FindByIDForUpdate(c, args.CustomerID)
		if err != nil {
			return orNotFound(err, "user %d not found", args.CustomerID)
		}
		if customer.Blocked {
			return domain.Reject(domain.ErrNotAuthorized, "user is blocked")
		}
		if _, err = r.categories.FindByID(c, args.CategoryID); err != nil {
			return orNotFound(err, "category %d not found", args.CategoryID)
		}
		if err = ensureFunds(customer, args.Price); err != nil {
			return err
		}

		order, err = r.orders.Create(c, repoargs.CreateOrder{
			Title:       args.Title,
			Description: args.Description,
			Price:       args.Price,
			CustomerID:  args.CustomerID,
			CategoryID:  args.CategoryID,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if args.Price.IsPositive() {
			if _, err = postEntry(c, r, args.CustomerID, args.Price.Neg(), domain.LedgerKindOrderPayment,
				&order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating order: %w", txErr)
	}
	return order, nil
}

func validateOrder(args CreateOrderArgs) error {
	if strings.TrimSpace(args.Title) == "" {
		return domain.Reject(domain.ErrInvalidArgument, "title must not be empty")
	}
	if utf8.RuneCountInString(args.Title) > domain.MaxOrderTitleLength {
		return domain.Reject(domain.ErrInvalidArgument, "title must be at most %d characters",
			domain.MaxOrderTitleLength)
	}
	if args.Price.IsNegative() {
		return domain.Reject(domain.ErrInvalidArgument, "price must not be negative")
	}
	if !args.Price.Equal(domain.NormalizeMoney(args.Price)) {
		return domain.Reject(domain.ErrInvalidArgument, "price must have at most %d decimal places",
			domain.MoneyPlaces)
	}
	return nil
}

type SubmitOfferArgs struct {
	OrderID    int64
	ExecutorID int64
	Message    string
}

// SubmitOffer добавляет отклик исполнителя на открытый заказ. Один исполнитель может откликнуться на заказ
// только один раз.
func (o *OrderService) SubmitOffer(ctx context.Context, args SubmitOfferArgs) (*domain.Offer, error) {
	if err := o.checkDailyLimit(ctx, "offers", args.ExecutorID, o.limits.Offers); err != nil {
		return nil, err
	}

	var offer *domain.Offer
	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		executor, err := r.users.FindByID(c, args.ExecutorID)
		if err != nil {
			return orNotFound(err, "user %d not found", args.ExecutorID)
		}
		if executor.Blocked {
			return domain.Reject(domain.ErrNotAuthorized, "user is blocked")
		}
		order, err = r.orders.FindByIDForUpdate(c, args.OrderID)
		if err != nil {
			return orNotFound(err, "order %d not found", args.OrderID)
		}
		if order.CustomerID == args.ExecutorID {
			return domain.Reject(domain.ErrNotAuthorized, "cannot make an offer on own order")
		}
		if order.Status != domain.OrderStatusOpen {
			return invalidTransition(order, "offer")
		}
		_, findErr := r.offers.FindByOrderAndExecutor(c, args.OrderID, args.ExecutorID)
		switch {
		case findErr == nil:
			return domain.Reject(domain.ErrDuplicateOffer, "offer for order %d already submitted", args.OrderID)
		case !errors.Is(findErr, domain.ErrRecordNotFound):
			return findErr //nolint:wrapcheck
		}
		offer, err = r.offers.Create(c, repoargs.CreateOffer{
			OrderID:    args.OrderID,
			ExecutorID: args.ExecutorID,
			Message:    args.Message,
		})
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.Reject(domain.ErrDuplicateOffer, "offer for order %d already submitted", args.OrderID)
		}
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("submitting offer: %w", txErr)
	}

	o.notify.send(ctx, order.CustomerID, "Новый отклик на заказ #%d «%s»: %s", order.ID, order.Title, offer.Message)
	return offer, nil
}

// SelectOffer назначает исполнителя отклика offerID. Доступно только заказчику открытого заказа.
func (o *OrderService) SelectOffer(ctx context.Context, customerID, offerID int64) (*domain.Order, error) {
	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		offer, err := r.offers.FindByID(c, offerID)
		if err != nil {
			return orNotFound(err, "offer %d not found", offerID)
		}
		current, err := r.orders.FindByIDForUpdate(c, offer.OrderID)
		if err != nil {
			return orNotFound(err, "order %d not found", offer.OrderID)
		}
		if current.CustomerID != customerID {
			return domain.Reject(domain.ErrNotAuthorized, "only the customer can select an offer")
		}
		order, err = o.transition(c, r, current, domain.OrderStatusOpen, domain.OrderStatusInProgress,
			&offer.ExecutorID)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("selecting offer: %w", txErr)
	}

	o.notify.send(ctx, *order.ExecutorID, "Вас выбрали исполнителем заказа #%d «%s»", order.ID, order.Title)
	return order, nil
}

// SubmitWork переводит заказ в ожидание приемки. Доступно только исполнителю.
func (o *OrderService) SubmitWork(ctx context.Context, executorID, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		current, err := r.orders.FindByIDForUpdate(c, orderID)
		if err != nil {
			return orNotFound(err, "order %d not found", orderID)
		}
		if !current.IsExecutor(executorID) {
			return domain.Reject(domain.ErrNotAuthorized, "only the executor can submit work")
		}
		order, err = o.transition(c, r, current, domain.OrderStatusInProgress, domain.OrderStatusPendingApproval, nil)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("submitting work: %w", txErr)
	}

	o.notify.send(ctx, order.CustomerID, "Исполнитель сдал работу по заказу #%d «%s»", order.ID, order.Title)
	return order, nil
}

// Payout результат приемки работы.
type Payout struct {
	Order      *domain.Order
	Commission decimal.Decimal
	Reward     decimal.Decimal
	Rate       CommissionRate
}

// AcceptWork завершает заказ и выплачивает исполнителю цену за вычетом комиссии. Ставка комиссии
// читается внутри транзакции выплаты.
func (o *OrderService) AcceptWork(ctx context.Context, customerID, orderID int64) (*Payout, error) {
	var payout Payout
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		current, err := r.orders.FindByIDForUpdate(c, orderID)
		if err != nil {
			return orNotFound(err, "order %d not found", orderID)
		}
		if current.CustomerID != customerID {
			return domain.Reject(domain.ErrNotAuthorized, "only the customer can accept work")
		}
		order, err := o.transition(c, r, current, domain.OrderStatusPendingApproval, domain.OrderStatusCompleted, nil)
		if err != nil {
			return err
		}
		rate, err := o.settings.commissionRate(c, r.settings)
		if err != nil {
			return err
		}

		payout = Payout{
			Order:      order,
			Commission: domain.Commission(order.Price, rate.Percent),
			Rate:       *rate,
		}
		payout.Reward = order.Price.Sub(payout.Commission)
		if payout.Reward.IsPositive() {
			if _, err = credit(c, r, *order.ExecutorID, payout.Reward, domain.LedgerKindOrderReward,
				&order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("accepting work: %w", txErr)
	}

	o.l.WithFields(logrus.Fields{
		"order":          payout.Order.ID,
		"commission":     payout.Commission.String(),
		"reward":         payout.Reward.String(),
		"rate":           payout.Rate.Percent.String(),
		"settingVersion": payout.Rate.Version,
	}).Info("order completed")
	o.notify.send(ctx, *payout.Order.ExecutorID, "Заказ #%d принят. Начислено %s",
		payout.Order.ID, payout.Reward.StringFixed(domain.MoneyPlaces))
	return &payout, nil
}

// OpenDispute открывает спор по заказу в работе или на приемке. Доступно только заказчику.
func (o *OrderService) OpenDispute(ctx context.Context, customerID, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		current, err := r.orders.FindByIDForUpdate(c, orderID)
		if err != nil {
			return orNotFound(err, "order %d not found", orderID)
		}
		if current.CustomerID != customerID {
			return domain.Reject(domain.ErrNotAuthorized, "only the customer can open a dispute")
		}
		switch current.Status {
		case domain.OrderStatusInProgress, domain.OrderStatusPendingApproval:
		default:
			return invalidTransition(current, "dispute")
		}
		order, err = o.transition(c, r, current, current.Status, domain.OrderStatusDispute, nil)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("opening dispute: %w", txErr)
	}

	o.notify.send(ctx, *order.ExecutorID, "Заказчик открыл спор по заказу #%d «%s»", order.ID, order.Title)
	for _, adminID := range o.auth.AdminIDs() {
		o.notify.send(ctx, adminID, "Открыт спор по заказу #%d «%s»", order.ID, order.Title)
	}
	return order, nil
}

// ResolveDispute закрывает спор в пользу winner: победитель получает полную цену заказа с записью
// dispute_resolution, проигравшая сторона ничего не получает. Доступно только администраторам.
func (o *OrderService) ResolveDispute(
	ctx context.Context,
	adminID, orderID int64,
	winner domain.DisputeWinner,
) (*domain.Order, error) {
	if !o.auth.IsAdmin(adminID) {
		return nil, fmt.Errorf("resolving dispute: %w",
			domain.Reject(domain.ErrNotAuthorized, "only admins can resolve disputes"))
	}
	if winner != domain.WinnerCustomer && winner != domain.WinnerExecutor {
		return nil, fmt.Errorf("resolving dispute: %w",
			domain.Reject(domain.ErrInvalidArgument, "unknown winner `%s`", winner))
	}

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		current, err := r.orders.FindByIDForUpdate(c, orderID)
		if err != nil {
			return orNotFound(err, "order %d not found", orderID)
		}
		order, err = o.transition(c, r, current, domain.OrderStatusDispute, domain.OrderStatusCompleted, nil)
		if err != nil {
			return err
		}
		winnerID := order.CustomerID
		if winner == domain.WinnerExecutor {
			winnerID = *order.ExecutorID
		}
		if order.Price.IsPositive() {
			if _, err = credit(c, r, winnerID, order.Price, domain.LedgerKindDisputeResolution,
				&order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("resolving dispute: %w", txErr)
	}

	o.l.WithFields(logrus.Fields{
		"order":  order.ID,
		"admin":  adminID,
		"winner": winner,
	}).Info("dispute resolved")
	text := "Спор по заказу #%d решен в пользу заказчика"
	if winner == domain.WinnerExecutor {
		text = "Спор по заказу #%d решен в пользу исполнителя"
	}
	o.notify.send(ctx, order.CustomerID, text, order.ID)
	o.notify.send(ctx, *order.ExecutorID, text, order.ID)
	return order, nil
}

// transition проверяет текущий статус заказа и выполняет compare-and-set перехода from -> to.
func (o *OrderService) transition(
	ctx context.Context,
	r *repos,
	current *domain.Order,
	from, to domain.OrderStatusType,
	executorID *int64,
) (*domain.Order, error) {
	if current.Status != from {
		return nil, invalidTransition(current, string(to))
	}
	order, err := r.orders.UpdateStatus(ctx, repoargs.UpdateOrderStatus{
		ID:         current.ID,
		From:       from,
		To:         to,
		ExecutorID: executorID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.Reject(domain.ErrInvalidTransition, "order %d status changed concurrently", current.ID)
		}
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

func invalidTransition(order *domain.Order, action string) error {
	return domain.Reject(domain.ErrInvalidTransition, "order %d is %s, cannot %s", order.ID, order.Status, action)
}

// checkDailyLimit проверяет дневной лимит действия action для пользователя без VIP статуса.
// Недоступность хранилища лимитов не блокирует пользователя.
func (o *OrderService) checkDailyLimit(ctx context.Context, action string, userID int64, limit int64) error {
	if limit <= 0 || o.limiter == nil {
		return nil
	}
	user, err := o.repos.users.FindByID(ctx, userID)
	if err != nil {
		return orNotFound(err, "user %d not found", userID)
	}
	now := o.now()
	if user.IsVIP(now) {
		return nil
	}
	allowed, err := o.limiter.Allow(ctx, dailyKey(action, userID, now), limit)
	if err != nil {
		o.l.WithError(err).WithField("user", userID).Warn("rate limiter unavailable")
		return nil
	}
	if !allowed {
		return domain.Reject(domain.ErrNotAuthorized, "daily %s limit of %d reached, buy VIP to remove it",
			action, limit)
	}
	return nil
}

func dailyKey(action string, userID int64, now time.Time) string {
	return fmt.Sprintf("%s:%d:%s", action, userID, now.UTC().Format("20060102"))
}

// Get возвращает заказ. Открытые заказы видны всем, остальные только участникам и администраторам.
func (o *OrderService) Get(ctx context.Context, actorID, orderID int64) (*domain.Order, error) {
	order, err := o.repos.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, orNotFound(err, "order %d not found", orderID)
	}
	if order.Status != domain.OrderStatusOpen && !order.IsParticipant(actorID) && !o.auth.IsAdmin(actorID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "not a participant of order %d", orderID)
	}
	return order, nil
}

// Feed возвращает открытые заказы других пользователей.
func (o *OrderService) Feed(ctx context.Context, userID int64, p repoargs.Page) ([]domain.Order, error) {
	orders, err := o.repos.orders.ListOpen(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("getting feed: %w", err)
	}
	return orders, nil
}

func (o *OrderService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	orders, err := o.repos.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer orders: %w", err)
	}
	return orders, nil
}

func (o *OrderService) ListByExecutor(ctx context.Context, executorID int64) ([]domain.Order, error) {
	orders, err := o.repos.orders.ListByExecutor(ctx, executorID)
	if err != nil {
		return nil, fmt.Errorf("listing executor orders: %w", err)
	}
	return orders, nil
}

// Offers возвращает отклики на заказ. Доступно заказчику и администраторам.
func (o *OrderService) Offers(ctx context.Context, actorID, orderID int64) ([]domain.Offer, error) {
	order, err := o.repos.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, orNotFound(err, "order %d not found", orderID)
	}
	if order.CustomerID != actorID && !o.auth.IsAdmin(actorID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "only the customer can see offers")
	}
	offers, err := o.repos.offers.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	return offers, nil
}

// ListAll возвращает все заказы, при непустом status только в этом статусе. Доступно администраторам.
func (o *OrderService) ListAll(
	ctx context.Context,
	adminID int64,
	status domain.OrderStatusType,
	p repoargs.Page,
) ([]domain.Order, error) {
	if !o.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "admin only")
	}
	orders, err := o.repos.orders.List(ctx, status, p)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

// Categories возвращает категории заказов.
func (o *OrderService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := o.repos.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}
