package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const cancelledPrompt = "Действие отменено"

// InteractionReply состояние после обработки ввода. Prompt подсказка для следующего шага,
// Result результат операции, выполненной на последнем шаге.
type InteractionReply struct {
	State  domain.Interaction
	Prompt string
	Result any
}

// InteractionService ведет многошаговые действия пользователя. Состояние хранится в InteractionStore,
// основная операция выполняется только на последнем шаге, поэтому отмена не требует компенсаций.
type InteractionService struct {
	store   InteractionStore
	orders  *OrderService
	reviews *ReviewService
	wallet  *WalletService
	l       *logrus.Entry
}

func NewInteractionService(
	store InteractionStore,
	orders *OrderService,
	reviews *ReviewService,
	wallet *WalletService,
	l *logrus.Logger,
) *InteractionService {
	return &InteractionService{
		store:   store,
		orders:  orders,
		reviews: reviews,
		wallet:  wallet,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "interactions",
		}),
	}
}

// Current возвращает незавершенное действие пользователя или idle.
func (s *InteractionService) Current(ctx context.Context, userID int64) (*domain.Interaction, error) {
	state, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			idle := domain.IdleInteraction()
			return &idle, nil
		}
		return nil, fmt.Errorf("getting interaction: %w", err)
	}
	return state, nil
}

// Begin начинает действие kind, заменяя незавершенное. Для making_offer и leaving_review нужен orderID.
func (s *InteractionService) Begin(
	ctx context.Context,
	userID int64,
	kind domain.InteractionKind,
	orderID int64,
) (*InteractionReply, error) {
	state := domain.Interaction{Kind: kind, OrderID: orderID, Data: map[string]string{}}
	var prompt string
	switch kind {
	case domain.InteractionCreatingOrder:
		state.OrderID = 0
		state.Step = domain.StepCategory
		prompt = "Выберите категорию заказа"
	case domain.InteractionMakingOffer:
		state.Step = domain.StepMessage
		prompt = "Напишите сообщение заказчику"
	case domain.InteractionLeavingReview:
		state.Step = domain.StepRating
		prompt = "Поставьте оценку от 1 до 5"
	case domain.InteractionWithdrawing:
		state.OrderID = 0
		state.Step = domain.StepAmount
		prompt = "Введите сумму вывода"
	default:
		return nil, domain.Reject(domain.ErrInvalidArgument, "unknown interaction `%s`", kind)
	}
	if (kind == domain.InteractionMakingOffer || kind == domain.InteractionLeavingReview) && orderID <= 0 {
		return nil, domain.Reject(domain.ErrInvalidArgument, "order is required for %s", kind)
	}
	return s.save(ctx, userID, state, prompt)
}

// Cancel отменяет незавершенное действие.
func (s *InteractionService) Cancel(ctx context.Context, userID int64) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("cancelling interaction: %w", err)
	}
	return nil
}

// Input обрабатывает очередной ввод пользователя. Ошибка проверки ввода оставляет действие на текущем шаге.
// Ошибка основной операции на последнем шаге завершает действие. «отмена» на любом шаге и отказ на шаге
// подтверждения отменяют действие.
func (s *InteractionService) Input(ctx context.Context, userID int64, text string) (*InteractionReply, error) {
	state, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if state.Data == nil {
		state.Data = map[string]string{}
	}

	if isCancel(text) || (state.Step == domain.StepConfirm && isDecline(text)) {
		if err = s.Cancel(ctx, userID); err != nil {
			return nil, err
		}
		return &InteractionReply{State: domain.IdleInteraction(), Prompt: cancelledPrompt}, nil
	}

	switch state.Kind {
	case domain.InteractionCreatingOrder:
		return s.creatingOrder(ctx, userID, *state, text)
	case domain.InteractionMakingOffer:
		return s.makingOffer(ctx, userID, *state, text)
	case domain.InteractionLeavingReview:
		return s.leavingReview(ctx, userID, *state, text)
	case domain.InteractionWithdrawing:
		return s.withdrawing(ctx, userID, *state, text)
	default:
		return nil, domain.Reject(domain.ErrInvalidTransition, "no active interaction")
	}
}

func (s *InteractionService) creatingOrder(
	ctx context.Context,
	userID int64,
	state domain.Interaction,
	text string,
) (*InteractionReply, error) {
	switch state.Step {
	case domain.StepCategory:
		categoryID, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, domain.Reject(domain.ErrInvalidArgument, "category must be a number")
		}
		if _, err = s.orders.repos.categories.FindByID(ctx, categoryID); err != nil {
			return nil, orNotFound(err, "category %d not found", categoryID)
		}
		state.Data[domain.StepCategory] = text
		state.Step = domain.StepTitle
		return s.save(ctx, userID, state, "Введите название заказа")
	case domain.StepTitle:
		if text == "" || utf8.RuneCountInString(text) > domain.MaxOrderTitleLength {
			return nil, domain.Reject(domain.ErrInvalidArgument, "title must be 1..%d characters",
				domain.MaxOrderTitleLength)
		}
		state.Data[domain.StepTitle] = text
		state.Step = domain.StepDescription
		return s.save(ctx, userID, state, "Опишите задачу")
	case domain.StepDescription:
		state.Data[domain.StepDescription] = text
		state.Step = domain.StepPrice
		return s.save(ctx, userID, state, "Укажите цену")
	case domain.StepPrice:
		price, err := decimal.NewFromString(text)
		if err != nil {
			return nil, domain.Reject(domain.ErrInvalidArgument, "price must be a number")
		}
		if err = validateOrder(CreateOrderArgs{Title: state.Data[domain.StepTitle], Price: price}); err != nil {
			return nil, err
		}
		state.Data[domain.StepPrice] = price.StringFixed(domain.MoneyPlaces)
		state.Step = domain.StepConfirm
		return s.save(ctx, userID, state, fmt.Sprintf("Создать заказ «%s» за %s? (да/нет)",
			state.Data[domain.StepTitle], state.Data[domain.StepPrice]))
	case domain.StepConfirm:
		if err := confirmation(text); err != nil {
			return nil, err
		}
		categoryID, catErr := strconv.ParseInt(state.Data[domain.StepCategory], 10, 64)
		price, priceErr := decimal.NewFromString(state.Data[domain.StepPrice])
		if catErr != nil || priceErr != nil {
			return nil, s.corrupted(ctx, userID, state)
		}
		order, err := s.orders.Create(ctx, CreateOrderArgs{
			CustomerID:  userID,
			CategoryID:  categoryID,
			Title:       state.Data[domain.StepTitle],
			Description: state.Data[domain.StepDescription],
			Price:       price,
		})
		return s.finish(ctx, userID, "Заказ создан", order, err)
	default:
		return nil, s.corrupted(ctx, userID, state)
	}
}

func (s *InteractionService) makingOffer(
	ctx context.Context,
	userID int64,
	state domain.Interaction,
	text string,
) (*InteractionReply, error) {
	switch state.Step {
	case domain.StepMessage:
		if text == "" {
			return nil, domain.Reject(domain.ErrInvalidArgument, "message must not be empty")
		}
		state.Data[domain.StepMessage] = text
		state.Step = domain.StepConfirm
		return s.save(ctx, userID, state, fmt.Sprintf("Отправить отклик на заказ #%d? (да/нет)", state.OrderID))
	case domain.StepConfirm:
		if err := confirmation(text); err != nil {
			return nil, err
		}
		offer, err := s.orders.SubmitOffer(ctx, SubmitOfferArgs{
			OrderID:    state.OrderID,
			ExecutorID: userID,
			Message:    state.Data[domain.StepMessage],
		})
		return s.finish(ctx, userID, "Отклик отправлен", offer, err)
	default:
		return nil, s.corrupted(ctx, userID, state)
	}
}

func (s *InteractionService) leavingReview(
	ctx context.Context,
	userID int64,
	state domain.Interaction,
	text string,
) (*InteractionReply, error) {
	switch state.Step {
	case domain.StepRating:
		rating, err := strconv.Atoi(text)
		if err != nil || rating < minRating || rating > maxRating {
			return nil, domain.Reject(domain.ErrInvalidArgument, "rating must be between %d and %d",
				minRating, maxRating)
		}
		state.Data[domain.StepRating] = text
		state.Step = domain.StepText
		return s.save(ctx, userID, state, "Напишите отзыв")
	case domain.StepText:
		rating, err := strconv.Atoi(state.Data[domain.StepRating])
		if err != nil {
			return nil, s.corrupted(ctx, userID, state)
		}
		review, err := s.reviews.Leave(ctx, LeaveReviewArgs{
			ReviewerID: userID,
			OrderID:    state.OrderID,
			Rating:     rating,
			Text:       text,
		})
		return s.finish(ctx, userID, "Спасибо за отзыв", review, err)
	default:
		return nil, s.corrupted(ctx, userID, state)
	}
}

func (s *InteractionService) withdrawing(
	ctx context.Context,
	userID int64,
	state domain.Interaction,
	text string,
) (*InteractionReply, error) {
	switch state.Step {
	case domain.StepAmount:
		amount, err := decimal.NewFromString(text)
		if err != nil {
			return nil, domain.Reject(domain.ErrInvalidArgument, "amount must be a number")
		}
		if err = validateAmount(amount); err != nil {
			return nil, err
		}
		state.Data[domain.StepAmount] = amount.StringFixed(domain.MoneyPlaces)
		state.Step = domain.StepAddress
		return s.save(ctx, userID, state, "Введите адрес кошелька")
	case domain.StepAddress:
		if text == "" {
			return nil, domain.Reject(domain.ErrInvalidArgument, "address must not be empty")
		}
		state.Data[domain.StepAddress] = text
		state.Step = domain.StepConfirm
		return s.save(ctx, userID, state, fmt.Sprintf("Вывести %s на %s? (да/нет)",
			state.Data[domain.StepAmount], text))
	case domain.StepConfirm:
		if err := confirmation(text); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(state.Data[domain.StepAmount])
		if err != nil {
			return nil, s.corrupted(ctx, userID, state)
		}
		withdrawal, err := s.wallet.Withdraw(ctx, WithdrawArgs{
			UserID:  userID,
			Address: state.Data[domain.StepAddress],
			Amount:  amount,
		})
		return s.finish(ctx, userID, "Средства отправлены", withdrawal, err)
	default:
		return nil, s.corrupted(ctx, userID, state)
	}
}

func (s *InteractionService) save(
	ctx context.Context,
	userID int64,
	state domain.Interaction,
	prompt string,
) (*InteractionReply, error) {
	if err := s.store.Save(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("saving interaction: %w", err)
	}
	return &InteractionReply{State: state, Prompt: prompt}, nil
}

// finish завершает действие после основной операции независимо от ее результата.
func (s *InteractionService) finish(
	ctx context.Context,
	userID int64,
	prompt string,
	result any,
	opErr error,
) (*InteractionReply, error) {
	if err := s.store.Delete(ctx, userID); err != nil {
		s.l.WithError(err).WithField("user", userID).Warn("clearing interaction")
	}
	if opErr != nil {
		return nil, opErr
	}
	return &InteractionReply{State: domain.IdleInteraction(), Prompt: prompt, Result: result}, nil
}

// corrupted сбрасывает состояние с неизвестным шагом или неполными данными.
func (s *InteractionService) corrupted(ctx context.Context, userID int64, state domain.Interaction) error {
	s.l.WithFields(logrus.Fields{
		"user": userID,
		"kind": state.Kind,
		"step": state.Step,
	}).Warn("broken interaction state, resetting")
	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("resetting interaction: %w", err)
	}
	return domain.Reject(domain.ErrInvalidTransition, "interaction was reset, start again")
}

func confirmation(text string) error {
	switch strings.ToLower(text) {
	case "да", "yes", "y", "ok":
		return nil
	default:
		return domain.Reject(domain.ErrInvalidArgument, "reply `да` to confirm or `нет` to cancel the action")
	}
}

func isCancel(text string) bool {
	switch strings.ToLower(text) {
	case "отмена", "/cancel":
		return true
	default:
		return false
	}
}

func isDecline(text string) bool {
	switch strings.ToLower(text) {
	case "нет", "no", "n":
		return true
	default:
		return false
	}
}
