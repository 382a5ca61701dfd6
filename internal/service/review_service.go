package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/sirupsen/logrus"
)

const (
	minRating = 1
	maxRating = 5
)

type ReviewService struct {
	uow    uow.UOW
	repos  *repos
	notify *notifications
}

func NewReviewService(u uow.UOW, n Notifier, l *logrus.Logger) (*ReviewService, error) {
	r, err := loadRepos(u.GetRepository)
	if err != nil {
		return nil, err
	}
	return &ReviewService{
		uow:    u,
		repos:  r,
		notify: newNotifications(n, l),
	}, nil
}

type LeaveReviewArgs struct {
	ReviewerID int64
	OrderID    int64
	Rating     int
	Text       string
}

// Leave сохраняет отзыв участника завершенного заказа о второй стороне и пересчитывает ее рейтинг
// в той же транзакции.
func (s *ReviewService) Leave(ctx context.Context, args LeaveReviewArgs) (*domain.Review, error) {
	if args.Rating < minRating || args.Rating > maxRating {
		return nil, domain.Reject(domain.ErrInvalidArgument, "rating must be between %d and %d", minRating, maxRating)
	}

	var review *domain.Review
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		order, err := r.orders.FindByID(c, args.OrderID)
		if err != nil {
			return orNotFound(err, "order %d not found", args.OrderID)
		}
		revieweeID, ok := order.Counterpart(args.ReviewerID)
		if !ok {
			return domain.Reject(domain.ErrNotAuthorized, "not a participant of order %d", order.ID)
		}
		if order.Status != domain.OrderStatusCompleted {
			return invalidTransition(order, "review")
		}
		review, err = r.reviews.Create(c, repoargs.CreateReview{
			OrderID:    order.ID,
			ReviewerID: args.ReviewerID,
			RevieweeID: revieweeID,
			Rating:     args.Rating,
			Text:       args.Text,
		})
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.Reject(domain.ErrInvalidTransition, "review for order %d already left", order.ID)
		}
		if err != nil {
			return err //nolint:wrapcheck
		}

		reviewee, err := r.users.FindByIDForUpdate(c, revieweeID)
		if err != nil {
			return orNotFound(err, "user %d not found", revieweeID)
		}
		rating := domain.NextRating(reviewee.Rating, reviewee.ReviewsCount, args.Rating)
		return r.users.UpdateRating(c, revieweeID, rating, reviewee.ReviewsCount+1) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("leaving review: %w", txErr)
	}

	s.notify.send(ctx, review.RevieweeID, "Новый отзыв по заказу #%d: %d/5 %s", review.OrderID, review.Rating,
		review.Text)
	return review, nil
}

// ListFor возвращает отзывы о пользователе, новые первыми.
func (s *ReviewService) ListFor(ctx context.Context, userID int64, p repoargs.Page) ([]domain.Review, error) {
	reviews, err := s.repos.reviews.ListByReviewee(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	return reviews, nil
}
