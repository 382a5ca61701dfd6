package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service/tokens"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	JWTTokenExpire      = 24 * time.Hour
	AdminJWTTokenExpire = 1 * time.Hour
)

// VIPOptions стоимость и длительность VIP статуса.
type VIPOptions struct {
	Price    decimal.Decimal
	Duration time.Duration
}

type UserService struct {
	uow               uow.UOW
	repos             *repos
	auth              *Authorizer
	psswd             PasswordHasher
	adminPasswordHash string
	jwtTokenSecret    []byte
	vip               VIPOptions
	notify            *notifications
	l                 *logrus.Entry
	now               func() time.Time
}

type UserServiceArgs struct {
	UOW               uow.UOW
	Auth              *Authorizer
	PasswordHasher    PasswordHasher
	AdminPasswordHash string
	JWTSecret         []byte
	VIP               VIPOptions
	Notifier          Notifier
	Logger            *logrus.Logger
}

func NewUserService(args UserServiceArgs) (*UserService, error) {
	r, err := loadRepos(args.UOW.GetRepository)
	if err != nil {
		return nil, err
	}
	return &UserService{
		uow:               args.UOW,
		repos:             r,
		auth:              args.Auth,
		psswd:             args.PasswordHasher,
		adminPasswordHash: args.AdminPasswordHash,
		jwtTokenSecret:    args.JWTSecret,
		vip:               args.VIP,
		notify:            newNotifications(args.Notifier, args.Logger),
		l: args.Logger.WithFields(logrus.Fields{
			"component": "service",
			"module":    "users",
		}),
		now: time.Now,
	}, nil
}

type StartArgs struct {
	ID       int64
	Username string
}

// Start регистрирует пользователя при первом обращении и выдает токен. Заблокированным пользователям
// токен не выдается.
func (s *UserService) Start(ctx context.Context, args StartArgs) (*domain.User, string, error) {
	if args.ID <= 0 {
		return nil, "", domain.Reject(domain.ErrInvalidArgument, "invalid user id %d", args.ID)
	}
	user, created, err := s.repos.users.GetOrCreate(ctx, repoargs.CreateUser{
		ID:       args.ID,
		Username: args.Username,
	})
	if err != nil {
		return nil, "", fmt.Errorf("starting user session: %w", err)
	}
	if user.Blocked {
		return nil, "", domain.Reject(domain.ErrNotAuthorized, "user is blocked")
	}
	if created {
		s.l.WithField("user", user.ID).Info("user registered")
	}
	token, err := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return nil, "", fmt.Errorf("starting user session: %w", err)
	}
	return user, token, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repos.users.FindByID(ctx, userID)
	if err != nil {
		return nil, orNotFound(err, "user %d not found", userID)
	}
	return user, nil
}

type AdminLoginArgs struct {
	ID       int64
	Password string
}

// AdminLogin выдает административный токен, если ID входит в список администраторов и пароль
// совпадает с настроенным хэшем.
func (s *UserService) AdminLogin(_ context.Context, args AdminLoginArgs) (string, error) {
	if !s.auth.IsAdmin(args.ID) || s.adminPasswordHash == "" {
		return "", domain.ErrPasswordMissMatch
	}
	if !s.psswd.ComparePassword(args.Password, s.adminPasswordHash) {
		return "", domain.ErrPasswordMissMatch
	}
	token, err := tokens.GenerateAdminJWT(args.ID, AdminJWTTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return "", fmt.Errorf("admin login: %w", err)
	}
	return token, nil
}

func (s *UserService) Block(ctx context.Context, adminID, userID int64) (*domain.User, error) {
	return s.setBlocked(ctx, adminID, userID, true)
}

func (s *UserService) Unblock(ctx context.Context, adminID, userID int64) (*domain.User, error) {
	return s.setBlocked(ctx, adminID, userID, false)
}

func (s *UserService) setBlocked(ctx context.Context, adminID, userID int64, blocked bool) (*domain.User, error) {
	if !s.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "admin only")
	}
	user, err := s.repos.users.SetBlocked(ctx, userID, blocked)
	if err != nil {
		return nil, orNotFound(err, "user %d not found", userID)
	}
	s.l.WithFields(logrus.Fields{
		"admin":   adminID,
		"user":    userID,
		"blocked": blocked,
	}).Info("user block status changed")
	if blocked {
		s.notify.send(ctx, userID, "Ваш аккаунт заблокирован администратором")
	} else {
		s.notify.send(ctx, userID, "Ваш аккаунт разблокирован")
	}
	return user, nil
}

// PurchaseVIP списывает стоимость VIP статуса с записью vip_payment и продлевает статус на
// VIPOptions.Duration от текущего окончания или от текущего момента, если статус не действует.
func (s *UserService) PurchaseVIP(ctx context.Context, userID int64) (*domain.User, error) {
	if s.vip.Duration <= 0 {
		return nil, domain.Reject(domain.ErrInvalidArgument, "VIP is not available")
	}
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		r, err := txRepos(tx)
		if err != nil {
			return err
		}
		current, err := r.users.FindByIDForUpdate(c, userID)
		if err != nil {
			return orNotFound(err, "user %d not found", userID)
		}
		if current.Blocked {
			return domain.Reject(domain.ErrNotAuthorized, "user is blocked")
		}
		if s.vip.Price.IsPositive() {
			if _, err = debit(c, r, userID, s.vip.Price, domain.LedgerKindVIPPayment, nil); err != nil {
				return err
			}
		}
		from := s.now()
		if current.IsVIP(from) {
			from = *current.VIPUntil
		}
		user, err = r.users.SetVIPUntil(c, userID, from.Add(s.vip.Duration))
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("purchasing vip: %w", txErr)
	}
	return user, nil
}

// List возвращает пользователей. Доступно администраторам.
func (s *UserService) List(ctx context.Context, adminID int64, p repoargs.Page) ([]domain.User, error) {
	if !s.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "admin only")
	}
	users, err := s.repos.users.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}
