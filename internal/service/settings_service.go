package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/shopspring/decimal"
)

var maxCommissionPercent = decimal.NewFromInt(100) //nolint:gochecknoglobals

// CommissionRate ставка комиссии и версия настройки, из которой она прочитана. Version == 0 означает,
// что настройка не задана и используется значение по умолчанию.
type CommissionRate struct {
	Percent decimal.Decimal
	Version int64
}

type SettingsService struct {
	repos          *repos
	auth           *Authorizer
	defaultPercent decimal.Decimal
}

func NewSettingsService(u uow.UOW, auth *Authorizer, defaultPercent decimal.Decimal) (*SettingsService, error) {
	r, err := loadRepos(u.GetRepository)
	if err != nil {
		return nil, err
	}
	return &SettingsService{
		repos:          r,
		auth:           auth,
		defaultPercent: defaultPercent,
	}, nil
}

// CommissionRate возвращает действующую ставку комиссии.
func (s *SettingsService) CommissionRate(ctx context.Context) (*CommissionRate, error) {
	return s.commissionRate(ctx, s.repos.settings)
}

// commissionRate читает ставку через repo. При выплате вызывается с репозиторием транзакции,
// чтобы ставка читалась в момент выплаты.
func (s *SettingsService) commissionRate(ctx context.Context, repo SettingRepository) (*CommissionRate, error) {
	setting, err := repo.Get(ctx, domain.SettingCommissionPercent)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &CommissionRate{Percent: s.defaultPercent}, nil
		}
		return nil, fmt.Errorf("reading commission rate: %w", err)
	}
	percent, parseErr := decimal.NewFromString(setting.Value)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing commission rate `%s`: %s", setting.Value, parseErr.Error())
	}
	return &CommissionRate{Percent: percent, Version: setting.Version}, nil
}

// SetCommissionRate устанавливает ставку комиссии. Доступно только администраторам, ставка в диапазоне 0..100.
func (s *SettingsService) SetCommissionRate(
	ctx context.Context,
	adminID int64,
	percent decimal.Decimal,
) (*CommissionRate, error) {
	if !s.auth.IsAdmin(adminID) {
		return nil, domain.Reject(domain.ErrNotAuthorized, "only admins can change commission")
	}
	if percent.IsNegative() || percent.GreaterThan(maxCommissionPercent) {
		return nil, domain.Reject(domain.ErrInvalidArgument, "commission must be between 0 and 100, got %s", percent)
	}
	setting, err := s.repos.settings.Upsert(ctx, domain.SettingCommissionPercent, percent.String())
	if err != nil {
		return nil, fmt.Errorf("setting commission rate: %w", err)
	}
	return &CommissionRate{Percent: percent, Version: setting.Version}, nil
}
