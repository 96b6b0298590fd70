package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUnsupportedCurrency = errors.New("unsupported display currency")
)

// IPreferenceUseCase reads and writes the user-selectable display currency.
// It shapes rendering only; stored Money values are never rewritten when the
// preference changes.

type IPreferenceUseCase interface {
	GetDisplayCurrency(ctx context.Context, userID string) (entities.CurrencyCode, error)
	SetDisplayCurrency(ctx context.Context, userID string, c entities.CurrencyCode) error
}

type PreferenceUseCase struct {
	repo interfaces.IPreferenceRepository
}

var _ IPreferenceUseCase = (*PreferenceUseCase)(nil)

func NewPreferenceUseCase(repo interfaces.IPreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{repo: repo}
}

func (u *PreferenceUseCase) GetDisplayCurrency(ctx context.Context, userID string) (entities.CurrencyCode, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUserID
	}

	c, err := u.repo.GetDisplayCurrency(ctx, userID)
	if err != nil {
		return "", err
	}
	// Missing or corrupt preference degrades to the base currency.
	if !entities.IsValidCurrency(c) {
		return entities.CurrencyUSD, nil
	}
	return c, nil
}

func (u *PreferenceUseCase) SetDisplayCurrency(ctx context.Context, userID string, c entities.CurrencyCode) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if !entities.IsValidCurrency(c) {
		return ErrUnsupportedCurrency
	}
	return u.repo.SetDisplayCurrency(ctx, userID, c)
}
