package interfaces

import (
	"context"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

// IPreferenceRepository persists per-user display preferences under a key
// space separate from bookings. The display currency only ever affects
// response formatting, never stored Money values.

type IPreferenceRepository interface {
	GetDisplayCurrency(ctx context.Context, userID string) (entities.CurrencyCode, error)
	SetDisplayCurrency(ctx context.Context, userID string, c entities.CurrencyCode) error
}
