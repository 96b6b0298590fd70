package response

import (
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/currency"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

type PreferenceResponse struct {
	UserID   string `json:"user_id"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

func FromPreference(userID string, c entities.CurrencyCode) PreferenceResponse {
	return PreferenceResponse{
		UserID:   userID,
		Currency: string(c),
		Symbol:   currency.Symbol(c),
	}
}
