package response

import (
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

type LatLngResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ItemResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PricePerNight  float64  `json:"price_per_night,omitempty"`
	PricePerPerson float64  `json:"price_per_person,omitempty"`
	Price          float64  `json:"price,omitempty"`
	Currency       string   `json:"currency"`
	BlockedDates   []string `json:"blocked_dates,omitempty"`

	Location *LatLngResponse `json:"location,omitempty"`
}

func FromItem(i entities.ReservableItem) ItemResponse {
	res := ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Category:       string(i.Category),
		PricePerNight:  i.PricePerNight,
		PricePerPerson: i.PricePerPerson,
		Price:          i.Price,
		Currency:       string(i.Currency),
		BlockedDates:   i.BlockedDates,
	}
	if i.Location != nil {
		res.Location = &LatLngResponse{Lat: i.Location.Lat, Lng: i.Location.Lng}
	}
	return res
}

func FromItems(items []entities.ReservableItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}
