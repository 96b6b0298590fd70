package response

import (
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/currency"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

type AttachmentsResponse struct {
	VehicleModel string `json:"vehicle_model,omitempty"`
	DriverName   string `json:"driver_name,omitempty"`
	PackageName  string `json:"package_name,omitempty"`
	TimeSlot     string `json:"time_slot,omitempty"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	BookingID        string    `json:"booking_id"`
	ItemID           string    `json:"item_id"`
	Category         string    `json:"category"`
	RequesterName    string    `json:"requester_name"`
	RequesterEmail   string    `json:"requester_email"`
	StartDate        string    `json:"start_date,omitempty"`
	EndDate          string    `json:"end_date,omitempty"`
	ParticipantCount int       `json:"participant_count"`
	TotalAmount      float64   `json:"total_amount"`
	Currency         string    `json:"currency"`
	DisplayTotal     string    `json:"display_total"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	Attachments *AttachmentsResponse `json:"attachments,omitempty"`
}

// FromBooking renders a stored booking for a viewer whose preferred display
// currency is `display`. Stored Money is emitted untouched; only DisplayTotal
// is converted.
func FromBooking(b entities.BookingRecord, display entities.CurrencyCode) BookingResponse {
	res := BookingResponse{
		ID:               b.ID,
		BookingID:        b.ID,
		ItemID:           b.ItemID,
		Category:         string(b.Category),
		RequesterName:    b.RequesterName,
		RequesterEmail:   b.RequesterEmail,
		ParticipantCount: b.ParticipantCount,
		TotalAmount:      b.TotalPrice.Amount,
		Currency:         string(b.TotalPrice.Currency),
		DisplayTotal:     currency.Format(b.TotalPrice.Amount, b.TotalPrice.Currency, display),
		Status:           string(b.Status),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
	}
	if b.DateRange != nil {
		res.StartDate = b.DateRange.Start
		res.EndDate = b.DateRange.End
	}
	if b.Attachments != (entities.Attachments{}) {
		res.Attachments = &AttachmentsResponse{
			VehicleModel: b.Attachments.VehicleModel,
			DriverName:   b.Attachments.DriverName,
			PackageName:  b.Attachments.PackageName,
			TimeSlot:     b.Attachments.TimeSlot,
		}
	}
	return res
}

func FromBookings(records []entities.BookingRecord, display entities.CurrencyCode) []BookingResponse {
	out := make([]BookingResponse, 0, len(records))
	for _, b := range records {
		out = append(out, FromBooking(b, display))
	}
	return out
}
