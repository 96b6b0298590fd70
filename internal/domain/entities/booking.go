package entities

import "time"

// BookingStatus is the lifecycle state of a booking record.
//
// The engine drives pending_payment -> confirmed and nothing else;
// cancelled is representable for display but no transition in this service
// produces it.

type BookingStatus string

const (
	BookingStatusPendingPayment BookingStatus = "pending_payment"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// DateRange is a requested stay window in ISO dates (2006-01-02).
//
// End is empty for categories that do not require a checkout date. When both
// bounds are set, End > Start and neither precedes "today" at validation time.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Attachments carries category-specific extras captured at creation time.
type Attachments struct {
	VehicleModel string `json:"vehicle_model,omitempty"`
	DriverName   string `json:"driver_name,omitempty"`
	PackageName  string `json:"package_name,omitempty"`
	TimeSlot     string `json:"time_slot,omitempty"`
}

// BookingRecord is the booking entity persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_email-index): requester_email
//
// A record is immutable after creation except for Status. Currency and total
// are always the server's own computation from the catalog item; client input
// never reaches TotalPrice.
type BookingRecord struct {
	ID               string        `json:"id"`
	ItemID           string        `json:"item_id"`
	Category         Category      `json:"category"`
	RequesterName    string        `json:"requester_name"`
	RequesterEmail   string        `json:"requester_email"`
	DateRange        *DateRange    `json:"date_range,omitempty"`
	ParticipantCount int           `json:"participant_count"`
	TotalPrice       Money         `json:"total_price"`
	Status           BookingStatus `json:"status"`
	Notes            string        `json:"notes,omitempty"`
	Attachments      Attachments   `json:"attachments,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
