package request

import (
	"errors"
	"strings"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

type DateRangeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end"`
}

type AttachmentsRequest struct {
	VehicleModel string `json:"vehicle_model"`
	DriverName   string `json:"driver_name"`
	PackageName  string `json:"package_name"`
	TimeSlot     string `json:"time_slot"`
}

// BookingCreateRequest is the draft submitted by a booking form. It carries no
// total and no currency: the serverside quote is the only one that counts.
type BookingCreateRequest struct {
	ItemID           string              `json:"item_id" binding:"required"`
	RequesterName    string              `json:"requester_name" binding:"required"`
	RequesterEmail   string              `json:"requester_email" binding:"required"`
	DateRange        *DateRangeRequest   `json:"date_range"`
	ParticipantCount int                 `json:"participant_count"`
	CouponCode       string              `json:"coupon_code"`
	Notes            string              `json:"notes"`
	Attachments      *AttachmentsRequest `json:"attachments"`
}

func (r BookingCreateRequest) ToDateRange() *entities.DateRange {
	if r.DateRange == nil {
		return nil
	}
	return &entities.DateRange{
		Start: strings.TrimSpace(r.DateRange.Start),
		End:   strings.TrimSpace(r.DateRange.End),
	}
}

func (r BookingCreateRequest) ToAttachments() entities.Attachments {
	if r.Attachments == nil {
		return entities.Attachments{}
	}
	return entities.Attachments{
		VehicleModel: strings.TrimSpace(r.Attachments.VehicleModel),
		DriverName:   strings.TrimSpace(r.Attachments.DriverName),
		PackageName:  strings.TrimSpace(r.Attachments.PackageName),
		TimeSlot:     strings.TrimSpace(r.Attachments.TimeSlot),
	}
}

type CoordinateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c CoordinateRequest) ToLatLng() (entities.LatLng, error) {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return entities.LatLng{}, ErrInvalidCoordinate
	}
	return entities.LatLng{Lat: c.Lat, Lng: c.Lng}, nil
}

// TrackingStartRequest seeds a simulated live-tracking session with the
// vehicle's current position and the drop-off point.
type TrackingStartRequest struct {
	Current     CoordinateRequest `json:"current" binding:"required"`
	Destination CoordinateRequest `json:"destination" binding:"required"`
}

type PreferenceCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

func (r PreferenceCurrencyRequest) ResolveCurrency() entities.CurrencyCode {
	return entities.CurrencyCode(strings.ToUpper(strings.TrimSpace(r.Currency)))
}
