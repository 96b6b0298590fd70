package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

const isoDate = "2006-01-02"

// couponDiscounts maps recognized coupon codes (upper-cased) to their
// fractional reduction. Unrecognized codes are ignored without error.
var couponDiscounts = map[string]float64{
	"SAVE10": 0.10,
}

// Quote is the pricing input for one reservation request.
type Quote struct {
	Item             entities.ReservableItem
	DateRange        *entities.DateRange
	ParticipantCount int
	CouponCode       string
}

// ComputeTotal derives the total price for a reservation, expressed in the
// item's native currency. It is a pure function: it never cross-converts,
// never mutates its input and never fails. A category whose authoritative
// price field is unset totals 0, which downstream code treats as
// "free, confirm immediately".
func ComputeTotal(q Quote) entities.Money {
	item := q.Item
	total := 0.0

	switch item.Category {
	case entities.CategoryLodging:
		total = item.PricePerNight * float64(Nights(q.DateRange))
	case entities.CategoryAdventure:
		total = item.PricePerPerson * float64(maxInt(1, q.ParticipantCount))
	case entities.CategoryFlight:
		// Flights bill the flat fare once per traveller.
		total = item.Price * float64(maxInt(1, q.ParticipantCount))
	case entities.CategoryMedicalFacility, entities.CategoryMedicalDoctor:
		total = applyCoupon(item.Price, q.CouponCode)
	case entities.CategoryRide, entities.CategoryEventSpace, entities.CategoryWeddingVenue:
		total = item.Price
	}

	if total < 0 {
		total = 0
	}
	return entities.Money{Amount: total, Currency: item.Currency}
}

// Nights returns the billable night count for a date range: the ceiling of
// whole days between start and end when both are set and end is after start,
// with a one night minimum in every other case.
func Nights(r *entities.DateRange) int {
	if r == nil || r.Start == "" || r.End == "" {
		return 1
	}
	start, err := time.Parse(isoDate, r.Start)
	if err != nil {
		return 1
	}
	end, err := time.Parse(isoDate, r.End)
	if err != nil || !end.After(start) {
		return 1
	}
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

func applyCoupon(price float64, code string) float64 {
	discount, ok := couponDiscounts[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return price
	}
	return price * (1 - discount)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
