package entities

// Category identifies what kind of resource an item is.
//
// The category alone decides which price field is authoritative for the item
// (per-night, per-person or flat); the pricing package switches on it
// exhaustively instead of probing which optional fields happen to be set.

type Category string

const (
	CategoryLodging         Category = "lodging"
	CategoryFlight          Category = "flight"
	CategoryAdventure       Category = "adventure"
	CategoryRide            Category = "ride"
	CategoryEventSpace      Category = "event_space"
	CategoryMedicalFacility Category = "medical_facility"
	CategoryMedicalDoctor   Category = "medical_doctor"
	CategoryWeddingVenue    Category = "wedding_venue"
)

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryLodging, CategoryFlight, CategoryAdventure, CategoryRide,
		CategoryEventSpace, CategoryMedicalFacility, CategoryMedicalDoctor,
		CategoryWeddingVenue:
		return true
	}
	return false
}

// RequiresCheckout reports whether bookings in this category need an end date.
// Only lodging is booked night-by-night; everything else is a single-day or
// flat engagement.
func (c Category) RequiresCheckout() bool {
	return c == CategoryLodging
}

// Trackable reports whether a confirmed booking in this category gets a live
// tracking session (a vehicle converging on the pickup/venue point).
func (c Category) Trackable() bool {
	return c == CategoryRide || c == CategoryFlight
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReservableItem is a bookable catalog entry.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only the price field matching the category is authoritative; the others may
// be zero. Currency is the item's native currency and is the only currency a
// booking against this item is ever priced in.
type ReservableItem struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Category       Category     `json:"category"`
	PricePerNight  float64      `json:"price_per_night,omitempty"`
	PricePerPerson float64      `json:"price_per_person,omitempty"`
	Price          float64      `json:"price,omitempty"`
	Currency       CurrencyCode `json:"currency"`
	BlockedDates   []string     `json:"blocked_dates,omitempty"`
	Location       *LatLng      `json:"location,omitempty"`
}

// BlockedSet returns the item's blocked dates as a lookup set keyed by
// ISO date (2006-01-02).
func (i ReservableItem) BlockedSet() map[string]struct{} {
	if len(i.BlockedDates) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(i.BlockedDates))
	for _, d := range i.BlockedDates {
		set[d] = struct{}{}
	}
	return set
}
