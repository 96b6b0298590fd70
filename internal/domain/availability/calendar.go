package availability

import (
	"errors"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

const isoDate = "2006-01-02"

var (
	ErrEndRequired    = errors.New("checkout date is required for this category")
	ErrStartInPast    = errors.New("start date precedes today")
	ErrEndBeforeStart = errors.New("end date must be after start date")
	ErrBadDate        = errors.New("date is not a valid ISO date")
)

// Disabled reports whether a calendar cell may not be selected: any date
// strictly before today, and any date in the item's blocked set. Unparseable
// dates are disabled rather than rejected; this package never errors on
// display paths.
func Disabled(date, today string, blocked map[string]struct{}) bool {
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return true
	}
	t, err := time.Parse(isoDate, today)
	if err != nil {
		return true
	}
	if d.Before(t) {
		return true
	}
	_, isBlocked := blocked[date]
	return isBlocked
}

// Selection is the two-anchor date pick driven by calendar clicks.
//
// The click rules make an inverted pair unrepresentable: a click can only
// restart the selection, move the start earlier, or extend it forward.
type Selection struct {
	Start string
	End   string
}

// Click applies one selection gesture on an enabled cell.
func (s *Selection) Click(date string) {
	switch {
	case s.Start == "" || (s.Start != "" && s.End != ""):
		s.Start = date
		s.End = ""
	case date <= s.Start:
		s.Start = date
	default:
		s.End = date
	}
}

// InRange reports whether date lies strictly between the selection anchors.
// The anchors themselves render as anchors, not as in-range cells.
func (s Selection) InRange(date string) bool {
	if s.Start == "" || s.End == "" {
		return false
	}
	return date > s.Start && date < s.End
}

// ValidateRange is the submission-time check performed on a booking draft.
// today is the current date truncated to midnight, formatted as ISO.
func ValidateRange(category entities.Category, r *entities.DateRange, today string) error {
	if r == nil || r.Start == "" {
		if category.RequiresCheckout() {
			return ErrEndRequired
		}
		return nil
	}
	start, err := time.Parse(isoDate, r.Start)
	if err != nil {
		return ErrBadDate
	}
	t, err := time.Parse(isoDate, today)
	if err != nil {
		return ErrBadDate
	}
	if start.Before(t) {
		return ErrStartInPast
	}
	if r.End == "" {
		if category.RequiresCheckout() {
			return ErrEndRequired
		}
		return nil
	}
	end, err := time.Parse(isoDate, r.End)
	if err != nil {
		return ErrBadDate
	}
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	return nil
}
