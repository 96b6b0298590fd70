package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/availability"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/pricing"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrMissingRequester    = errors.New("requester name is required")
	ErrInvalidEmail        = errors.New("requester email is malformed")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrBookingNotTracked   = errors.New("booking category has no live tracking")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
)

const isoDate = "2006-01-02"

// CreateBookingInput is the draft a booking form submits. TotalPrice and
// currency are deliberately absent: whatever the client displayed is an
// untrusted hint, and the authoritative total is always recomputed here from
// the catalog item.
type CreateBookingInput struct {
	ItemID           string
	RequesterName    string
	RequesterEmail   string
	DateRange        *entities.DateRange
	ParticipantCount int
	CouponCode       string
	Notes            string
	Attachments      entities.Attachments
}

// IBookingUseCase drives the booking lifecycle: pending_payment at creation,
// confirmed after payment, nothing else.

type IBookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (entities.BookingRecord, error)
	Confirm(ctx context.Context, bookingID string) (entities.BookingRecord, error)
	GetByID(ctx context.Context, bookingID string) (entities.BookingRecord, error)
	ListByEmail(ctx context.Context, email string) ([]entities.BookingRecord, error)
}

type BookingUseCase struct {
	repo    interfaces.IBookingRepository
	catalog interfaces.ICatalogRepository
	now     func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, catalog interfaces.ICatalogRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, catalog: catalog, now: time.Now}
}

func (u *BookingUseCase) Create(ctx context.Context, input CreateBookingInput) (entities.BookingRecord, error) {
	itemID := strings.TrimSpace(input.ItemID)
	if itemID == "" {
		return entities.BookingRecord{}, ErrInvalidItemID
	}
	if strings.TrimSpace(input.RequesterName) == "" {
		return entities.BookingRecord{}, ErrMissingRequester
	}
	email := strings.TrimSpace(input.RequesterEmail)
	if !isValidEmail(email) {
		return entities.BookingRecord{}, ErrInvalidEmail
	}

	item, err := u.catalog.GetByID(ctx, itemID)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	if item.ID == "" {
		log.Printf("[booking][usecase] create rejected, unknown item item_id=%s", itemID)
		return entities.BookingRecord{}, ErrItemNotFound
	}

	today := u.now().UTC().Format(isoDate)
	if err := availability.ValidateRange(item.Category, input.DateRange, today); err != nil {
		return entities.BookingRecord{}, fmt.Errorf("%w: %s", ErrInvalidDateRange, err)
	}

	participants := input.ParticipantCount
	if participants < 1 {
		participants = 1
	}

	// The record's currency is always the item's; client-declared totals never
	// cross this trust boundary.
	total := pricing.ComputeTotal(pricing.Quote{
		Item:             item,
		DateRange:        input.DateRange,
		ParticipantCount: participants,
		CouponCode:       input.CouponCode,
	})

	record := entities.BookingRecord{
		ID:               uuid.NewString(),
		ItemID:           item.ID,
		Category:         item.Category,
		RequesterName:    strings.TrimSpace(input.RequesterName),
		RequesterEmail:   email,
		DateRange:        input.DateRange,
		ParticipantCount: participants,
		TotalPrice:       total,
		Status:           entities.BookingStatusPendingPayment,
		Notes:            strings.TrimSpace(input.Notes),
		Attachments:      input.Attachments,
		CreatedAt:        u.now().UTC(),
	}

	created, err := u.repo.Append(ctx, record)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s item_id=%s category=%s total=%.2f %s",
		created.ID, created.ItemID, created.Category, created.TotalPrice.Amount, created.TotalPrice.Currency)
	return created, nil
}

func (u *BookingUseCase) Confirm(ctx context.Context, bookingID string) (entities.BookingRecord, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.BookingRecord{}, ErrInvalidBookingID
	}

	// Re-confirming rewrites the same status; idempotency is not promised but
	// the operation is harmless on an already confirmed record.
	updated, err := u.repo.UpdateStatus(ctx, bookingID, entities.BookingStatusConfirmed)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	if updated.ID == "" {
		return entities.BookingRecord{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] confirmed booking_id=%s", updated.ID)
	return updated, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, bookingID string) (entities.BookingRecord, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.BookingRecord{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	if b.ID == "" {
		return entities.BookingRecord{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByEmail(ctx context.Context, email string) ([]entities.BookingRecord, error) {
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	return u.repo.ListByEmail(ctx, email)
}

// isValidEmail is the deliberately simple local@domain shape check; real
// deliverability is not this service's concern.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.Contains(email[at+1:], "@")
}
