package interfaces

import (
	"context"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for BookingRecord.
//
// Append is an atomic conditional insert: the store serializes concurrent
// appends, so two in-flight creates can never drop one another's record.
// Absent records come back as the zero value with a nil error; the use case
// maps that to its not-found sentinel.

type IBookingRepository interface {
	Append(ctx context.Context, b entities.BookingRecord) (entities.BookingRecord, error)
	GetByID(ctx context.Context, id string) (entities.BookingRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.BookingRecord, error)
	ListByEmail(ctx context.Context, email string) ([]entities.BookingRecord, error)
}
