package interfaces

import (
	"context"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

// ICatalogRepository is the read-only item catalog collaborator. The booking
// engine never mutates catalog data.

type ICatalogRepository interface {
	GetByID(ctx context.Context, id string) (entities.ReservableItem, error)
	List(ctx context.Context) ([]entities.ReservableItem, error)
}
