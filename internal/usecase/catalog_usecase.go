package usecase

import (
	"context"
	"strings"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"
)

// ICatalogUseCase exposes read-only catalog lookups for the listing views.

type ICatalogUseCase interface {
	GetByID(ctx context.Context, itemID string) (entities.ReservableItem, error)
	List(ctx context.Context) ([]entities.ReservableItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetByID(ctx context.Context, itemID string) (entities.ReservableItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ReservableItem{}, ErrInvalidItemID
	}

	item, err := u.repo.GetByID(ctx, itemID)
	if err != nil {
		return entities.ReservableItem{}, err
	}
	if item.ID == "" {
		return entities.ReservableItem{}, ErrItemNotFound
	}
	return item, nil
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.ReservableItem, error) {
	return u.repo.List(ctx)
}
