package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	mock_interfaces "github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPreferenceUseCase_GetDisplayCurrency(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPreferenceUseCase(nil)
		_, err := uc.GetDisplayCurrency(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("missing preference defaults to usd", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPreferenceRepository(ctrl)
		uc := NewPreferenceUseCase(repo)

		repo.EXPECT().GetDisplayCurrency(gomock.Any(), "u-1").Return(entities.CurrencyCode(""), nil)

		got, err := uc.GetDisplayCurrency(context.Background(), "u-1")
		if err != nil || got != entities.CurrencyUSD {
			t.Fatalf("expected USD default, got %q err=%v", got, err)
		}
	})

	t.Run("corrupt preference defaults to usd", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPreferenceRepository(ctrl)
		uc := NewPreferenceUseCase(repo)

		repo.EXPECT().GetDisplayCurrency(gomock.Any(), "u-1").Return(entities.CurrencyCode("XYZ"), nil)

		got, err := uc.GetDisplayCurrency(context.Background(), "u-1")
		if err != nil || got != entities.CurrencyUSD {
			t.Fatalf("expected USD default, got %q err=%v", got, err)
		}
	})

	t.Run("stored preference wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPreferenceRepository(ctrl)
		uc := NewPreferenceUseCase(repo)

		repo.EXPECT().GetDisplayCurrency(gomock.Any(), "u-1").Return(entities.CurrencyNPR, nil)

		got, err := uc.GetDisplayCurrency(context.Background(), "u-1")
		if err != nil || got != entities.CurrencyNPR {
			t.Fatalf("expected NPR, got %q err=%v", got, err)
		}
	})
}

func TestPreferenceUseCase_SetDisplayCurrency(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPreferenceUseCase(nil)
		err := uc.SetDisplayCurrency(context.Background(), "", entities.CurrencyNPR)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		uc := NewPreferenceUseCase(nil)
		err := uc.SetDisplayCurrency(context.Background(), "u-1", entities.CurrencyCode("EUR"))
		if !errors.Is(err, ErrUnsupportedCurrency) {
			t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPreferenceRepository(ctrl)
		uc := NewPreferenceUseCase(repo)

		repo.EXPECT().SetDisplayCurrency(gomock.Any(), "u-1", entities.CurrencyINR).Return(nil)

		if err := uc.SetDisplayCurrency(context.Background(), " u-1 ", entities.CurrencyINR); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase(t *testing.T) {
	t.Run("invalid item id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.ReservableItem{}, nil)

		_, err := uc.GetByID(context.Background(), "x")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("lookup success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(trekLodge(), nil)

		item, err := uc.GetByID(context.Background(), " lodge-1 ")
		if err != nil || item.ID != "lodge-1" {
			t.Fatalf("unexpected result: %+v err=%v", item, err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.ReservableItem{trekLodge()}, nil)

		items, err := uc.List(context.Background())
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result: %v err=%v", items, err)
		}
	})
}
