package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	mock_interfaces "github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newBookingUseCaseAt(t *testing.T, ctrl *gomock.Controller) (*BookingUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockICatalogRepository) {
	t.Helper()
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewBookingUseCase(repo, catalog)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, catalog
}

func trekLodge() entities.ReservableItem {
	return entities.ReservableItem{
		ID:            "lodge-1",
		Name:          "Annapurna View Lodge",
		Category:      entities.CategoryLodging,
		PricePerNight: 150,
		Currency:      entities.CurrencyNPR,
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ItemID:           "lodge-1",
		RequesterName:    "Asha Gurung",
		RequesterEmail:   "asha@example.com",
		DateRange:        &entities.DateRange{Start: "2024-06-01", End: "2024-06-04"},
		ParticipantCount: 2,
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	t.Run("missing item id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		in := validInput()
		in.ItemID = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("missing requester name", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		in := validInput()
		in.RequesterName = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrMissingRequester) {
			t.Fatalf("expected ErrMissingRequester, got %v", err)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		for _, email := range []string{"", "nodomain@", "@nolocal", "plainaddress", "two@@ats"} {
			in := validInput()
			in.RequesterEmail = email
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
			}
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newBookingUseCaseAt(t, ctrl)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(entities.ReservableItem{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newBookingUseCaseAt(t, ctrl)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(entities.ReservableItem{}, nil)

		_, err := uc.Create(context.Background(), validInput())
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("lodging without checkout date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newBookingUseCaseAt(t, ctrl)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(trekLodge(), nil)

		in := validInput()
		in.DateRange = &entities.DateRange{Start: "2024-06-01"}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("start before today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newBookingUseCaseAt(t, ctrl)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(trekLodge(), nil)

		in := validInput()
		in.DateRange = &entities.DateRange{Start: "2024-04-01", End: "2024-04-05"}
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("success recomputes total from item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, catalog := newBookingUseCaseAt(t, ctrl)

		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(trekLodge(), nil)
		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingRecord{})).DoAndReturn(
			func(_ context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
				if b.ID == "" {
					t.Fatalf("expected generated id")
				}
				if b.Status != entities.BookingStatusPendingPayment {
					t.Fatalf("expected pending_payment, got %s", b.Status)
				}
				if b.TotalPrice.Amount != 450 || b.TotalPrice.Currency != entities.CurrencyNPR {
					t.Fatalf("unexpected total: %+v", b.TotalPrice)
				}
				if b.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return b, nil
			},
		)

		created, err := uc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Category != entities.CategoryLodging {
			t.Fatalf("expected lodging, got %s", created.Category)
		}
	})

	t.Run("participant count clamps to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, catalog := newBookingUseCaseAt(t, ctrl)

		adventure := entities.ReservableItem{
			ID:             "trek-1",
			Category:       entities.CategoryAdventure,
			PricePerPerson: 80,
			Currency:       entities.CurrencyUSD,
		}
		catalog.EXPECT().GetByID(gomock.Any(), "trek-1").Return(adventure, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
				if b.ParticipantCount != 1 || b.TotalPrice.Amount != 80 {
					t.Fatalf("unexpected record: %+v", b)
				}
				return b, nil
			},
		)

		in := validInput()
		in.ItemID = "trek-1"
		in.DateRange = nil
		in.ParticipantCount = 0
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero priced item creates free booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, catalog := newBookingUseCaseAt(t, ctrl)

		free := entities.ReservableItem{ID: "ride-9", Category: entities.CategoryRide, Currency: entities.CurrencyNPR}
		catalog.EXPECT().GetByID(gomock.Any(), "ride-9").Return(free, nil)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
				if b.TotalPrice.Amount != 0 {
					t.Fatalf("expected free booking, got %v", b.TotalPrice.Amount)
				}
				return b, nil
			},
		)

		in := validInput()
		in.ItemID = "ride-9"
		in.DateRange = nil
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_Confirm(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.Confirm(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusConfirmed).Return(entities.BookingRecord{}, errors.New("db"))

		_, err := uc.Confirm(context.Background(), "b-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		repo.EXPECT().UpdateStatus(gomock.Any(), "missing", entities.BookingStatusConfirmed).Return(entities.BookingRecord{}, nil)

		_, err := uc.Confirm(context.Background(), "missing")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		expected := entities.BookingRecord{ID: "b-1", Status: entities.BookingStatusConfirmed}
		repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BookingStatusConfirmed).Return(expected, nil)

		got, err := uc.Confirm(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", got.Status)
		}
	})
}

func TestBookingUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "b-404").Return(entities.BookingRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "b-404")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.BookingRecord{ID: "b-1"}, nil)

		got, err := uc.GetByID(context.Background(), "b-1")
		if err != nil || got.ID != "b-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestBookingUseCase_ListByEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		_, err := uc.ListByEmail(context.Background(), "not-an-email")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newBookingUseCaseAt(t, ctrl)
		repo.EXPECT().ListByEmail(gomock.Any(), "asha@example.com").Return([]entities.BookingRecord{{ID: "b-1"}}, nil)

		got, err := uc.ListByEmail(context.Background(), " asha@example.com ")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v err=%v", got, err)
		}
	})
}

// Lifecycle scenario from the booking form's point of view: a lodging stay at
// 150/night for three nights, two guests, paid and confirmed.
func TestBookingUseCase_LifecycleScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, catalog := newBookingUseCaseAt(t, ctrl)

	store := map[string]entities.BookingRecord{}

	catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(trekLodge(), nil)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.BookingRecord) (entities.BookingRecord, error) {
			store[b.ID] = b
			return b, nil
		},
	)
	repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entities.BookingStatusConfirmed).DoAndReturn(
		func(_ context.Context, id string, status entities.BookingStatus) (entities.BookingRecord, error) {
			b, ok := store[id]
			if !ok {
				return entities.BookingRecord{}, nil
			}
			b.Status = status
			store[id] = b
			return b, nil
		},
	)

	created, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != entities.BookingStatusPendingPayment {
		t.Fatalf("fresh booking must be pending_payment, got %s", created.Status)
	}
	if created.TotalPrice.Amount != 450 || created.TotalPrice.Currency != entities.CurrencyNPR {
		t.Fatalf("unexpected total: %+v", created.TotalPrice)
	}

	confirmed, err := uc.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != entities.BookingStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", confirmed.Status)
	}
	if confirmed.ID != created.ID {
		t.Fatalf("id changed across confirm: %s vs %s", created.ID, confirmed.ID)
	}
	if confirmed.TotalPrice != created.TotalPrice {
		t.Fatalf("total changed across confirm: %+v vs %+v", created.TotalPrice, confirmed.TotalPrice)
	}
}
