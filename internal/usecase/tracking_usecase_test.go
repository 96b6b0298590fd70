package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/tracking"
)

var (
	pickupPoint = entities.LatLng{Lat: 27.7172, Lng: 85.3240}
	vehicleAt   = entities.LatLng{Lat: 27.7000, Lng: 85.3000}
)

func confirmedRide(id string) entities.BookingRecord {
	return entities.BookingRecord{
		ID:       id,
		Category: entities.CategoryRide,
		Status:   entities.BookingStatusConfirmed,
	}
}

func TestTrackingUseCase_Start(t *testing.T) {
	t.Run("invalid booking id", func(t *testing.T) {
		uc := NewTrackingUseCase(&stubBookings{}, time.Second)
		_, err := uc.Start(context.Background(), " ", vehicleAt, pickupPoint)
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{}}, time.Second)
		_, err := uc.Start(context.Background(), "ghost", vehicleAt, pickupPoint)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("category without tracking", func(t *testing.T) {
		lodge := entities.BookingRecord{ID: "b-1", Category: entities.CategoryLodging, Status: entities.BookingStatusConfirmed}
		uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{"b-1": lodge}}, time.Second)
		_, err := uc.Start(context.Background(), "b-1", vehicleAt, pickupPoint)
		if !errors.Is(err, ErrBookingNotTracked) {
			t.Fatalf("expected ErrBookingNotTracked, got %v", err)
		}
	})

	t.Run("pending booking not trackable", func(t *testing.T) {
		ride := confirmedRide("b-2")
		ride.Status = entities.BookingStatusPendingPayment
		uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{"b-2": ride}}, time.Second)
		_, err := uc.Start(context.Background(), "b-2", vehicleAt, pickupPoint)
		if !errors.Is(err, ErrBookingNotConfirmed) {
			t.Fatalf("expected ErrBookingNotConfirmed, got %v", err)
		}
	})

	t.Run("success returns initial snapshot", func(t *testing.T) {
		uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{"b-3": confirmedRide("b-3")}}, time.Hour)
		snap, err := uc.Start(context.Background(), "b-3", vehicleAt, pickupPoint)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer uc.Stop(snap.SessionID)

		if snap.SessionID == "" || snap.BookingID != "b-3" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
		if snap.Position != vehicleAt || snap.Destination != pickupPoint {
			t.Fatalf("unexpected coordinates: %+v", snap)
		}
		want := tracking.DistanceKm(vehicleAt, pickupPoint)
		if snap.DistanceKm != want {
			t.Fatalf("expected distance %v, got %v", want, snap.DistanceKm)
		}
		if snap.ETAMinutes < 1 {
			t.Fatalf("eta must be at least 1, got %d", snap.ETAMinutes)
		}
		if snap.Arrived {
			t.Fatalf("agent cannot be arrived at start")
		}
	})
}

func TestTrackingUseCase_GetAndStop(t *testing.T) {
	t.Run("unknown session", func(t *testing.T) {
		uc := NewTrackingUseCase(&stubBookings{}, time.Second)
		if _, err := uc.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if err := uc.Stop("nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("stop removes session", func(t *testing.T) {
		uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{"b-1": confirmedRide("b-1")}}, time.Hour)
		snap, err := uc.Start(context.Background(), "b-1", vehicleAt, pickupPoint)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Stop(snap.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Get(snap.SessionID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound after stop, got %v", err)
		}
		// Second stop is not an error on the session goroutine, only a lookup miss.
		if err := uc.Stop(snap.SessionID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestTrackingUseCase_Convergence(t *testing.T) {
	uc := NewTrackingUseCase(&stubBookings{records: map[string]entities.BookingRecord{"b-1": confirmedRide("b-1")}}, 2*time.Millisecond)

	// Start close to the pickup so the session converges quickly.
	near := entities.LatLng{Lat: pickupPoint.Lat + 0.01, Lng: pickupPoint.Lng + 0.01}
	snap, err := uc.Start(context.Background(), "b-1", near, pickupPoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer uc.Stop(snap.SessionID)

	prev := snap.DistanceKm
	deadline := time.After(3 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("session did not arrive in time, distance=%v", prev)
		default:
		}

		time.Sleep(10 * time.Millisecond)
		cur, err := uc.Get(snap.SessionID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cur.DistanceKm > prev {
			t.Fatalf("distance increased: %v -> %v", prev, cur.DistanceKm)
		}
		prev = cur.DistanceKm
		if cur.Arrived {
			if cur.DistanceKm >= tracking.ArrivalThresholdKm {
				t.Fatalf("arrived but distance %v above threshold", cur.DistanceKm)
			}
			// Position must be frozen after arrival.
			time.Sleep(20 * time.Millisecond)
			later, err := uc.Get(snap.SessionID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if later.Position != cur.Position {
				t.Fatalf("arrived agent moved: %+v -> %+v", cur.Position, later.Position)
			}
			return
		}
	}
}
