package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/tracking"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("tracking session not found")

const defaultTickInterval = 2 * time.Second

// TrackingSnapshot is the current state of one live tracking session.
type TrackingSnapshot struct {
	SessionID   string
	BookingID   string
	Position    entities.LatLng
	Destination entities.LatLng
	DistanceKm  float64
	ETAMinutes  int
	Arrived     bool
}

// ITrackingUseCase manages live tracking sessions for confirmed transport
// bookings. Every session owns one ticker goroutine and an explicit Stop;
// nothing here relies on a consumer's teardown to release the timer.

type ITrackingUseCase interface {
	Start(ctx context.Context, bookingID string, current, destination entities.LatLng) (TrackingSnapshot, error)
	Get(sessionID string) (TrackingSnapshot, error)
	Stop(sessionID string) error
}

type TrackingUseCase struct {
	bookings IBookingUseCase
	interval time.Duration

	mu       sync.Mutex
	sessions map[string]*trackingSession
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(bookings IBookingUseCase, interval time.Duration) *TrackingUseCase {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &TrackingUseCase{
		bookings: bookings,
		interval: interval,
		sessions: make(map[string]*trackingSession),
	}
}

func (u *TrackingUseCase) Start(ctx context.Context, bookingID string, current, destination entities.LatLng) (TrackingSnapshot, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return TrackingSnapshot{}, ErrInvalidBookingID
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return TrackingSnapshot{}, err
	}
	if !booking.Category.Trackable() {
		return TrackingSnapshot{}, ErrBookingNotTracked
	}
	if booking.Status != entities.BookingStatusConfirmed {
		return TrackingSnapshot{}, ErrBookingNotConfirmed
	}

	s := &trackingSession{
		id:          uuid.NewString(),
		bookingID:   booking.ID,
		position:    current,
		destination: destination,
		done:        make(chan struct{}),
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	go s.run(u.interval)
	log.Printf("[tracking][usecase] session started session_id=%s booking_id=%s", s.id, s.bookingID)
	return s.snapshot(), nil
}

func (u *TrackingUseCase) Get(sessionID string) (TrackingSnapshot, error) {
	u.mu.Lock()
	s, ok := u.sessions[strings.TrimSpace(sessionID)]
	u.mu.Unlock()
	if !ok {
		return TrackingSnapshot{}, ErrSessionNotFound
	}
	return s.snapshot(), nil
}

func (u *TrackingUseCase) Stop(sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	if ok {
		delete(u.sessions, sessionID)
	}
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.stop()
	log.Printf("[tracking][usecase] session stopped session_id=%s booking_id=%s", s.id, s.bookingID)
	return nil
}

// trackingSession is one agent converging on one fixed destination. The
// position is ephemeral state, never persisted with the booking.
type trackingSession struct {
	id          string
	bookingID   string
	destination entities.LatLng

	mu       sync.Mutex
	position entities.LatLng

	stopOnce sync.Once
	done     chan struct{}
}

func (s *trackingSession) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.position = tracking.Tick(s.position, s.destination)
			arrived := tracking.Arrived(s.position, s.destination)
			s.mu.Unlock()
			if arrived {
				// Position freezes at arrival; the ticker is released but the
				// session stays readable until stopped.
				return
			}
		}
	}
}

func (s *trackingSession) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *trackingSession) snapshot() TrackingSnapshot {
	s.mu.Lock()
	pos := s.position
	s.mu.Unlock()

	d := tracking.DistanceKm(pos, s.destination)
	return TrackingSnapshot{
		SessionID:   s.id,
		BookingID:   s.bookingID,
		Position:    pos,
		Destination: s.destination,
		DistanceKm:  d,
		ETAMinutes:  tracking.ETAMinutes(d),
		Arrived:     d < tracking.ArrivalThresholdKm,
	}
}
