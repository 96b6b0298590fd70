package response

import (
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
)

type TrackingResponse struct {
	SessionID   string         `json:"session_id"`
	BookingID   string         `json:"booking_id"`
	Position    LatLngResponse `json:"position"`
	Destination LatLngResponse `json:"destination"`
	DistanceKm  float64        `json:"distance_km"`
	ETAMinutes  int            `json:"eta_minutes"`
	Arrived     bool           `json:"arrived"`
}

func FromTrackingSnapshot(s usecase.TrackingSnapshot) TrackingResponse {
	return TrackingResponse{
		SessionID:   s.SessionID,
		BookingID:   s.BookingID,
		Position:    LatLngResponse{Lat: s.Position.Lat, Lng: s.Position.Lng},
		Destination: LatLngResponse{Lat: s.Destination.Lat, Lng: s.Destination.Lng},
		DistanceKm:  s.DistanceKm,
		ETAMinutes:  s.ETAMinutes,
		Arrived:     s.Arrived,
	}
}
