package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/request"
	response "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/response"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTrackingPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid tracking payload", http.StatusBadRequest)
)

// TrackingHandler manages simulated live-tracking sessions over HTTP.

type TrackingHandler struct {
	tracking usecase.ITrackingUseCase
}

func NewTrackingHandler(tracking usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// StartTracking opens a tracking session for a confirmed ride or flight
// booking and returns the first snapshot.
func (h *TrackingHandler) StartTracking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var payload request.TrackingStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}
	current, err := payload.Current.ToLatLng()
	if err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}
	destination, err := payload.Destination.ToLatLng()
	if err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}
	log.Printf("[tracking][handler] start booking_id=%s", bookingID)

	snapshot, err := h.tracking.Start(c.Request.Context(), bookingID, current, destination)
	if err != nil {
		log.Printf("[tracking][handler] start failed booking_id=%s err=%v", bookingID, err)
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tracking][handler] start success booking_id=%s session_id=%s", bookingID, snapshot.SessionID)

	c.JSON(http.StatusCreated, response.FromTrackingSnapshot(snapshot))
}

// GetTracking returns the current snapshot of a session.
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	sessionID := c.Param("session_id")
	snapshot, err := h.tracking.Get(sessionID)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTrackingSnapshot(snapshot))
}

// StopTracking stops a session and releases its ticker.
func (h *TrackingHandler) StopTracking(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := h.tracking.Stop(sessionID); err != nil {
		log.Printf("[tracking][handler] stop failed session_id=%s err=%v", sessionID, err)
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tracking][handler] stop success session_id=%s", sessionID)
	c.Status(http.StatusNoContent)
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Tracking session not found", http.StatusNotFound)
	default:
		return mapBookingError(err)
	}
}
