package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	request "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/request"
	response "github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/dto/response"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for the booking lifecycle.

type BookingHandler struct {
	bookings    usecase.IBookingUseCase
	payments    usecase.IPaymentUseCase
	preferences usecase.IPreferenceUseCase
}

func NewBookingHandler(bookings usecase.IBookingUseCase, payments usecase.IPaymentUseCase, preferences usecase.IPreferenceUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings, payments: payments, preferences: preferences}
}

// CreateBooking creates a draft booking from a submitted form. Free bookings
// (total 0) are confirmed on the spot since there is nothing to pay.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create start item_id=%s", payload.ItemID)

	input := usecase.CreateBookingInput{
		ItemID:           payload.ItemID,
		RequesterName:    payload.RequesterName,
		RequesterEmail:   payload.RequesterEmail,
		DateRange:        payload.ToDateRange(),
		ParticipantCount: payload.ParticipantCount,
		CouponCode:       payload.CouponCode,
		Notes:            payload.Notes,
		Attachments:      payload.ToAttachments(),
	}

	record, err := h.bookings.Create(c.Request.Context(), input)
	if err != nil {
		log.Printf("[booking][handler] create failed item_id=%s err=%v", payload.ItemID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if record.TotalPrice.Amount == 0 {
		confirmed, err := h.bookings.Confirm(c.Request.Context(), record.ID)
		if err != nil {
			log.Printf("[booking][handler] auto-confirm failed booking_id=%s err=%v", record.ID, err)
			appErr := mapBookingError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		record = confirmed
	}
	log.Printf("[booking][handler] create success booking_id=%s status=%s", record.ID, record.Status)

	c.JSON(http.StatusCreated, response.FromBooking(record, h.displayCurrency(c, record.TotalPrice.Currency)))
}

// GetBooking returns a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	record, err := h.bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[booking][handler] get failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(record, h.displayCurrency(c, record.TotalPrice.Currency)))
}

// ListBookings returns all bookings for the requester email in the query.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter email is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, err := h.bookings.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[booking][handler] list failed email=%s err=%v", email, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	display := entities.CurrencyUSD
	if len(records) > 0 {
		display = records[0].TotalPrice.Currency
	}
	c.JSON(http.StatusOK, response.FromBookings(records, h.displayCurrency(c, display)))
}

// PayBooking runs the payment step and confirms the booking.
func (h *BookingHandler) PayBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[payment][handler] pay start booking_id=%s", bookingID)

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload booking_id=%s err=%v", bookingID, err)
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	record, err := h.payments.Pay(c.Request.Context(), bookingID, payload)
	if err != nil {
		log.Printf("[payment][handler] pay failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pay success booking_id=%s status=%s", record.ID, record.Status)

	c.JSON(http.StatusOK, response.FromBooking(record, h.displayCurrency(c, record.TotalPrice.Currency)))
}

// readProviderPayload accepts either an empty body or a JSON payment payload,
// optionally wrapped in a `provider_payload` envelope.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return json.RawMessage("{}"), nil
	}
	var envelope request.PaymentCreateRequest
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(body) {
		return nil, errors.New("payment payload is not valid JSON")
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.ProviderPayload) > 0 {
		return envelope.ProviderPayload, nil
	}
	return json.RawMessage(body), nil
}

// displayCurrency resolves the currency used for display_total rendering:
// explicit `display_currency` query first, then the stored preference for
// `user_id`, then the fallback.
func (h *BookingHandler) displayCurrency(c *gin.Context, fallback entities.CurrencyCode) entities.CurrencyCode {
	if q := strings.ToUpper(strings.TrimSpace(c.Query("display_currency"))); q != "" {
		if code := entities.CurrencyCode(q); entities.IsValidCurrency(code) {
			return code
		}
	}
	if userID := strings.TrimSpace(c.Query("user_id")); userID != "" && h.preferences != nil {
		if code, err := h.preferences.GetDisplayCurrency(c.Request.Context(), userID); err == nil && entities.IsValidCurrency(code) {
			return code
		}
	}
	if entities.IsValidCurrency(fallback) {
		return fallback
	}
	return entities.CurrencyUSD
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrMissingRequester),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", fmt.Sprintf("Invalid date range: %v", err), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotConfirmed):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_CONFIRMED", "Booking is not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotTracked):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Booking category does not support tracking", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider credentials rejected", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
