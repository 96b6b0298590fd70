package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase is the payment confirmation entry point consumed by forms.
//
// Settlement is out of scope: the gateway produces a provider receipt for
// traceability, and the booking transition itself is the pure
// pending_payment -> confirmed step owned by the booking use case.

type IPaymentUseCase interface {
	Pay(ctx context.Context, bookingID string, payload json.RawMessage) (entities.BookingRecord, error)
}

type PaymentUseCase struct {
	bookings IBookingUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(bookings IBookingUseCase, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{bookings: bookings, gateway: gateway}
}

func (u *PaymentUseCase) Pay(ctx context.Context, bookingID string, payload json.RawMessage) (entities.BookingRecord, error) {
	bookingID = strings.TrimSpace(bookingID)
	log.Printf("[payment][usecase] pay start booking_id=%q payload_len=%d", bookingID, len(payload))
	if bookingID == "" {
		return entities.BookingRecord{}, ErrInvalidBookingID
	}
	if len(payload) > 0 && !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload booking_id=%s", bookingID)
		return entities.BookingRecord{}, ErrInvalidPaymentPayload
	}

	booking, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] booking lookup failed booking_id=%s err=%v", bookingID, err)
		return entities.BookingRecord{}, err
	}

	// Free bookings and re-payments skip the provider entirely.
	if booking.TotalPrice.Amount > 0 && booking.Status != entities.BookingStatusConfirmed && u.gateway != nil {
		enriched, err := u.enrichPayload(payload, booking)
		if err != nil {
			return entities.BookingRecord{}, err
		}

		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] gateway failed booking_id=%s err=%v", bookingID, err)
			if isGatewayUnauthorized(err) {
				return entities.BookingRecord{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.BookingRecord{}, ErrPaymentGatewayBadRequest
			}
			return entities.BookingRecord{}, err
		}
		log.Printf("[payment][usecase] gateway success booking_id=%s provider_payment_id=%s provider_status=%s",
			bookingID, providerID, providerStatus)
	}

	confirmed, err := u.bookings.Confirm(ctx, bookingID)
	if err != nil {
		return entities.BookingRecord{}, err
	}
	log.Printf("[payment][usecase] pay success booking_id=%s status=%s", confirmed.ID, confirmed.Status)
	return confirmed, nil
}

// enrichPayload links the provider request to the booking. The amount written
// here is the server's own computed total; the client payload never sets it.
func (u *PaymentUseCase) enrichPayload(payload json.RawMessage, booking entities.BookingRecord) (json.RawMessage, error) {
	req := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = booking.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Booking %s (%s)", booking.ID, booking.Category)
	}
	req["transaction_amount"] = booking.TotalPrice.Amount
	return json.Marshal(req)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
