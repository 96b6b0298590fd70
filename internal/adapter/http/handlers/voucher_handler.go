package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/document"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// VoucherHandler streams PDF vouchers for confirmed bookings.

type VoucherHandler struct {
	bookings usecase.IBookingUseCase
	catalog  usecase.ICatalogUseCase
}

func NewVoucherHandler(bookings usecase.IBookingUseCase, catalog usecase.ICatalogUseCase) *VoucherHandler {
	return &VoucherHandler{bookings: bookings, catalog: catalog}
}

// GetVoucher renders the booking voucher PDF. Only confirmed bookings have a
// voucher; pending and cancelled ones get a 409.
func (h *VoucherHandler) GetVoucher(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log.Printf("[voucher][handler] get start booking_id=%s", bookingID)

	record, err := h.bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[voucher][handler] get failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if record.Status != entities.BookingStatusConfirmed {
		appErr := pkg.NewDomainErrorSimple("BOOKING_NOT_CONFIRMED", "Voucher is only available for confirmed bookings", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.catalog.GetByID(c.Request.Context(), record.ItemID)
	if err != nil && !errors.Is(err, usecase.ErrItemNotFound) {
		log.Printf("[voucher][handler] item lookup failed booking_id=%s item_id=%s err=%v", bookingID, record.ItemID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, filename, err := document.BuildBookingVoucher(record, item)
	if err != nil {
		log.Printf("[voucher][handler] build failed booking_id=%s err=%v", bookingID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Could not build voucher", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[voucher][handler] get success booking_id=%s bytes=%d", bookingID, len(data))

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
