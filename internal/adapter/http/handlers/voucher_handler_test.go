package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/handlers/mocks"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVoucherRouter(h *VoucherHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/bookings/:booking_id/voucher", h.GetVoucher)
	return r
}

func TestVoucherHandler_GetVoucher(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewVoucherHandler(bookings, catalog)

		bookings.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.BookingRecord{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/ghost/voucher", nil)
		w := httptest.NewRecorder()
		newVoucherRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("pending booking has no voucher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewVoucherHandler(bookings, catalog)

		bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(pendingLodgeBooking(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/voucher", nil)
		w := httptest.NewRecorder()
		newVoucherRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success streams pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewVoucherHandler(bookings, catalog)

		confirmed := pendingLodgeBooking()
		confirmed.Status = entities.BookingStatusConfirmed
		bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(confirmed, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(entities.ReservableItem{ID: "lodge-1", Name: "Annapurna View Lodge"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/voucher", nil)
		w := httptest.NewRecorder()
		newVoucherRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "VOUCHER_bk-1.pdf") {
			t.Fatalf("unexpected content disposition: %q", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf body")
		}
	})

	t.Run("missing item degrades to placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewVoucherHandler(bookings, catalog)

		confirmed := pendingLodgeBooking()
		confirmed.Status = entities.BookingStatusConfirmed
		bookings.EXPECT().GetByID(gomock.Any(), "bk-1").Return(confirmed, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "lodge-1").Return(entities.ReservableItem{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/voucher", nil)
		w := httptest.NewRecorder()
		newVoucherRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
