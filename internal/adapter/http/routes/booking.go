package routes

import (
	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings    = "/bookings"
	PathItems       = "/items"
	PathTracking    = "/tracking"
	PathPreferences = "/preferences"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, voucherHandler *handlers.VoucherHandler, trackingHandler *handlers.TrackingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.POST("/:booking_id/pay", bookingHandler.PayBooking)
		bookings.GET("/:booking_id/voucher", voucherHandler.GetVoucher)
		bookings.POST("/:booking_id/tracking", trackingHandler.StartTracking)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.GET("/:session_id", trackingHandler.GetTracking)
		tracking.DELETE("/:session_id", trackingHandler.StopTracking)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	items := rg.Group(PathItems)
	{
		items.GET("", catalogHandler.ListItems)
		items.GET("/:item_id", catalogHandler.GetItem)
	}
}

func addPreferenceRoutes(rg *gin.RouterGroup, preferenceHandler *handlers.PreferenceHandler) {
	preferences := rg.Group(PathPreferences)
	{
		preferences.GET("/:user_id/currency", preferenceHandler.GetCurrency)
		preferences.PUT("/:user_id/currency", preferenceHandler.SetCurrency)
	}
}
