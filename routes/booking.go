package routes

import (
	"aspcare/handlers"
	"aspcare/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers quoting, checkout and order endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.SessionAuth(hb.Sessions)

	booking := r.Group("/api/booking")
	{
		booking.Use(auth)
		booking.GET("/rate", hb.GetRateHandler)   // Price for vehicle + wash + water
		booking.GET("/slots", hb.GetSlotsHandler) // Slot board for a date
	}

	checkout := r.Group("/api/checkout")
	{
		checkout.Use(auth)
		checkout.POST("", hb.StartCheckoutHandler)
		checkout.GET("", hb.GetCheckoutHandler)
		checkout.POST("/promo", hb.ApplyPromoHandler)
		checkout.DELETE("/promo", hb.RemovePromoHandler)
		checkout.POST("/payment-intent", hb.CreatePaymentIntentHandler)
	}

	orders := r.Group("/api/orders")
	{
		orders.Use(auth)
		orders.GET("", hb.ListOrdersHandler)
		orders.GET("/upgradeable", hb.GetUpgradeableHandler)
		orders.GET("/:id", hb.GetOrderHandler)
		orders.PUT("/:id/reschedule", hb.RescheduleHandler)
		orders.PUT("/:id/upgrade", hb.UpgradeHandler)
		orders.GET("/:id/cancel-quote", hb.CancelQuoteHandler)
		orders.POST("/:id/cancel", hb.ConfirmCancelHandler)
	}
}
