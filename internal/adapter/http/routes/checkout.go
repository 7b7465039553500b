package routes

import (
	"storefront_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments    = "/payments"
	PathAttribution = "/attribution"
	PathTracking    = "/tracking"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, attributionHandler *handlers.AttributionHandler, trackingHandler *handlers.TrackingHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", checkoutHandler.CreatePixPayment)
	}

	attribution := rg.Group(PathAttribution)
	{
		attribution.POST("/resend", attributionHandler.Resend)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.POST("/visit", trackingHandler.Visit)
		tracking.GET("", trackingHandler.Current)
		tracking.GET("/checkout", trackingHandler.Checkout)
	}
}
