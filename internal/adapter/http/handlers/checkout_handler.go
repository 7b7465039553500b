package handlers

import (
	"errors"
	"log"
	"net/http"

	request "storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/infrastructure/payments"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// debugAttributionHeader opts into echoing the raw attribution-forward outcome
// in the response. Diagnostic only; ordinary callers never see the field.
const debugAttributionHeader = "X-Debug-Utmify"

// CheckoutHandler handles the checkout submission endpoint.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePixPayment accepts a checkout submission and returns the scannable
// PIX charge created with the gateway.
func (h *CheckoutHandler) CreatePixPayment(c *gin.Context) {
	log.Printf("[checkout][handler] create start")

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid checkout request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	debug := c.GetHeader(debugAttributionHeader) == "1"

	result, err := h.usecase.CreatePixPayment(c.Request.Context(), req.ToEntity(), debug)
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success order_id=%s", result.Charge.OrderID)

	c.JSON(http.StatusOK, response.FromPixCharge(result.Charge, result.AttributionDebug))
}

func mapCheckoutError(err error) *pkg.AppError {
	var gatewayErr *payments.GatewayError
	switch {
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "payment gateway credentials not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCheckoutRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid checkout request", http.StatusBadRequest)
	case errors.As(err, &gatewayErr):
		// Gateway messages are caller-safe; credentials never travel in them.
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_ERROR", gatewayErr.Message, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("PAYMENT_PROCESSING_FAILED", "payment processing failed", err, http.StatusBadRequest)
	}
}
