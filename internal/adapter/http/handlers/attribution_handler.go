package handlers

import (
	"errors"
	"log"
	"net/http"

	request "storefront_checkout/internal/adapter/http/dto/request"
	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// AttributionHandler handles the conversion-event resend endpoint.
type AttributionHandler struct {
	usecase usecase.IAttributionUseCase
}

func NewAttributionHandler(uc usecase.IAttributionUseCase) *AttributionHandler {
	return &AttributionHandler{usecase: uc}
}

// Resend re-sends the conversion event for an already-recorded order. No
// gateway call is involved; the attempt is re-read from the datastore.
func (h *AttributionHandler) Resend(c *gin.Context) {
	var req request.AttributionResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[attribution][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "orderId is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[attribution][handler] resend start order_id=%s", req.OrderID)

	outcome, err := h.usecase.Resend(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		log.Printf("[attribution][handler] resend failed order_id=%s err=%v", req.OrderID, err)
		appErr := mapAttributionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[attribution][handler] resend success order_id=%s", req.OrderID)

	c.JSON(http.StatusOK, response.FromForwardOutcome(outcome))
}

func mapAttributionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "orderId is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("ATTRIBUTION_RESEND_FAILED", "failed to resend conversion event", err, http.StatusInternalServerError)
	}
}
