package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external PIX payment provider (PayEvo).
//
// CreatePayment builds the provider transaction from the canonical checkout
// and returns the normalized charge. Provider refusals and unparseable
// responses come back as *payments.GatewayError.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.CheckoutRequest) (entities.PixCharge, error)
}
