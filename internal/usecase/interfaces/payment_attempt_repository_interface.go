package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts DynamoDB persistence for PaymentAttempt.
//
// GetByIdentifier returns a zero-value attempt (Identifier == "") when the
// order id is unknown; callers translate that into their own not-found error.
type IPaymentAttemptRepository interface {
	Create(ctx context.Context, attempt entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByIdentifier(ctx context.Context, identifier string) (entities.PaymentAttempt, error)
}
