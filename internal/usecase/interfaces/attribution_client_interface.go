package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IAttributionClient abstracts the external attribution/analytics service
// (Utmify). The outcome carries the raw status and body for debug echoing.
type IAttributionClient interface {
	SendOrder(ctx context.Context, event entities.ConversionEvent) (entities.ForwardOutcome, error)
}
