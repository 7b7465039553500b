package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID                 = errors.New("invalid order id")
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrAttributionClientNotConfigured = errors.New("attribution client not configured")
	ErrPaymentRepositoryNotConfigured = errors.New("payment repository not configured")
)

const fallbackDocument = "00000000000"

// IAttributionUseCase builds and sends conversion events.
//
//   - ForwardCheckout runs inside the checkout orchestration, right after a
//     gateway success.
//   - Resend re-notifies the attribution service for an already-recorded
//     attempt without touching the gateway.
type IAttributionUseCase interface {
	ForwardCheckout(ctx context.Context, attempt entities.PaymentAttempt, rawStatus string) (entities.ForwardOutcome, error)
	Resend(ctx context.Context, orderID, rawStatus string) (entities.ForwardOutcome, error)
}

type AttributionUseCase struct {
	repo          interfaces.IPaymentAttemptRepository
	client        interfaces.IAttributionClient
	platform      string
	fallbackEmail string
}

var _ IAttributionUseCase = (*AttributionUseCase)(nil)

func NewAttributionUseCase(repo interfaces.IPaymentAttemptRepository, client interfaces.IAttributionClient, platform, fallbackEmail string) *AttributionUseCase {
	return &AttributionUseCase{repo: repo, client: client, platform: platform, fallbackEmail: fallbackEmail}
}

func (u *AttributionUseCase) ForwardCheckout(ctx context.Context, attempt entities.PaymentAttempt, rawStatus string) (entities.ForwardOutcome, error) {
	if u.client == nil {
		return entities.ForwardOutcome{}, ErrAttributionClientNotConfigured
	}
	event := u.buildConversionEvent(attempt, rawStatus)
	return u.client.SendOrder(ctx, event)
}

func (u *AttributionUseCase) Resend(ctx context.Context, orderID, rawStatus string) (entities.ForwardOutcome, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[attribution][usecase] resend start order_id=%s raw_status=%q", orderID, rawStatus)
	if orderID == "" {
		return entities.ForwardOutcome{}, ErrInvalidOrderID
	}
	if u.repo == nil {
		return entities.ForwardOutcome{}, ErrPaymentRepositoryNotConfigured
	}
	if u.client == nil {
		return entities.ForwardOutcome{}, ErrAttributionClientNotConfigured
	}

	attempt, err := u.repo.GetByIdentifier(ctx, orderID)
	if err != nil {
		log.Printf("[attribution][usecase] lookup failed order_id=%s err=%v", orderID, err)
		return entities.ForwardOutcome{}, err
	}
	if attempt.Identifier == "" {
		log.Printf("[attribution][usecase] payment not found order_id=%s", orderID)
		return entities.ForwardOutcome{}, ErrPaymentNotFound
	}

	if rawStatus == "" {
		rawStatus = attempt.Status
	}
	event := u.buildConversionEvent(attempt, rawStatus)

	outcome, err := u.client.SendOrder(ctx, event)
	if err != nil {
		log.Printf("[attribution][usecase] resend failed order_id=%s err=%v", orderID, err)
		return outcome, err
	}
	log.Printf("[attribution][usecase] resend success order_id=%s status=%s", orderID, event.Status)
	return outcome, nil
}

func (u *AttributionUseCase) buildConversionEvent(attempt entities.PaymentAttempt, rawStatus string) entities.ConversionEvent {
	amount := attempt.FinalAmount
	if amount == 0 {
		amount = attempt.Amount
	}
	priceInCents := int(math.Round(amount * 100))

	email := attempt.CustomerEmail
	if email == "" {
		email = u.fallbackEmail
	}
	document := attempt.CustomerCPF
	if document == "" {
		document = fallbackDocument
	}
	var phone *string
	if attempt.CustomerPhone != "" {
		phone = entities.StringPtr(attempt.CustomerPhone)
	}

	productName := attempt.ProductName
	if productName == "" {
		productName = "Pagamento"
	}
	paymentMethod := strings.ToLower(attempt.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "pix"
	}

	return entities.ConversionEvent{
		OrderID:       attempt.Identifier,
		Platform:      u.platform,
		PaymentMethod: paymentMethod,
		Status:        entities.MapStatus(rawStatus),
		CreatedAt:     dateTimeString(&attempt.CreatedAt),
		ApprovedDate:  dateTimeString(attempt.PaidAt),
		RefundedAt:    nil,
		Customer: entities.ConversionCustomer{
			Name:     attempt.CustomerName,
			Email:    email,
			Phone:    phone,
			Document: document,
			Country:  "BR",
		},
		Products: []entities.ConversionProduct{
			{
				ID:           attempt.Identifier,
				Name:         productName,
				Quantity:     1,
				PriceInCents: priceInCents,
			},
		},
		Tracking: attempt.Tracking.Clone(),
		Commission: entities.ConversionCommission{
			TotalPriceInCents:     priceInCents,
			GatewayFeeInCents:     0,
			UserCommissionInCents: priceInCents,
		},
		IsTest: false,
	}
}

// dateTimeString renders the attribution service's timestamp format: ISO-like,
// truncated to seconds, no timezone suffix.
func dateTimeString(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format("2006-01-02 15:04:05")
	return &s
}
