package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidCheckoutRequest      = errors.New("invalid checkout request")
)

// PixPaymentResult is the canonical outcome of one checkout orchestration.
// AttributionDebug is populated only when the caller asked for the debug echo.
type PixPaymentResult struct {
	Charge           entities.PixCharge
	AttributionDebug *entities.ForwardOutcome
}

// ICheckoutUseCase runs the payment-creation orchestration: gateway call on
// the critical path, persistence and attribution forwarding as best-effort
// side effects that never downgrade a confirmed charge.
type ICheckoutUseCase interface {
	CreatePixPayment(ctx context.Context, req entities.CheckoutRequest, debug bool) (PixPaymentResult, error)
}

type CheckoutUseCase struct {
	repo        interfaces.IPaymentAttemptRepository
	gateway     interfaces.IPaymentGateway
	attribution IAttributionUseCase
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.IPaymentAttemptRepository, gateway interfaces.IPaymentGateway, attribution IAttributionUseCase) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, gateway: gateway, attribution: attribution}
}

// CreatePixPayment validates the request, creates the charge with the gateway
// and, only after the gateway confirmed, records the attempt and forwards the
// conversion event. The two side effects run concurrently and are independent;
// their failures are logged, never surfaced as an operation failure.
func (u *CheckoutUseCase) CreatePixPayment(ctx context.Context, req entities.CheckoutRequest, debug bool) (PixPaymentResult, error) {
	log.Printf("[checkout][usecase] create start product_id=%s total=%.2f debug=%v", req.Product.ID, req.Total, debug)

	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured")
		return PixPaymentResult{}, ErrPaymentGatewayNotConfigured
	}
	if req.Product.ID == "" || req.Product.Quantity < 1 {
		log.Printf("[checkout][usecase] invalid product line product_id=%q quantity=%d", req.Product.ID, req.Product.Quantity)
		return PixPaymentResult{}, ErrInvalidCheckoutRequest
	}

	charge, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		// Terminal: a payment the gateway did not confirm is never
		// recorded and never reported to the attribution service.
		log.Printf("[checkout][usecase] gateway failed err=%v", err)
		return PixPaymentResult{}, err
	}
	log.Printf("[checkout][usecase] gateway success order_id=%s status=%s", charge.OrderID, charge.Status)

	attempt := u.buildAttempt(req, charge)

	var g errgroup.Group
	var forwardOutcome entities.ForwardOutcome
	forwarded := false

	g.Go(func() error {
		if u.repo == nil {
			log.Printf("[checkout][usecase] repository not configured; skipping payment persistence order_id=%s", attempt.Identifier)
			return nil
		}
		if _, err := u.repo.Create(ctx, attempt); err != nil {
			log.Printf("[checkout][usecase] payment persistence failed order_id=%s err=%v", attempt.Identifier, err)
			return nil
		}
		log.Printf("[checkout][usecase] payment persisted order_id=%s", attempt.Identifier)
		return nil
	})

	g.Go(func() error {
		if u.attribution == nil {
			log.Printf("[checkout][usecase] attribution not configured; skipping forward order_id=%s", attempt.Identifier)
			return nil
		}
		rawStatus := charge.Status
		if rawStatus == "" {
			rawStatus = "pending"
		}
		outcome, err := u.attribution.ForwardCheckout(ctx, attempt, rawStatus)
		forwardOutcome = outcome
		forwarded = true
		if err != nil {
			log.Printf("[checkout][usecase] attribution forward failed order_id=%s err=%v", attempt.Identifier, err)
		}
		return nil
	})

	// Both branches swallow their own errors; Wait only joins them so the
	// already-determined success cannot be downgraded.
	_ = g.Wait()

	result := PixPaymentResult{Charge: charge}
	if debug && forwarded {
		result.AttributionDebug = &forwardOutcome
	}
	log.Printf("[checkout][usecase] create success order_id=%s", charge.OrderID)
	return result, nil
}

func (u *CheckoutUseCase) buildAttempt(req entities.CheckoutRequest, charge entities.PixCharge) entities.PaymentAttempt {
	return entities.PaymentAttempt{
		Identifier:    charge.OrderID,
		ProductName:   req.Product.Name,
		CustomerName:  req.Customer.Name,
		CustomerEmail: req.Customer.ContactEmail(),
		CustomerCPF:   req.Customer.DocumentDigits(),
		CustomerPhone: req.Customer.PhoneDigits(),
		Amount:        req.Total,
		FinalAmount:   req.Total,
		PixCode:       charge.PixPayload,
		Status:        "pending",
		PaymentMethod: "PIX",
		Tracking:      req.Tracking.Clone(),
		CreatedAt:     time.Now().UTC(),
	}
}
