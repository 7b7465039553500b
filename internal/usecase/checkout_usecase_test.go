package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"storefront_checkout/internal/domain/entities"
	mock_interfaces "storefront_checkout/internal/usecase/interfaces/mocks"
)

func checkoutRequestFixture() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Customer: entities.Customer{
			Name:  "Maria Silva",
			CPF:   "123.456.789-09",
			Email: "maria@example.com",
			Phone: "(11) 98888-7777",
		},
		Product: entities.ProductItem{
			ID:       "prod-1",
			Name:     "Curso CNH",
			Price:    39.90,
			Quantity: 1,
		},
		Total: 39.90,
		Tracking: entities.TrackingParameters{
			UTMSource: entities.StringPtr("facebook"),
			Sck:       entities.StringPtr("sck-1"),
		},
	}
}

func chargeFixture() entities.PixCharge {
	return entities.PixCharge{
		OrderID:    "pay-123",
		Status:     "pending",
		PixPayload: "000201abc",
		QRCodeURL:  "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=000201abc",
	}
}

func TestCheckoutUseCaseCreatePixPayment(t *testing.T) {
	ctx := context.Background()

	newAttribution := func(client *mock_interfaces.MockIAttributionClient) *AttributionUseCase {
		return NewAttributionUseCase(nil, client, "CNH Social", "fallback@example.com")
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil)

		_, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), false)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid product line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, gateway, nil)

		req := checkoutRequestFixture()
		req.Product.ID = ""
		if _, err := uc.CreatePixPayment(ctx, req, false); !errors.Is(err, ErrInvalidCheckoutRequest) {
			t.Fatalf("expected ErrInvalidCheckoutRequest, got %v", err)
		}

		req = checkoutRequestFixture()
		req.Product.Quantity = 0
		if _, err := uc.CreatePixPayment(ctx, req, false); !errors.Is(err, ErrInvalidCheckoutRequest) {
			t.Fatalf("expected ErrInvalidCheckoutRequest, got %v", err)
		}
	})

	t.Run("gateway failure is terminal and has no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		client := mock_interfaces.NewMockIAttributionClient(ctrl)

		gatewayErr := errors.New("insufficient funds")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PixCharge{}, gatewayErr)

		uc := NewCheckoutUseCase(repo, gateway, newAttribution(client))
		_, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), false)
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("success persists the attempt and forwards the conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		client := mock_interfaces.NewMockIAttributionClient(ctrl)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(chargeFixture(), nil)

		var savedAttempt entities.PaymentAttempt
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, attempt entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				savedAttempt = attempt
				return attempt, nil
			})

		var sentEvent entities.ConversionEvent
		client.EXPECT().SendOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event entities.ConversionEvent) (entities.ForwardOutcome, error) {
				sentEvent = event
				return entities.ForwardOutcome{StatusCode: 200, Body: `{"ok":true}`}, nil
			})

		uc := NewCheckoutUseCase(repo, gateway, newAttribution(client))
		result, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		if result.Charge.OrderID != "pay-123" || result.Charge.PixPayload != "000201abc" {
			t.Fatalf("unexpected charge: %+v", result.Charge)
		}
		if result.AttributionDebug != nil {
			t.Fatal("debug echo must be absent unless requested")
		}

		if savedAttempt.Identifier != "pay-123" || savedAttempt.Status != "pending" {
			t.Fatalf("unexpected attempt: %+v", savedAttempt)
		}
		if savedAttempt.PixCode != "000201abc" || savedAttempt.PaymentMethod != "PIX" {
			t.Fatalf("unexpected attempt payment fields: %+v", savedAttempt)
		}
		if savedAttempt.Amount != 39.90 || savedAttempt.FinalAmount != 39.90 {
			t.Fatalf("unexpected attempt amounts: %+v", savedAttempt)
		}
		if entities.StringValue(savedAttempt.Tracking.UTMSource) != "facebook" {
			t.Fatalf("tracking not carried into the attempt: %+v", savedAttempt.Tracking)
		}

		if sentEvent.OrderID != "pay-123" || sentEvent.Status != entities.StatusWaitingPayment {
			t.Fatalf("unexpected conversion event: %+v", sentEvent)
		}
		if sentEvent.Commission.TotalPriceInCents != 3990 || sentEvent.Commission.UserCommissionInCents != 3990 {
			t.Fatalf("unexpected commission: %+v", sentEvent.Commission)
		}
	})

	t.Run("persistence failure does not downgrade the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		client := mock_interfaces.NewMockIAttributionClient(ctrl)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(chargeFixture(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{}, errors.New("dynamodb unavailable"))
		client.EXPECT().SendOrder(gomock.Any(), gomock.Any()).Return(entities.ForwardOutcome{StatusCode: 200}, nil)

		uc := NewCheckoutUseCase(repo, gateway, newAttribution(client))
		result, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if result.Charge.OrderID != "pay-123" {
			t.Fatalf("unexpected charge: %+v", result.Charge)
		}
	})

	t.Run("attribution failure does not downgrade the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		client := mock_interfaces.NewMockIAttributionClient(ctrl)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(chargeFixture(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{}, nil)
		client.EXPECT().SendOrder(gomock.Any(), gomock.Any()).Return(entities.ForwardOutcome{StatusCode: 401, Body: `{"error":"bad token"}`}, errors.New("utmify api error: 401"))

		uc := NewCheckoutUseCase(repo, gateway, newAttribution(client))
		result, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), false)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if result.Charge.OrderID != "pay-123" {
			t.Fatalf("unexpected charge: %+v", result.Charge)
		}
	})

	t.Run("debug mode echoes the forward outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		repo := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		client := mock_interfaces.NewMockIAttributionClient(ctrl)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(chargeFixture(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentAttempt{}, nil)
		client.EXPECT().SendOrder(gomock.Any(), gomock.Any()).Return(entities.ForwardOutcome{StatusCode: 200, Body: `{"ok":true}`}, nil)

		uc := NewCheckoutUseCase(repo, gateway, newAttribution(client))
		result, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), true)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if result.AttributionDebug == nil {
			t.Fatal("expected debug echo")
		}
		if result.AttributionDebug.StatusCode != 200 || result.AttributionDebug.Body != `{"ok":true}` {
			t.Fatalf("unexpected debug echo: %+v", result.AttributionDebug)
		}
	})

	t.Run("missing repository and attribution still yield the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(chargeFixture(), nil)

		uc := NewCheckoutUseCase(nil, gateway, nil)
		result, err := uc.CreatePixPayment(ctx, checkoutRequestFixture(), true)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if result.Charge.OrderID != "pay-123" {
			t.Fatalf("unexpected charge: %+v", result.Charge)
		}
		if result.AttributionDebug != nil {
			t.Fatal("no forward happened, debug echo must be absent")
		}
	})
}
