package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront_checkout/internal/domain/entities"
)

func checkoutFixture() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Customer: entities.Customer{
			Name:  "Maria Silva",
			CPF:   "123.456.789-09",
			Phone: "(11) 98888-7777",
		},
		Product: entities.ProductItem{
			ID:       "prod-1",
			Name:     "Curso CNH",
			Price:    39.90,
			Quantity: 1,
		},
		Shipping: entities.ShippingOption{OptionID: 1, Price: 0},
		Total:    39.90,
	}
}

func TestNewPayEvoGateway(t *testing.T) {
	t.Run("missing secret key", func(t *testing.T) {
		_, err := NewPayEvoGateway("", "")
		if !errors.Is(err, ErrMissingPayEvoSecretKey) {
			t.Fatalf("expected ErrMissingPayEvoSecretKey, got %v", err)
		}
	})
}

func TestBuildTransactionPayload(t *testing.T) {
	t.Run("free shipping contributes no line item", func(t *testing.T) {
		payload := buildTransactionPayload(checkoutFixture())

		if len(payload.Items) != 1 {
			t.Fatalf("expected single item, got %d", len(payload.Items))
		}
		if payload.Items[0].UnitPrice != 3990 {
			t.Fatalf("expected 3990 cents, got %d", payload.Items[0].UnitPrice)
		}
		if payload.Amount != 3990 {
			t.Fatalf("expected amount 3990, got %d", payload.Amount)
		}
	})

	t.Run("paid shipping becomes a line item in cents", func(t *testing.T) {
		req := checkoutFixture()
		req.Shipping.Price = 16.87
		req.Total = 56.77

		payload := buildTransactionPayload(req)
		if len(payload.Items) != 2 {
			t.Fatalf("expected product + shipping, got %d items", len(payload.Items))
		}
		shipping := payload.Items[1]
		if shipping.Title != "Frete" || shipping.UnitPrice != 1687 || shipping.Quantity != 1 {
			t.Fatalf("unexpected shipping item: %+v", shipping)
		}
		if shipping.ExternalRef != "shipping-1" {
			t.Fatalf("unexpected shipping ref: %s", shipping.ExternalRef)
		}
	})

	t.Run("bumps ordered after the product", func(t *testing.T) {
		req := checkoutFixture()
		req.Bumps = []entities.BumpItem{{ID: "bump-1", Name: "Apostila", Price: 9.90}}

		payload := buildTransactionPayload(req)
		if len(payload.Items) != 2 {
			t.Fatalf("expected product + bump, got %d items", len(payload.Items))
		}
		if payload.Items[1].ExternalRef != "bump-1" || payload.Items[1].UnitPrice != 990 {
			t.Fatalf("unexpected bump item: %+v", payload.Items[1])
		}
	})

	t.Run("amount trusts the caller total over the item sum", func(t *testing.T) {
		req := checkoutFixture()
		req.Total = 10.00

		payload := buildTransactionPayload(req)
		if payload.Amount != 1000 {
			t.Fatalf("expected amount from caller total, got %d", payload.Amount)
		}
	})

	t.Run("customer normalization", func(t *testing.T) {
		payload := buildTransactionPayload(checkoutFixture())

		c := payload.Customer
		if c.Document.Number != "12345678909" || c.Document.Type != "CPF" {
			t.Fatalf("unexpected document: %+v", c.Document)
		}
		if c.Phone != "11988887777" {
			t.Fatalf("unexpected phone: %s", c.Phone)
		}
		if c.Email != "12345678909@cliente.temp" {
			t.Fatalf("unexpected fallback email: %s", c.Email)
		}
	})
}

func TestPayEvoGatewayCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success with qrcode field", func(t *testing.T) {
		var gotAuth string
		var gotPayload transactionPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotPayload)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pay-123","status":"pending","pix":{"qrcode":"000201abc","expirationDate":"2026-09-02T12:00:00Z"}}`))
		}))
		defer srv.Close()

		g, err := NewPayEvoGateway("sk_test", srv.URL)
		if err != nil {
			t.Fatalf("gateway: %v", err)
		}

		charge, err := g.CreatePayment(ctx, checkoutFixture())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !strings.HasPrefix(gotAuth, "Basic ") {
			t.Fatalf("expected basic auth, got %q", gotAuth)
		}
		if gotPayload.PaymentMethod != "PIX" || gotPayload.Pix.ExpiresInDays != 1 {
			t.Fatalf("unexpected gateway payload: %+v", gotPayload)
		}
		if charge.OrderID != "pay-123" || charge.Status != "pending" {
			t.Fatalf("unexpected charge: %+v", charge)
		}
		if charge.PixPayload != "000201abc" {
			t.Fatalf("unexpected pix payload: %s", charge.PixPayload)
		}
		if !strings.Contains(charge.QRCodeURL, "data=000201abc") {
			t.Fatalf("unexpected qr url: %s", charge.QRCodeURL)
		}
		if charge.ExpiresAt != "2026-09-02T12:00:00Z" {
			t.Fatalf("unexpected expiry: %s", charge.ExpiresAt)
		}
	})

	t.Run("payload field fallback and synthesized order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"pending","pix":{"payload":"000201def"}}`))
		}))
		defer srv.Close()

		g, _ := NewPayEvoGateway("sk_test", srv.URL)
		charge, err := g.CreatePayment(ctx, checkoutFixture())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if charge.PixPayload != "000201def" {
			t.Fatalf("expected pix.payload fallback, got %s", charge.PixPayload)
		}
		if !strings.HasPrefix(charge.OrderID, "ORD-") {
			t.Fatalf("expected synthesized order id, got %s", charge.OrderID)
		}
	})

	t.Run("numeric order id normalized to string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":987654,"status":"pending","pix":{"qrcode":"000201abc"}}`))
		}))
		defer srv.Close()

		g, _ := NewPayEvoGateway("sk_test", srv.URL)
		charge, err := g.CreatePayment(ctx, checkoutFixture())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if charge.OrderID != "987654" {
			t.Fatalf("unexpected order id: %s", charge.OrderID)
		}
	})

	t.Run("gateway refusal carries its message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"message":"insufficient funds"}`))
		}))
		defer srv.Close()

		g, _ := NewPayEvoGateway("sk_test", srv.URL)
		_, err := g.CreatePayment(ctx, checkoutFixture())

		var gatewayErr *GatewayError
		if !errors.As(err, &gatewayErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gatewayErr.Message != "insufficient funds" {
			t.Fatalf("unexpected message: %s", gatewayErr.Message)
		}
		if gatewayErr.StatusCode != http.StatusPaymentRequired {
			t.Fatalf("unexpected status: %d", gatewayErr.StatusCode)
		}
	})

	t.Run("refusal without message gets generic text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream exploded`))
		}))
		defer srv.Close()

		g, _ := NewPayEvoGateway("sk_test", srv.URL)
		_, err := g.CreatePayment(ctx, checkoutFixture())

		var gatewayErr *GatewayError
		if !errors.As(err, &gatewayErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gatewayErr.Message != "payment processing failed" {
			t.Fatalf("unexpected message: %s", gatewayErr.Message)
		}
	})

	t.Run("unparseable success body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not-json`))
		}))
		defer srv.Close()

		g, _ := NewPayEvoGateway("sk_test", srv.URL)
		_, err := g.CreatePayment(ctx, checkoutFixture())

		var gatewayErr *GatewayError
		if !errors.As(err, &gatewayErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
	})
}
