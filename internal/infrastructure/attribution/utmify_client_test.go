package attribution

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

func eventFixture() entities.ConversionEvent {
	return entities.ConversionEvent{
		OrderID:       "pay-123",
		Platform:      "CNH Social",
		PaymentMethod: "pix",
		Status:        entities.StatusWaitingPayment,
		CreatedAt:     entities.StringPtr("2026-09-01 12:00:00"),
		Customer: entities.ConversionCustomer{
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Document: "12345678909",
			Country:  "BR",
		},
		Products: []entities.ConversionProduct{{
			ID:           "prod-1",
			Name:         "Curso CNH",
			Quantity:     1,
			PriceInCents: 3990,
		}},
		Commission: entities.ConversionCommission{
			TotalPriceInCents:     3990,
			GatewayFeeInCents:     0,
			UserCommissionInCents: 3990,
		},
	}
}

func TestNewUtmifyClient(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewUtmifyClient("", "")
		if !errors.Is(err, ErrMissingUtmifyAPIToken) {
			t.Fatalf("expected ErrMissingUtmifyAPIToken, got %v", err)
		}
	})
}

func TestUtmifyClientSendOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotToken string
		var gotEvent entities.ConversionEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.Header.Get("x-api-token")
			_ = json.NewDecoder(r.Body).Decode(&gotEvent)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c, err := NewUtmifyClient("token-1", srv.URL)
		if err != nil {
			t.Fatalf("client: %v", err)
		}

		outcome, err := c.SendOrder(ctx, eventFixture())
		if err != nil {
			t.Fatalf("send: %v", err)
		}
		if gotToken != "token-1" {
			t.Fatalf("expected api token header, got %q", gotToken)
		}
		if gotEvent.OrderID != "pay-123" || gotEvent.Status != entities.StatusWaitingPayment {
			t.Fatalf("unexpected forwarded event: %+v", gotEvent)
		}
		if outcome.StatusCode != http.StatusOK || outcome.Body != `{"ok":true}` {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})

	t.Run("non-2xx still returns the outcome", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"bad token"}`))
		}))
		defer srv.Close()

		c, _ := NewUtmifyClient("token-1", srv.URL)
		outcome, err := c.SendOrder(ctx, eventFixture())

		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "utmify api error: 401") {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.StatusCode != http.StatusUnauthorized || outcome.Body != `{"error":"bad token"}` {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
	})
}
