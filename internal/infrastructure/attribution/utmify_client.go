package attribution

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"storefront_checkout/internal/domain/entities"
)

var ErrMissingUtmifyAPIToken = errors.New("missing UTMIFY_API_TOKEN")

const (
	defaultBaseURL = "https://api.utmify.com.br"
	ordersPath     = "/api-credentials/orders"

	defaultTimeout = 15 * time.Second
)

// UtmifyClient sends conversion events to the Utmify attribution service.
type UtmifyClient struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

func NewUtmifyClient(apiToken, baseURL string) (*UtmifyClient, error) {
	if apiToken == "" {
		log.Printf("[attribution][client] missing UTMIFY_API_TOKEN")
		return nil, ErrMissingUtmifyAPIToken
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[attribution][client] Utmify client initialized base_url=%s", baseURL)
	return &UtmifyClient{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiToken:   apiToken,
	}, nil
}

// SendOrder posts one conversion event. The outcome (status + body) is always
// returned, also on non-2xx answers, so callers can echo it in debug mode.
func (c *UtmifyClient) SendOrder(ctx context.Context, event entities.ConversionEvent) (entities.ForwardOutcome, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return entities.ForwardOutcome{}, err
	}
	log.Printf("[attribution][client] send start order_id=%s status=%s", event.OrderID, event.Status)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return entities.ForwardOutcome{}, err
	}
	req.Header.Set("x-api-token", c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[attribution][client] request failed order_id=%s err=%v", event.OrderID, err)
		return entities.ForwardOutcome{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.ForwardOutcome{StatusCode: resp.StatusCode}, err
	}

	outcome := entities.ForwardOutcome{StatusCode: resp.StatusCode, Body: string(raw)}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[attribution][client] send refused order_id=%s status=%d body=%s", event.OrderID, resp.StatusCode, outcome.Body)
		return outcome, fmt.Errorf("utmify api error: %d - %s", resp.StatusCode, outcome.Body)
	}
	log.Printf("[attribution][client] send success order_id=%s status=%d", event.OrderID, resp.StatusCode)
	return outcome, nil
}
