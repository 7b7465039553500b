package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"storefront_checkout/internal/domain/entities"
)

var ErrMissingPayEvoSecretKey = errors.New("missing PAYEVO_SECRET_KEY")

const (
	defaultBaseURL  = "https://apiv2.payevo.com.br/functions/v1"
	qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

	// PIX charges are created with a fixed one-day expiry window.
	pixExpiresInDays = 1

	defaultTimeout = 30 * time.Second
)

// GatewayError reports a transaction the gateway refused or answered with a
// body this service could not parse. Message is safe to surface to callers.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// PayEvoGateway creates PIX transactions against the PayEvo HTTP API and
// normalizes the response into a canonical PixCharge.
type PayEvoGateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewPayEvoGateway(secretKey, baseURL string) (*PayEvoGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing PAYEVO_SECRET_KEY")
		return nil, ErrMissingPayEvoSecretKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	log.Printf("[payment][gateway] PayEvo client initialized base_url=%s", baseURL)
	return &PayEvoGateway{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		secretKey:  secretKey,
	}, nil
}

// transactionItem is one line of the gateway charge, prices in integer cents.
type transactionItem struct {
	Title       string `json:"title"`
	UnitPrice   int    `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	ExternalRef string `json:"externalRef"`
}

type transactionDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type transactionCustomer struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	Document transactionDocument `json:"document"`
}

type transactionPayload struct {
	Customer      transactionCustomer `json:"customer"`
	PaymentMethod string              `json:"paymentMethod"`
	Pix           struct {
		ExpiresInDays int `json:"expiresInDays"`
	} `json:"pix"`
	Amount int               `json:"amount"`
	Items  []transactionItem `json:"items"`
}

// transactionID tolerates the gateway sending the order id as either a JSON
// string or a number, normalizing to string.
type transactionID string

func (t *transactionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = transactionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = transactionID(n.String())
	return nil
}

type transactionResponse struct {
	ID      transactionID `json:"id"`
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Error   string        `json:"error"`
	Pix     struct {
		QRCode         string `json:"qrcode"`
		Payload        string `json:"payload"`
		ExpirationDate string `json:"expirationDate"`
	} `json:"pix"`
}

// CreatePayment builds the gateway transaction from the checkout and parses
// the answer into a PixCharge. The top-level amount is the rounding of the
// caller-supplied total and is intentionally independent of the item sum.
func (g *PayEvoGateway) CreatePayment(ctx context.Context, req entities.CheckoutRequest) (entities.PixCharge, error) {
	payload := buildTransactionPayload(req)

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.PixCharge{}, err
	}
	log.Printf("[payment][gateway] create start amount_cents=%d items=%d", payload.Amount, len(payload.Items))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return entities.PixCharge{}, err
	}
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(g.secretKey)))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] request failed err=%v", err)
		return entities.PixCharge{}, &GatewayError{Message: "payment processing failed"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PixCharge{}, &GatewayError{StatusCode: resp.StatusCode, Message: "payment processing failed"}
	}
	log.Printf("[payment][gateway] response status=%d body_len=%d", resp.StatusCode, len(raw))

	var data transactionResponse
	parseErr := json.Unmarshal(raw, &data)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := "payment processing failed"
		if parseErr == nil {
			if data.Message != "" {
				msg = data.Message
			} else if data.Error != "" {
				msg = data.Error
			}
		}
		log.Printf("[payment][gateway] create refused status=%d msg=%s", resp.StatusCode, msg)
		return entities.PixCharge{}, &GatewayError{StatusCode: resp.StatusCode, Message: msg}
	}
	if parseErr != nil {
		log.Printf("[payment][gateway] unparseable success body err=%v", parseErr)
		return entities.PixCharge{}, &GatewayError{StatusCode: resp.StatusCode, Message: "invalid response from payment gateway"}
	}

	pixPayload := data.Pix.QRCode
	if pixPayload == "" {
		pixPayload = data.Pix.Payload
	}

	orderID := string(data.ID)
	if orderID == "" {
		orderID = fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
	}

	charge := entities.PixCharge{
		OrderID:    orderID,
		Status:     data.Status,
		PixPayload: pixPayload,
		QRCodeURL:  qrCodeImageURL(pixPayload),
		ExpiresAt:  data.Pix.ExpirationDate,
		Raw:        json.RawMessage(raw),
	}
	log.Printf("[payment][gateway] create success order_id=%s status=%s", charge.OrderID, charge.Status)
	return charge, nil
}

func buildTransactionPayload(req entities.CheckoutRequest) transactionPayload {
	items := make([]transactionItem, 0, len(req.Bumps)+2)

	items = append(items, transactionItem{
		Title:       req.Product.Name,
		UnitPrice:   toCents(req.Product.Price),
		Quantity:    req.Product.Quantity,
		ExternalRef: req.Product.ID,
	})
	for _, bump := range req.Bumps {
		items = append(items, transactionItem{
			Title:       bump.Name,
			UnitPrice:   toCents(bump.Price),
			Quantity:    1,
			ExternalRef: bump.ID,
		})
	}
	// A zero-cost shipping option contributes no line item.
	if req.Shipping.Price > 0 {
		items = append(items, transactionItem{
			Title:       "Frete",
			UnitPrice:   toCents(req.Shipping.Price),
			Quantity:    1,
			ExternalRef: fmt.Sprintf("shipping-%d", req.Shipping.OptionID),
		})
	}

	payload := transactionPayload{
		Customer: transactionCustomer{
			Name:  req.Customer.Name,
			Email: req.Customer.ContactEmail(),
			Phone: req.Customer.PhoneDigits(),
			Document: transactionDocument{
				Type:   "CPF",
				Number: req.Customer.DocumentDigits(),
			},
		},
		PaymentMethod: "PIX",
		Amount:        toCents(req.Total),
		Items:         items,
	}
	payload.Pix.ExpiresInDays = pixExpiresInDays
	return payload
}

// toCents rounds (not truncates) a decimal price into the smallest currency unit.
func toCents(price float64) int {
	return int(math.Round(price * 100))
}

func qrCodeImageURL(pixPayload string) string {
	if pixPayload == "" {
		return ""
	}
	return qrImageEndpoint + "?size=300x300&data=" + url.QueryEscape(pixPayload)
}
