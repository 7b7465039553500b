package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// CanonicalStatus is the closed set of payment statuses this service ever
// reports, independent of the gateway's native vocabulary.
type CanonicalStatus string

const (
	StatusWaitingPayment CanonicalStatus = "waiting_payment"
	StatusPaid           CanonicalStatus = "paid"
	StatusRefunded       CanonicalStatus = "refunded"
	StatusChargedback    CanonicalStatus = "chargedback"
	StatusRefused        CanonicalStatus = "refused"
)

// MapStatus translates a provider-native status string into the canonical set.
// Case-insensitive, total over all inputs. Anything unrecognized (including
// empty) maps to refused; the attribution service relies on that fail-closed
// default, so there is deliberately no error outcome here.
func MapStatus(raw string) CanonicalStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "waiting_payment":
		return StatusWaitingPayment
	case "completed", "paid":
		return StatusPaid
	case "refunded":
		return StatusRefunded
	case "chargedback", "chargeback":
		return StatusChargedback
	default:
		return StatusRefused
	}
}

// PixCharge is the canonical result of one gateway transaction call.
type PixCharge struct {
	OrderID    string          `json:"orderId"`
	Status     string          `json:"status"`
	PixPayload string          `json:"pixPayload"`
	QRCodeURL  string          `json:"qrCodeUrl"`
	ExpiresAt  string          `json:"expiresAt,omitempty"`
	Raw        json.RawMessage `json:"-"`
}

// PaymentAttempt is the immutable record of one orchestration run.
//
// Storage model (DynamoDB):
//   - PK: identifier (the external order id)
//
// Created exactly once per successful gateway call; status transitions after
// creation are out of scope, so the record is never updated here.
type PaymentAttempt struct {
	Identifier    string             `json:"identifier"`
	ProductName   string             `json:"product_name"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerCPF   string             `json:"customer_cpf"`
	CustomerPhone string             `json:"customer_phone"`
	Amount        float64            `json:"amount"`
	FinalAmount   float64            `json:"final_amount"`
	PixCode       string             `json:"pix_code"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Tracking      TrackingParameters `json:"tracking_parameters"`
	CreatedAt     time.Time          `json:"created_at"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`
}
