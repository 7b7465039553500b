package entities

// ConversionEvent is the order payload sent to the attribution service so a
// checkout can be traced back to its originating campaign parameters.
//
// Wire notes:
//   - Unset tracking fields serialize as null, never as "".
//   - CreatedAt/ApprovedDate use "2006-01-02 15:04:05" (UTC, no timezone suffix).
//   - The gateway fee is always reported as zero and the user commission equals
//     the total charged; the attribution service does the splitting itself.
type ConversionEvent struct {
	OrderID       string               `json:"orderId"`
	Platform      string               `json:"platform"`
	PaymentMethod string               `json:"paymentMethod"`
	Status        CanonicalStatus      `json:"status"`
	CreatedAt     *string              `json:"createdAt"`
	ApprovedDate  *string              `json:"approvedDate"`
	RefundedAt    *string              `json:"refundedAt"`
	Customer      ConversionCustomer   `json:"customer"`
	Products      []ConversionProduct  `json:"products"`
	Tracking      TrackingParameters   `json:"trackingParameters"`
	Commission    ConversionCommission `json:"commission"`
	IsTest        bool                 `json:"isTest"`
}

type ConversionCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document string  `json:"document"`
	Country  string  `json:"country"`
}

type ConversionProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PlanID       *string `json:"planId"`
	PlanName     *string `json:"planName"`
	Quantity     int     `json:"quantity"`
	PriceInCents int     `json:"priceInCents"`
}

type ConversionCommission struct {
	TotalPriceInCents     int `json:"totalPriceInCents"`
	GatewayFeeInCents     int `json:"gatewayFeeInCents"`
	UserCommissionInCents int `json:"userCommissionInCents"`
}

// ForwardOutcome is the raw result of one attribution-service call, echoed back
// to the caller only when debug mode is requested.
type ForwardOutcome struct {
	StatusCode int    `json:"status"`
	Body       string `json:"response"`
}
