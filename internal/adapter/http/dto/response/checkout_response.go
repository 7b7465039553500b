package response

import "storefront_checkout/internal/domain/entities"

// PixPaymentResponse is the success body of a checkout submission. The caller
// needs the payload and QR image URL to render a scannable charge immediately.
type PixPaymentResponse struct {
	Success     bool                     `json:"success"`
	PixPayload  string                   `json:"pixPayload"`
	QRCodeURL   string                   `json:"qrCodeUrl"`
	OrderID     string                   `json:"orderId"`
	ExpiresAt   string                   `json:"expiresAt,omitempty"`
	UtmifyDebug *entities.ForwardOutcome `json:"utmifyDebug,omitempty"`
}

func FromPixCharge(charge entities.PixCharge, debug *entities.ForwardOutcome) PixPaymentResponse {
	return PixPaymentResponse{
		Success:     true,
		PixPayload:  charge.PixPayload,
		QRCodeURL:   charge.QRCodeURL,
		OrderID:     charge.OrderID,
		ExpiresAt:   charge.ExpiresAt,
		UtmifyDebug: debug,
	}
}
