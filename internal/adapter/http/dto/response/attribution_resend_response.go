package response

import "storefront_checkout/internal/domain/entities"

type AttributionResendResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	UtmifyResponse string `json:"utmifyResponse"`
}

func FromForwardOutcome(outcome entities.ForwardOutcome) AttributionResendResponse {
	return AttributionResendResponse{
		Success:        true,
		Message:        "Sent to Utmify successfully",
		UtmifyResponse: outcome.Body,
	}
}
