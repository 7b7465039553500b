package request

// AttributionResendRequest asks for a conversion event to be re-sent for an
// already-recorded order. Status is optional; empty falls back to the status
// stored with the attempt.
type AttributionResendRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status"`
}
