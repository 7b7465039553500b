package response

import "storefront_checkout/internal/domain/entities"

// TrackingResponse returns the visitor's tracking snapshot. Unset fields
// serialize as null so the storefront can tell "never captured" apart from
// empty values. TrackedURL is filled only when the caller asked for a
// navigation path decorated with the stored parameters.
type TrackingResponse struct {
	Success    bool                        `json:"success"`
	Tracking   entities.TrackingParameters `json:"trackingParameters"`
	TrackedURL string                      `json:"trackedUrl,omitempty"`
}

func FromTrackingParameters(params entities.TrackingParameters) TrackingResponse {
	return TrackingResponse{Success: true, Tracking: params}
}
