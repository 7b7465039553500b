package handlers

import (
	"log"
	"net/http"

	response "storefront_checkout/internal/adapter/http/dto/response"
	"storefront_checkout/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookieName   = "visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// TrackingHandler exposes the attribution-parameter lifecycle: continuous
// capture on page entry and the checkout-time re-derivation.
type TrackingHandler struct {
	store *tracking.Store
}

func NewTrackingHandler(store *tracking.Store) *TrackingHandler {
	return &TrackingHandler{store: store}
}

// Visit captures tracking parameters from the entry URL and cookies and merges
// them into the visitor's stored record.
func (h *TrackingHandler) Visit(c *gin.Context) {
	key := h.visitorKey(c)

	captured := tracking.Capture(c.Request.URL.Query(), c.Request.Cookies())
	merged, err := h.store.Save(c.Request.Context(), key, captured)
	if err != nil {
		// The visit ping is itself best-effort; the merged snapshot is
		// still valid even when a tier write failed.
		log.Printf("[tracking][handler] save failed key=%s err=%v", key, err)
	}

	c.JSON(http.StatusOK, response.FromTrackingParameters(merged))
}

// Current returns the stored snapshot, optionally decorating a navigation
// path with the stored parameters via ?path=.
func (h *TrackingHandler) Current(c *gin.Context) {
	key := h.visitorKey(c)

	resp := response.FromTrackingParameters(h.store.Current(c.Request.Context(), key))
	if path := c.Query("path"); path != "" {
		resp.TrackedURL = h.store.TrackedURL(c.Request.Context(), key, path)
	}

	c.JSON(http.StatusOK, resp)
}

// Checkout returns the checkout-time re-derivation: current URL/cookies
// combined with the stored record, with an sck guaranteed.
func (h *TrackingHandler) Checkout(c *gin.Context) {
	key := h.visitorKey(c)

	params := h.store.Checkout(c.Request.Context(), key, c.Request.URL.Query(), c.Request.Cookies())

	c.JSON(http.StatusOK, response.FromTrackingParameters(params))
}

// visitorKey reads the visitor cookie, minting one on first contact so the
// two storage tiers have a stable key for this device.
func (h *TrackingHandler) visitorKey(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(visitorCookieName, id, visitorCookieMaxAge, "/", "", false, true)
	log.Printf("[tracking][handler] new visitor key=%s", id)
	return id
}
