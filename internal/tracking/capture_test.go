package tracking

import (
	"net/http"
	"net/url"
	"testing"

	"storefront_checkout/internal/domain/entities"
)

func TestCapture(t *testing.T) {
	t.Run("query canonical wins over alias and cookies", func(t *testing.T) {
		query := url.Values{"src": {"meta"}, "xcod": {"alias"}}
		cookies := []*http.Cookie{{Name: "src", Value: "cookie"}}

		params := Capture(query, cookies)
		if entities.StringValue(params.Src) != "meta" {
			t.Fatalf("expected canonical query value, got %v", params.Src)
		}
	})

	t.Run("alias resolution", func(t *testing.T) {
		query := url.Values{"xcod": {"from-alias"}, "_sck": {"sck-alias"}}

		params := Capture(query, nil)
		if entities.StringValue(params.Src) != "from-alias" {
			t.Fatalf("expected src from xcod alias, got %v", params.Src)
		}
		if entities.StringValue(params.Sck) != "sck-alias" {
			t.Fatalf("expected sck from _sck alias, got %v", params.Sck)
		}
	})

	t.Run("cookie fallback with url-encoded value", func(t *testing.T) {
		cookies := []*http.Cookie{
			{Name: "utm_campaign", Value: "spring%20sale"},
			{Name: "_sck", Value: "cookie-sck"},
		}

		params := Capture(url.Values{}, cookies)
		if entities.StringValue(params.UTMCampaign) != "spring sale" {
			t.Fatalf("expected decoded cookie value, got %v", params.UTMCampaign)
		}
		if entities.StringValue(params.Sck) != "cookie-sck" {
			t.Fatalf("expected sck from alias cookie, got %v", params.Sck)
		}
	})

	t.Run("missing fields stay unset", func(t *testing.T) {
		params := Capture(url.Values{"utm_source": {"google"}}, nil)
		if params.UTMTerm != nil || params.Src != nil {
			t.Fatalf("expected absent fields to stay nil: %+v", params)
		}
		if entities.StringValue(params.UTMSource) != "google" {
			t.Fatalf("expected utm_source captured, got %v", params.UTMSource)
		}
	})
}
