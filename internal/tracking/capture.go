package tracking

import (
	"net/http"
	"net/url"

	"storefront_checkout/internal/domain/entities"
)

// src and sck may arrive under alias names generated by the attribution
// platform's own link decorator. utm_* fields have no aliases.
const (
	srcAlias = "xcod"
	sckAlias = "_sck"
)

// Capture extracts tracking parameters from the entry URL's query string and
// the request cookie set. Pure function of its inputs. Resolution order per
// field, first non-empty wins: query canonical, query alias, cookie canonical,
// cookie alias. Fields found through no source stay unset.
func Capture(query url.Values, cookies []*http.Cookie) entities.TrackingParameters {
	jar := cookieValues(cookies)

	lookup := func(names ...string) *string {
		for _, n := range names {
			if v := query.Get(n); v != "" {
				return entities.StringPtr(v)
			}
		}
		for _, n := range names {
			if v := jar[n]; v != "" {
				return entities.StringPtr(v)
			}
		}
		return nil
	}

	return entities.TrackingParameters{
		Src:         lookup("src", srcAlias),
		Sck:         lookup("sck", sckAlias),
		UTMSource:   lookup("utm_source"),
		UTMCampaign: lookup("utm_campaign"),
		UTMMedium:   lookup("utm_medium"),
		UTMContent:  lookup("utm_content"),
		UTMTerm:     lookup("utm_term"),
	}
}

func cookieValues(cookies []*http.Cookie) map[string]string {
	jar := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}
		v := c.Value
		if decoded, err := url.QueryUnescape(v); err == nil {
			v = decoded
		}
		jar[c.Name] = v
	}
	return jar
}
