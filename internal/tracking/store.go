package tracking

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"storefront_checkout/internal/domain/entities"
)

// Tier is one storage level for tracking parameters, keyed by visitor.
//
// Two tiers back a Store: a session tier (fast, cleared when the browsing
// session ends) and a device tier (survives session end). The session tier is
// the authoritative read path; the device tier is the fallback for a fresh
// session on a known device.
type Tier interface {
	Get(ctx context.Context, key string) (entities.TrackingParameters, bool, error)
	Put(ctx context.Context, key string, params entities.TrackingParameters) error
}

// Store merges and persists tracking parameters across the two tiers.
type Store struct {
	session Tier
	device  Tier
}

func NewStore(session, device Tier) *Store {
	return &Store{session: session, device: device}
}

// Save merges freshly captured parameters into the stored record and writes
// the result to both tiers. A merge with zero defined fields is not written.
func (s *Store) Save(ctx context.Context, key string, incoming entities.TrackingParameters) (entities.TrackingParameters, error) {
	existing := s.Current(ctx, key)
	merged := entities.MergeTracking(incoming, existing)

	if merged.DefinedCount() == 0 {
		log.Printf("[tracking][store] nothing to persist key=%s", key)
		return merged, nil
	}

	if err := s.session.Put(ctx, key, merged); err != nil {
		log.Printf("[tracking][store] session tier write failed key=%s err=%v", key, err)
		return merged, err
	}
	if err := s.device.Put(ctx, key, merged); err != nil {
		log.Printf("[tracking][store] device tier write failed key=%s err=%v", key, err)
		return merged, err
	}
	return merged, nil
}

// Current reads the stored parameters, session tier first, device tier as
// fallback. Read errors degrade to an empty record, mirroring a visitor with
// nothing stored.
func (s *Store) Current(ctx context.Context, key string) entities.TrackingParameters {
	if params, ok, err := s.session.Get(ctx, key); err != nil {
		log.Printf("[tracking][store] session tier read failed key=%s err=%v", key, err)
	} else if ok {
		return params
	}
	if params, ok, err := s.device.Get(ctx, key); err != nil {
		log.Printf("[tracking][store] device tier read failed key=%s err=%v", key, err)
	} else if ok {
		return params
	}
	return entities.TrackingParameters{}
}

// Checkout re-derives the parameters to embed in a checkout submission: it
// re-runs capture against the current URL/cookies, combines with the stored
// record (incoming over existing), and guarantees an sck. When the sck had to
// be generated here, only the session tier is rewritten; the device tier keeps
// its previous record. That divergence mirrors the storefront's observed
// behavior and is audit-logged rather than silently widened to both tiers.
func (s *Store) Checkout(ctx context.Context, key string, query url.Values, cookies []*http.Cookie) entities.TrackingParameters {
	incoming := Capture(query, cookies)
	stored := s.Current(ctx, key)

	sck := firstValue(incoming.Sck, stored.Sck)
	if sck == nil {
		sck = entities.StringPtr(entities.NewSessionToken())
		updated := stored.Clone()
		updated.Sck = sck
		if err := s.session.Put(ctx, key, updated); err != nil {
			log.Printf("[tracking][store] checkout sck session rewrite failed key=%s err=%v", key, err)
		} else {
			log.Printf("[tracking][store] checkout generated sck, session-tier-only rewrite key=%s", key)
		}
	}

	src := firstValue(incoming.Src, stored.Src, incoming.UTMSource, stored.UTMSource)
	if src == nil {
		src = entities.StringPtr(entities.SrcDirect)
	}

	return entities.TrackingParameters{
		Src:         src,
		Sck:         sck,
		UTMSource:   firstValue(incoming.UTMSource, stored.UTMSource),
		UTMCampaign: firstValue(incoming.UTMCampaign, stored.UTMCampaign),
		UTMMedium:   firstValue(incoming.UTMMedium, stored.UTMMedium),
		UTMContent:  firstValue(incoming.UTMContent, stored.UTMContent),
		UTMTerm:     firstValue(incoming.UTMTerm, stored.UTMTerm),
	}
}

// TrackedURL appends the stored defined parameters to a storefront path so the
// parameters survive client-side navigation.
func (s *Store) TrackedURL(ctx context.Context, key, path string) string {
	stored := s.Current(ctx, key)

	q := url.Values{}
	add := func(name string, v *string) {
		if v != nil && *v != "" {
			q.Set(name, *v)
		}
	}
	add("src", stored.Src)
	add("sck", stored.Sck)
	add("utm_source", stored.UTMSource)
	add("utm_campaign", stored.UTMCampaign)
	add("utm_medium", stored.UTMMedium)
	add("utm_content", stored.UTMContent)
	add("utm_term", stored.UTMTerm)

	if len(q) == 0 {
		return path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + q.Encode()
}

func firstValue(vals ...*string) *string {
	for _, v := range vals {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
