package entities

import "github.com/google/uuid"

// TrackingParameters carries the campaign attribution fields captured from the
// storefront entry URL or cookies.
//
// Field semantics:
//   - nil means "never provided". Merges rely on that to tell an absent field
//     apart from one that was explicitly cleared, so absent values must never
//     be flattened into empty strings.
//   - src/sck may arrive under alias names (xcod/_sck) generated upstream.

type TrackingParameters struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

// SrcDirect is the fallback origin recorded when no campaign source survives a merge.
const SrcDirect = "direct"

// NewSessionToken generates the sck session/click key. Only uniqueness and
// stability across one session matter; a v4 UUID string satisfies both.
func NewSessionToken() string {
	return uuid.NewString()
}

// MergeTracking combines freshly captured parameters with previously stored
// ones. Incoming wins per field; src falls through incoming.utm_source before
// the stored value and bottoms out at "direct"; sck is never regenerated once
// a stored value exists.
func MergeTracking(incoming, existing TrackingParameters) TrackingParameters {
	merged := TrackingParameters{
		Src:         firstDefined(incoming.Src, incoming.UTMSource, existing.Src),
		Sck:         firstDefined(incoming.Sck, existing.Sck),
		UTMSource:   firstDefined(incoming.UTMSource, existing.UTMSource),
		UTMCampaign: firstDefined(incoming.UTMCampaign, existing.UTMCampaign),
		UTMMedium:   firstDefined(incoming.UTMMedium, existing.UTMMedium),
		UTMContent:  firstDefined(incoming.UTMContent, existing.UTMContent),
		UTMTerm:     firstDefined(incoming.UTMTerm, existing.UTMTerm),
	}
	if merged.Src == nil {
		merged.Src = StringPtr(SrcDirect)
	}
	if merged.Sck == nil {
		merged.Sck = StringPtr(NewSessionToken())
	}
	return merged
}

// DefinedCount returns how many fields carry a non-empty value.
func (t TrackingParameters) DefinedCount() int {
	n := 0
	for _, v := range t.fields() {
		if isDefined(v) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy. A PaymentAttempt embeds a clone so later
// session writes cannot retroactively alter a submitted attempt.
func (t TrackingParameters) Clone() TrackingParameters {
	return TrackingParameters{
		Src:         clonePtr(t.Src),
		Sck:         clonePtr(t.Sck),
		UTMSource:   clonePtr(t.UTMSource),
		UTMCampaign: clonePtr(t.UTMCampaign),
		UTMMedium:   clonePtr(t.UTMMedium),
		UTMContent:  clonePtr(t.UTMContent),
		UTMTerm:     clonePtr(t.UTMTerm),
	}
}

func (t TrackingParameters) fields() []*string {
	return []*string{t.Src, t.Sck, t.UTMSource, t.UTMCampaign, t.UTMMedium, t.UTMContent, t.UTMTerm}
}

// StringPtr is a convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}

// StringValue unwraps an optional field, empty when unset.
func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func isDefined(v *string) bool {
	return v != nil && *v != ""
}

func firstDefined(vals ...*string) *string {
	for _, v := range vals {
		if isDefined(v) {
			return v
		}
	}
	return nil
}

func clonePtr(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
