// Package catalog defines the unified domain model, the provider capability contract,
// and the failure taxonomy shared by every component of the aggregation core.
package catalog

import "strings"

// FallbackIDPrefix disambiguates identifiers sourced from the fallback catalog. It is
// applied uniformly to every identifier the fallback emits, for items, details and
// episodes alike, so a later lookup by such an identifier routes straight back to the
// fallback provider without probing the native one first.
const FallbackIDPrefix = "mal-"

// Provenance tags which provider actually produced a response.
type Provenance string

const (
	// ProvenanceNative marks data served by the in-process provider script.
	ProvenanceNative Provenance = "native"

	// ProvenanceFallback marks data served by the remote fallback catalog.
	ProvenanceFallback Provenance = "fallback"

	// ProvenanceNone marks the well-formed empty result returned when no provider
	// could serve the request.
	ProvenanceNone Provenance = "none"
)

// FallbackID stamps the fallback prefix onto a raw upstream identifier.
// Already-prefixed identifiers pass through unchanged.
func FallbackID(id string) string {
	if id == "" || strings.HasPrefix(id, FallbackIDPrefix) {
		return id
	}
	return FallbackIDPrefix + id
}

// StripFallbackID removes the fallback prefix, yielding the upstream identifier.
func StripFallbackID(id string) string {
	return strings.TrimPrefix(id, FallbackIDPrefix)
}

// IsFallbackID reports whether an identifier was sourced from the fallback catalog.
func IsFallbackID(id string) bool {
	return strings.HasPrefix(id, FallbackIDPrefix)
}

// ProvenanceOfID derives provenance from an identifier alone. The cache stores only
// normalized values, so provenance on a cache hit is recovered this way instead of
// being persisted alongside the value.
func ProvenanceOfID(id string) Provenance {
	if IsFallbackID(id) {
		return ProvenanceFallback
	}
	return ProvenanceNative
}
