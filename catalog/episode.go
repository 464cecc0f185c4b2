// Package catalog defines the unified domain model, the provider capability contract,
// and the failure taxonomy shared by every component of the aggregation core.
package catalog

// Episode is a single episode of a catalog entry.
type Episode struct {
	ID     string `json:"id" jsonschema:"description=Identifier accepted by the source resolution capability. Fallback-sourced identifiers carry the mal- prefix."`
	Number string `json:"number" jsonschema:"description=Episode number in display form. May be fractional for specials. Empty when unknown."`
	Title  string `json:"title" jsonschema:"description=Episode title. Empty when unavailable."`
}

func (e Episode) String() string {
	if e.Title != "" {
		return e.Title
	}
	return "Episode " + e.Number
}

// StreamSource is the resolved playable location of an episode.
// An empty URL means the episode could not be resolved by any provider.
type StreamSource struct {
	URL string `json:"url" jsonschema:"description=Direct stream URL. Empty when unresolved."`
}

// Resolved reports whether the source carries a usable URL.
func (s StreamSource) Resolved() bool {
	return s.URL != ""
}
