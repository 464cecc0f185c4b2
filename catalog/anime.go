// Package catalog defines the unified domain model, the provider capability contract,
// and the failure taxonomy shared by every component of the aggregation core.
package catalog

// CatalogItem is a single catalog entry in the unified response schema, produced by
// normalization from either provider family. Listing capabilities (recent, top-airing,
// search) return sequences of it.
type CatalogItem struct {
	ID       string   `json:"id" jsonschema:"description=Globally unique identifier. Identifiers sourced from the fallback catalog carry the mal- prefix."`
	Title    string   `json:"title" jsonschema:"description=Display title. Literal Unknown when no provider supplied one."`
	CoverURL string   `json:"coverUrl" jsonschema:"description=URL of the cover image. Empty when unavailable."`
	Synopsis string   `json:"synopsis" jsonschema:"description=Short plot summary. Empty when unavailable."`
	Tags     []string `json:"tags" jsonschema:"description=Genre and theme tags."`
}

func (i CatalogItem) String() string {
	return i.Title
}

// SearchResponse is the search capability's envelope: the matching entries plus the
// provenance tag naming which provider actually served them.
type SearchResponse struct {
	Results  []CatalogItem `json:"results" jsonschema:"description=Matching catalog entries, best match first."`
	Provider Provenance    `json:"provider" jsonschema:"description=Provider that served the results: native, fallback, or none when neither had a match."`
}

// AnimeDetails is the full record of a single catalog entry.
type AnimeDetails struct {
	ID           string `json:"id" jsonschema:"description=Globally unique identifier. Identifiers sourced from the fallback catalog carry the mal- prefix."`
	Title        string `json:"title" jsonschema:"description=Display title. Literal Unknown when no provider supplied one."`
	CoverURL     string `json:"coverUrl" jsonschema:"description=URL of the cover image. Empty when unavailable."`
	Description  string `json:"description" jsonschema:"description=Long-form synopsis. Empty when unavailable."`
	EpisodeCount int    `json:"episodeCount" jsonschema:"minimum=0,description=Total number of known episodes. Zero when the upstream omits it."`
}

func (d AnimeDetails) String() string {
	return d.Title
}

// Zero reports whether the record carries no data at all, i.e. it is the placeholder
// returned when no provider could serve the lookup.
func (d AnimeDetails) Zero() bool {
	return d.Title == "" && d.CoverURL == "" && d.Description == "" && d.EpisodeCount == 0
}
