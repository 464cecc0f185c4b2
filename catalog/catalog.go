// Package catalog defines the unified domain model, the provider capability contract,
// and the failure taxonomy shared by every component of the aggregation core.
package catalog

// Raw is one provider-native record before normalization. Lua tables and JSON objects
// both decode into it; the normalizer is the only consumer that interprets its keys.
type Raw = map[string]any

// Adapter defines the capability contract every concrete provider implements.
//
// Each method returns either usable raw records or one of the failure signals from the
// taxonomy in errors.go: ErrUnavailable when the provider is not loaded, ErrEmpty when
// the call succeeded but yielded nothing usable, *CallError when the underlying call
// raised, and *TransportError when the adapter's own outbound request could not even be
// issued sanely. Only the last one ever reaches an API consumer.
type Adapter interface {
	// Name returns the provider identifier used in diagnostics and the ping payload.
	Name() string

	// Recent lists recently released entries for a page, starting at 1.
	Recent(page int) ([]Raw, error)

	// TopAiring lists currently airing entries by popularity for a page, starting at 1.
	TopAiring(page int) ([]Raw, error)

	// Genres lists the catalog's genre names.
	Genres() ([]string, error)

	// Search discovers entries matching a query, best first.
	Search(query string) ([]Raw, error)

	// Details retrieves the full record of a single entry.
	Details(id string) (Raw, error)

	// Episodes lists all episodes of an entry in ascending order.
	Episodes(id string) ([]Raw, error)

	// Source resolves the playable stream record of a single episode.
	Source(episodeID string) (Raw, error)
}
