// Package dispatch resolves capability requests through the provider chain:
// response cache first, then the native provider, then the remote fallback,
// finally a well-formed empty result.
package dispatch

import (
	"strconv"
	"strings"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/internal/cache"
	"github.com/anibridge/anibridge/normalize"
)

// via adapts a raw-yielding provider call into one returning the mapped,
// normalized value, leaving errors untouched for the chain to classify.
func via[R, T any](call func() (R, error), mapper func(R) T) func() (T, error) {
	return func() (T, error) {
		raw, err := call()
		if err != nil {
			var zero T
			return zero, err
		}
		return mapper(raw), nil
	}
}

// Recent lists recently released entries for a page.
func (d *Dispatcher) Recent(page int) ([]catalog.CatalogItem, catalog.Provenance, error) {
	return resolveList(
		d,
		constant.CapRecent,
		cache.Key(constant.CapRecent, "page="+strconv.Itoa(page)),
		d.ttl,
		via(func() ([]catalog.Raw, error) { return d.native.Recent(page) }, normalize.NativeItems),
		via(func() ([]catalog.Raw, error) { return d.fallback.Recent(page) }, normalize.FallbackItems),
	)
}

// TopAiring lists currently airing entries by popularity for a page.
func (d *Dispatcher) TopAiring(page int) ([]catalog.CatalogItem, catalog.Provenance, error) {
	return resolveList(
		d,
		constant.CapTopAiring,
		cache.Key(constant.CapTopAiring, "page="+strconv.Itoa(page)),
		d.ttl,
		via(func() ([]catalog.Raw, error) { return d.native.TopAiring(page) }, normalize.NativeItems),
		via(func() ([]catalog.Raw, error) { return d.fallback.TopAiring(page) }, normalize.FallbackItems),
	)
}

// Genres lists the catalog's genre names, uncached.
func (d *Dispatcher) Genres() ([]string, catalog.Provenance, error) {
	return resolveList(
		d,
		constant.CapGenres,
		"",
		0,
		d.native.Genres,
		d.fallback.Genres,
	)
}

// Search discovers entries matching a query, best first.
func (d *Dispatcher) Search(query string) ([]catalog.CatalogItem, catalog.Provenance, error) {
	return resolveList(
		d,
		constant.CapSearch,
		searchKey(query),
		d.searchTTL,
		via(func() ([]catalog.Raw, error) { return d.native.Search(query) }, normalize.NativeItems),
		via(func() ([]catalog.Raw, error) { return d.fallback.Search(query) }, normalize.FallbackItems),
	)
}

// Details retrieves the full record of a single entry. A fallback-prefixed
// identifier routes straight to the fallback, skipping the native probe.
func (d *Dispatcher) Details(id string) (catalog.AnimeDetails, catalog.Provenance, error) {
	nativeCall := via(
		func() (catalog.Raw, error) { return d.native.Details(id) },
		func(raw catalog.Raw) catalog.AnimeDetails { return normalize.NativeDetails(raw, id) },
	)
	if catalog.IsFallbackID(id) {
		nativeCall = nil
	}

	return resolveOne(
		d,
		constant.CapDetails,
		cache.Key(constant.CapDetails, "id="+id),
		d.ttl,
		catalog.AnimeDetails{ID: id},
		func(v catalog.AnimeDetails) bool { return !v.Zero() },
		nativeCall,
		via(
			func() (catalog.Raw, error) { return d.fallback.Details(id) },
			func(raw catalog.Raw) catalog.AnimeDetails { return normalize.FallbackDetails(raw, id) },
		),
	)
}

// Episodes lists all episodes of an entry in ascending order. A
// fallback-prefixed identifier routes straight to the fallback.
func (d *Dispatcher) Episodes(id string) ([]catalog.Episode, catalog.Provenance, error) {
	nativeCall := via(
		func() ([]catalog.Raw, error) { return d.native.Episodes(id) },
		normalize.NativeEpisodes,
	)
	if catalog.IsFallbackID(id) {
		nativeCall = nil
	}

	return resolveList(
		d,
		constant.CapEpisodes,
		"",
		0,
		nativeCall,
		via(
			func() ([]catalog.Raw, error) { return d.fallback.Episodes(id) },
			func(raws []catalog.Raw) []catalog.Episode { return normalize.FallbackEpisodes(raws, id) },
		),
	)
}

// Source resolves the playable stream of an episode. Upstream stream URLs
// expire, so resolution never goes through the cache.
func (d *Dispatcher) Source(episodeID string) (catalog.StreamSource, catalog.Provenance, error) {
	nativeCall := via(
		func() (catalog.Raw, error) { return d.native.Source(episodeID) },
		normalize.NativeSource,
	)
	if catalog.IsFallbackID(episodeID) {
		nativeCall = nil
	}

	return resolveOne(
		d,
		constant.CapSource,
		"",
		0,
		catalog.StreamSource{},
		catalog.StreamSource.Resolved,
		nativeCall,
		via(
			func() (catalog.Raw, error) { return d.fallback.Source(episodeID) },
			normalize.NativeSource,
		),
	)
}

// searchKey builds the search cache key from the whitespace-collapsed,
// case-folded query, so trivially different spellings share one entry.
func searchKey(query string) string {
	folded := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return cache.Key(constant.CapSearch, "q="+folded)
}
