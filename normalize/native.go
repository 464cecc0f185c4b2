// Package normalize maps provider-native raw records into the unified response schema.
package normalize

import (
	"github.com/anibridge/anibridge/catalog"
)

// NativeItem maps one record produced by a provider script. Scripts are loosely
// schema'd, so every field is resolved through a chain of the names script authors
// actually use.
func NativeItem(raw catalog.Raw) catalog.CatalogItem {
	return catalog.CatalogItem{
		ID:       scalarOf(raw, "id", "animeId", "slug", "url"),
		Title:    firstOr(UnknownTitle, str(raw, "title", "name", "animeTitle")),
		CoverURL: str(raw, "coverUrl", "image", "img", "cover", "poster"),
		Synopsis: str(raw, "synopsis", "description", "summary"),
		Tags:     stringsOf(raw, "tags", "genres"),
	}
}

// NativeItems maps a raw sequence, tolerating non-record entries.
func NativeItems(raws []catalog.Raw) []catalog.CatalogItem {
	items := make([]catalog.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, NativeItem(raw))
	}
	return items
}

// NativeDetails maps a script's detail record. The requested identifier is echoed when
// the script omits its own.
func NativeDetails(raw catalog.Raw, id string) catalog.AnimeDetails {
	return catalog.AnimeDetails{
		ID:           firstOr(id, scalarOf(raw, "id", "animeId", "slug")),
		Title:        firstOr(UnknownTitle, str(raw, "title", "name", "animeTitle")),
		CoverURL:     str(raw, "coverUrl", "image", "img", "cover", "poster"),
		Description:  str(raw, "description", "synopsis", "summary"),
		EpisodeCount: intOf(raw, "episodeCount", "totalEpisodes", "episodes"),
	}
}

// NativeEpisode maps one episode record from a provider script. Numbers may arrive as
// numbers, numeric strings, or only buried inside the title.
func NativeEpisode(raw catalog.Raw) catalog.Episode {
	title := str(raw, "title", "name")

	number := scalarOf(raw, "number", "episode", "num")
	if number == "" {
		number = numberFrom(title)
	}
	id := scalarOf(raw, "id", "episodeId", "url")
	if number == "" {
		number = numberFrom(id)
	}

	return catalog.Episode{
		ID:     id,
		Number: number,
		Title:  title,
	}
}

// NativeEpisodes maps a raw episode sequence.
func NativeEpisodes(raws []catalog.Raw) []catalog.Episode {
	episodes := make([]catalog.Episode, 0, len(raws))
	for _, raw := range raws {
		episodes = append(episodes, NativeEpisode(raw))
	}
	return episodes
}

// NativeSource maps the best video record of a script's source response.
func NativeSource(raw catalog.Raw) catalog.StreamSource {
	return catalog.StreamSource{
		URL: str(raw, "url", "file", "src", "link"),
	}
}

// firstOr returns the first non-empty candidate, or the fallback literal.
func firstOr(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}
