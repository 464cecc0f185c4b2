// Package normalize maps provider-native raw records into the unified response schema.
package normalize

import (
	"github.com/anibridge/anibridge/catalog"
)

// FallbackItem maps one record of the fallback catalog API. Cover art lives in a
// nested images block with per-format variants; the largest available wins. Every
// identifier is stamped with the fallback prefix so later lookups route back here.
func FallbackItem(raw catalog.Raw) catalog.CatalogItem {
	tags := stringsOf(raw, "genres")
	tags = append(tags, stringsOf(raw, "themes")...)

	return catalog.CatalogItem{
		ID:       catalog.FallbackID(scalarOf(raw, "mal_id", "id")),
		Title:    firstOr(UnknownTitle, str(raw, "title", "title_english", "name")),
		CoverURL: coverOf(raw),
		Synopsis: str(raw, "synopsis", "background", "about"),
		Tags:     tags,
	}
}

// FallbackItems maps a raw sequence from the fallback catalog.
func FallbackItems(raws []catalog.Raw) []catalog.CatalogItem {
	items := make([]catalog.CatalogItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, FallbackItem(raw))
	}
	return items
}

// FallbackDetails maps the fallback catalog's detail record. The requested identifier
// is echoed when the record omits its own; an absent episode total yields zero.
func FallbackDetails(raw catalog.Raw, id string) catalog.AnimeDetails {
	own := scalarOf(raw, "mal_id", "id")
	if own != "" {
		id = catalog.FallbackID(own)
	}

	return catalog.AnimeDetails{
		ID:           id,
		Title:        firstOr(UnknownTitle, str(raw, "title", "title_english", "name")),
		CoverURL:     coverOf(raw),
		Description:  str(raw, "synopsis", "background", "about"),
		EpisodeCount: intOf(raw, "episodes", "episodeCount"),
	}
}

// FallbackEpisode maps one episode record. The upstream numbers episodes with their
// own mal_id, so the routable identifier is composed from the parent entry and that
// number: mal-{animeID}-{number}.
func FallbackEpisode(raw catalog.Raw, animeID string) catalog.Episode {
	number := scalarOf(raw, "mal_id", "number", "episode")
	title := str(raw, "title", "title_romanji")
	if number == "" {
		number = numberFrom(title)
	}

	return catalog.Episode{
		ID:     catalog.FallbackID(catalog.StripFallbackID(animeID) + "-" + number),
		Number: number,
		Title:  title,
	}
}

// FallbackEpisodes maps a raw episode sequence for one parent entry.
func FallbackEpisodes(raws []catalog.Raw, animeID string) []catalog.Episode {
	episodes := make([]catalog.Episode, 0, len(raws))
	for _, raw := range raws {
		episodes = append(episodes, FallbackEpisode(raw, animeID))
	}
	return episodes
}

// coverOf resolves cover art through the nested images block, preferring webp over
// jpg and large variants over plain ones, with the flat legacy field last.
func coverOf(raw catalog.Raw) string {
	candidates := []string{
		digStr(raw, "images", "webp", "large_image_url"),
		digStr(raw, "images", "jpg", "large_image_url"),
		digStr(raw, "images", "webp", "image_url"),
		digStr(raw, "images", "jpg", "image_url"),
		str(raw, "image_url", "image"),
	}
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
