// Package remote implements the fallback catalog adapter against Jikan-style
// REST mirrors of the MyAnimeList database.
package remote

import (
	"net/url"
	"strconv"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
)

func (r *Adapter) Recent(page int) ([]catalog.Raw, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	return r.getRecords(constant.CapRecent, "/seasons/now", query)
}

func (r *Adapter) TopAiring(page int) ([]catalog.Raw, error) {
	query := url.Values{}
	query.Set("filter", "airing")
	query.Set("page", strconv.Itoa(page))

	return r.getRecords(constant.CapTopAiring, "/top/anime", query)
}

func (r *Adapter) Genres() ([]string, error) {
	records, err := r.getRecords(constant.CapGenres, "/genres/anime", nil)
	if err != nil {
		return nil, err
	}

	var genres []string
	for _, record := range records {
		if name, ok := record["name"].(string); ok && name != "" {
			genres = append(genres, name)
		}
	}

	if len(genres) == 0 {
		return nil, catalog.ErrEmpty
	}

	return genres, nil
}

func (r *Adapter) Search(query string) ([]catalog.Raw, error) {
	params := url.Values{}
	params.Set("q", query)

	return r.getRecords(constant.CapSearch, "/anime", params)
}

func (r *Adapter) Details(id string) (catalog.Raw, error) {
	malID, err := r.resolveID(id)
	if err != nil {
		return nil, err
	}

	return r.getRecord(constant.CapDetails, "/anime/"+url.PathEscape(malID), nil)
}

func (r *Adapter) Episodes(id string) ([]catalog.Raw, error) {
	malID, err := r.resolveID(id)
	if err != nil {
		return nil, err
	}

	return r.getRecords(constant.CapEpisodes, "/anime/"+url.PathEscape(malID)+"/episodes", nil)
}

// Source is unsupported upstream: the mirror serves metadata, not streams.
// Resolution for a fallback episode id deterministically stays empty.
func (r *Adapter) Source(episodeID string) (catalog.Raw, error) {
	return nil, catalog.ErrEmpty
}
