// Package remote implements the fallback catalog adapter against Jikan-style
// REST mirrors of the MyAnimeList database.
package remote

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/log"
	"github.com/anibridge/anibridge/network"
	"github.com/spf13/viper"
)

// Adapter serves catalog capabilities from an ordered list of mirror base
// URLs. For each request the bases are tried in order until one answers with
// a decodable 2xx body; exhaustion is an empty outcome, not a failure.
type Adapter struct {
	bases []string
}

// New builds the adapter from the configured base URLs.
func New() *Adapter {
	return NewWithBases(viper.GetStringSlice(key.FallbackBaseURLs)...)
}

// NewWithBases builds the adapter against explicit base URLs.
func NewWithBases(bases ...string) *Adapter {
	return &Adapter{bases: bases}
}

// Name returns the provider name.
func (r *Adapter) Name() string {
	return "jikan"
}

// get issues one GET against the bases in order and returns the decoded
// body of the first success. A request that cannot even be constructed is a
// TransportError, the only failure kind this adapter surfaces.
func (r *Adapter) get(capability, path string, query url.Values) (any, error) {
	for _, base := range r.bases {
		target := strings.TrimSuffix(base, "/") + path
		if len(query) > 0 {
			target += "?" + query.Encode()
		}

		req, err := http.NewRequest(http.MethodGet, target, nil)
		if err != nil {
			return nil, &catalog.TransportError{Capability: capability, Err: err}
		}

		// The mirror's usage policy asks clients to identify themselves
		req.Header.Set("User-Agent", constant.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := network.Client.Do(req)
		if err != nil {
			log.Warnf("Fallback base %s unreachable: %v", base, err)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			log.Warnf("Fallback base %s returned %d for %s", base, resp.StatusCode, path)
			continue
		}

		var decoded any
		err = json.NewDecoder(resp.Body).Decode(&decoded)
		resp.Body.Close()
		if err != nil {
			log.Warnf("Fallback base %s returned undecodable body for %s: %v", base, path, err)
			continue
		}

		return decoded, nil
	}

	return nil, catalog.ErrEmpty
}

// items picks the record sequence out of a decoded body: the data field,
// else results, else the body itself when it already is a list.
func items(decoded any) []any {
	if record, ok := decoded.(map[string]any); ok {
		for _, field := range []string{"data", "results"} {
			if list, ok := record[field].([]any); ok {
				return list
			}
		}
	}

	if list, ok := decoded.([]any); ok {
		return list
	}

	return nil
}

func (r *Adapter) getRecords(capability, path string, query url.Values) ([]catalog.Raw, error) {
	decoded, err := r.get(capability, path, query)
	if err != nil {
		return nil, err
	}

	var records []catalog.Raw
	for _, entry := range items(decoded) {
		if record, ok := entry.(map[string]any); ok && len(record) > 0 {
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		return nil, catalog.ErrEmpty
	}

	return records, nil
}

func (r *Adapter) getRecord(capability, path string, query url.Values) (catalog.Raw, error) {
	decoded, err := r.get(capability, path, query)
	if err != nil {
		return nil, err
	}

	record, ok := decoded.(map[string]any)
	if !ok {
		return nil, catalog.ErrEmpty
	}

	for _, field := range []string{"data", "results"} {
		if inner, ok := record[field].(map[string]any); ok {
			record = inner
			break
		}
	}

	if len(record) == 0 {
		return nil, catalog.ErrEmpty
	}

	return record, nil
}
