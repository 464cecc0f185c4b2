// Package remote implements the fallback catalog adapter against Jikan-style
// REST mirrors of the MyAnimeList database.
package remote

import (
	"errors"
	"strings"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/log"
	"github.com/anibridge/anibridge/normalize"
	"github.com/anibridge/anibridge/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// resolveID maps any catalog id to its numeric mirror form. A prefixed
// fallback id just loses the prefix; a native id has to be re-resolved
// through a closest-match search of the mirror catalog.
func (r *Adapter) resolveID(id string) (string, error) {
	if catalog.IsFallbackID(id) {
		return catalog.StripFallbackID(id), nil
	}

	guess := titleGuess(id)
	if guess == "" {
		return "", catalog.ErrEmpty
	}

	record, err := r.FindClosest(guess)
	if err != nil {
		return "", err
	}

	malID := catalog.StripFallbackID(normalize.FallbackItem(record).ID)
	if malID == "" {
		return "", catalog.ErrEmpty
	}

	log.Infof("Resolved native id %q to fallback id %s", id, malID)
	return malID, nil
}

// titleGuess derives a searchable title from an opaque native id. Slug-style
// ids turn into words; ids without any separator pass through as-is.
func titleGuess(id string) string {
	guess := strings.NewReplacer("-", " ", "_", " ", ".", " ", "/", " ").Replace(id)
	return strings.Join(strings.Fields(guess), " ")
}

// FindClosest returns the mirror record closest to the given name.
// It levenshtein-compares the name against every search candidate.
func (r *Adapter) FindClosest(name string) (catalog.Raw, error) {
	name = normalizedName(name)
	return r.findClosest(name, name, 0, 3)
}

func (r *Adapter) findClosest(name, originalName string, try, limit int) (catalog.Raw, error) {
	if try >= limit {
		log.Infof("No fallback match found for %q", originalName)
		return nil, catalog.ErrEmpty
	}

	records, err := r.Search(name)
	if err != nil && !errors.Is(err, catalog.ErrEmpty) {
		return nil, err
	}

	if len(records) == 0 {
		words := strings.Split(name, " ")
		if len(words) <= 1 {
			// Query cannot be shortened further; give up.
			return r.findClosest(name, originalName, limit, limit)
		}

		// Reduce query specificity by dropping the trailing word.
		alternateName := strings.Join(words[:util.Max(len(words)-1, 1)], " ")
		log.Infof(`No fallback results for %q, trying %q`, name, alternateName)
		return r.findClosest(alternateName, originalName, try+1, limit)
	}

	// Prefilter with fuzzy matching; when that removes every candidate the
	// full result set stays in play for the distance ranking.
	matched := lo.Filter(records, func(record catalog.Raw, _ int) bool {
		return fuzzy.MatchNormalizedFold(name, titleOf(record))
	})
	if len(matched) == 0 {
		matched = records
	}

	closest := lo.MinBy(matched, func(x, y catalog.Raw) bool {
		return levenshtein.Distance(
			name,
			normalizedName(titleOf(x)),
		) < levenshtein.Distance(
			name,
			normalizedName(titleOf(y)),
		)
	})

	log.Info("Found closest fallback match: " + titleOf(closest))
	return closest, nil
}

func titleOf(record catalog.Raw) string {
	return normalize.FallbackItem(record).Title
}
