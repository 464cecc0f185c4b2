// Package version tracks the application release: the running version, the
// newest published one, and the comparison between them.
package version

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/network"
	"github.com/anibridge/anibridge/util"
	"github.com/anibridge/anibridge/where"
	"github.com/metafates/gache"
)

const releasesURL = "https://api.github.com/repos/anibridge/anibridge/releases/latest"

var latestCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest published release version. The lookup hits the
// GitHub releases API and is memoized on disk for two days to stay clear of
// its rate limits.
func Latest() (string, error) {
	memoized, expired, err := latestCacher.Get()
	if err == nil && !expired && memoized != "" {
		return memoized, nil
	}

	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	version := strings.TrimPrefix(release.TagName, "v")
	if version == "" {
		return "", errors.New("release has no tag name")
	}

	_ = latestCacher.Set(version)
	return version, nil
}
