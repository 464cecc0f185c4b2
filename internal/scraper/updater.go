// Package scraper compiles, executes and updates the Lua provider scripts.
package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/log"
	"github.com/anibridge/anibridge/network"
	"github.com/anibridge/anibridge/where"
)

// RepoRawURL is the raw-content root of the official scripts repository.
const RepoRawURL = "https://raw.githubusercontent.com/anibridge/scrapers/main/sources/"

// updateCandidates are the scripts the updater knows how to fetch. common.lua
// is shared helper code required by some scripts and is not a provider itself.
var updateCandidates = []string{"common.lua", "allanime.lua"}

// UpdateAll fetches every known script from the scripts repository, compares
// SHA-256 hashes against the local copies under the sources dir, and atomically
// swaps the ones that changed. It returns the names of the updated scripts.
func UpdateAll() []string {
	// Timeout so a stalled DNS lookup cannot hang the command
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var updated []string
	for _, file := range updateCandidates {
		if updateSingleFile(ctx, file) {
			updated = append(updated, file)
		}
	}

	return updated
}

func updateSingleFile(ctx context.Context, filename string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, RepoRawURL+filename, nil)
	if err != nil {
		log.Warnf("Failed to create update request for %s: %v", filename, err)
		return false
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Warnf("Script update network failure for %s: %v", filename, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("Script update returned non-200 for %s: %d", filename, resp.StatusCode)
		return false
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}

	remoteHashRaw := sha256.Sum256(bodyBytes)
	remoteHash := hex.EncodeToString(remoteHashRaw[:])

	localPath := filepath.Join(where.Sources(), filename)
	localBytes, err := filesystem.API().ReadFile(localPath)

	if err == nil {
		localHashRaw := sha256.Sum256(localBytes)
		localHash := hex.EncodeToString(localHashRaw[:])
		if localHash == remoteHash {
			return false
		}
	}

	// Hashes differ or local file missing, perform update.
	tmpPath := localPath + ".tmp"
	err = filesystem.API().WriteFile(tmpPath, bodyBytes, 0644)
	if err != nil {
		log.Warnf("Script update failed to write tmp file for %s: %v", filename, err)
		return false
	}

	// Atomic swap prevents a half-written script being compiled
	err = filesystem.API().Rename(tmpPath, localPath)
	if err != nil {
		_ = filesystem.API().Remove(tmpPath)
		log.Warnf("Script update failed atomic swap for %s: %v", filename, err)
		return false
	}

	log.Infof("Updated provider script: %s", filename)
	return true
}
