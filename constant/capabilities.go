// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Capability Identifiers - these constants name the logical catalog operations served by the API,
// independent of which provider ends up serving them. They key cache entries and log records.
const (
	CapPing      = "ping"
	CapRecent    = "recent"
	CapTopAiring = "topairing"
	CapGenres    = "genres"
	CapSearch    = "search"
	CapDetails   = "details"
	CapEpisodes  = "episodes"
	CapSource    = "source"
)

// Script Function Aliases - for every capability, the global function names probed on a
// provider script, in priority order. The first name bound to a Lua function wins; the
// remaining aliases exist for compatibility with older script generations.
var (
	RecentFns    = []string{"RecentAnimes", "FetchRecentReleases"}
	TopAiringFns = []string{"TopAiringAnimes", "FetchTopAiring"}
	GenresFns    = []string{"AnimeGenres", "FetchGenres"}
	SearchFns    = []string{"SearchAnimes", "FetchSearch"}
	DetailsFns   = []string{"AnimeDetails", "FetchAnimeInfo"}
	EpisodesFns  = []string{"AnimeEpisodes", "FetchEpisodes"}
	SourceFns    = []string{"EpisodeVideos", "FetchEpisodeSources"}
)

// ScriptAliases maps each capability to its probe list.
var ScriptAliases = map[string][]string{
	CapRecent:    RecentFns,
	CapTopAiring: TopAiringFns,
	CapGenres:    GenresFns,
	CapSearch:    SearchFns,
	CapDetails:   DetailsFns,
	CapEpisodes:  EpisodesFns,
	CapSource:    SourceFns,
}
