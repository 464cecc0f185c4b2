// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// SourceTemplate is a Go text/template for scaffolding new Lua provider scripts.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias anime   { id: string, title: string, coverUrl: string|nil, synopsis: string|nil, tags: string[]|nil }
---@alias detail  { id: string, title: string, coverUrl: string|nil, description: string|nil, episodeCount: number|nil }
---@alias episode { id: string, number: string|number|nil, title: string|nil }
---@alias video   { url: string }

-- Every function below is optional. {{ .Name }} serves only the capabilities it
-- defines; anything left out is answered by the fallback catalog instead.
-- Alternate accepted names: {{ .AltNames }}.


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
--- END VARIABLES ---



----- MAIN -----

--- Searches the catalog with the given query.
-- @param query string Query to search for
-- @return anime[] Matching entries, best first
function {{ .SearchFn }}(query)
	return {}
end


--- Lists recently released entries.
-- @param page number Page to fetch, starting at 1
-- @return anime[] Entries on that page
function {{ .RecentFn }}(page)
	return {}
end


--- Lists currently airing entries by popularity.
-- @param page number Page to fetch, starting at 1
-- @return anime[] Entries on that page
function {{ .TopAiringFn }}(page)
	return {}
end


--- Fetches full details for one entry.
-- @param id string Identifier returned by a listing function
-- @return detail
function {{ .DetailsFn }}(id)
	return {}
end


--- Lists all episodes of one entry.
-- @param id string Identifier returned by a listing function
-- @return episode[] Episodes in ascending order
function {{ .EpisodesFn }}(id)
	return {}
end


--- Resolves playable links for one episode.
-- @param episodeId string Identifier returned by {{ .EpisodesFn }}
-- @return video[] Links, best quality first
function {{ .SourceFn }}(episodeId)
	return {}
end

--- END MAIN ---



----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
