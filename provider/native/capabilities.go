// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import (
	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
	lua "github.com/yuin/gopher-lua"
)

func (a *Adapter) Recent(page int) ([]catalog.Raw, error) {
	return a.callRecords(constant.CapRecent, lua.LNumber(page))
}

func (a *Adapter) TopAiring(page int) ([]catalog.Raw, error) {
	return a.callRecords(constant.CapTopAiring, lua.LNumber(page))
}

func (a *Adapter) Genres() ([]string, error) {
	val, err := a.call(constant.CapGenres)
	if err != nil {
		return nil, err
	}

	table, ok := val.(*lua.LTable)
	if !ok {
		return nil, catalog.ErrEmpty
	}

	if inner, ok := unwrapResults(table); ok {
		table = inner
	}

	genres := stringList(table)
	if len(genres) == 0 {
		return nil, catalog.ErrEmpty
	}

	return genres, nil
}

func (a *Adapter) Search(query string) ([]catalog.Raw, error) {
	return a.callRecords(constant.CapSearch, lua.LString(query))
}

func (a *Adapter) Details(id string) (catalog.Raw, error) {
	return a.callRecord(constant.CapDetails, lua.LString(id))
}

func (a *Adapter) Episodes(id string) ([]catalog.Raw, error) {
	return a.callRecords(constant.CapEpisodes, lua.LString(id))
}

func (a *Adapter) Source(episodeID string) (catalog.Raw, error) {
	return a.callRecord(constant.CapSource, lua.LString(episodeID))
}
