// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import (
	"fmt"
	"path/filepath"

	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/internal/scraper"
	"github.com/anibridge/anibridge/where"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// Extension is the file extension of provider scripts.
const Extension = ".lua"

// Load acquires the named provider script by trying each construction
// strategy in priority order: a user script under the sources dir first,
// then the embedded builtin of the same name. The first script that loads
// and binds at least one capability wins for the lifetime of the process.
func Load(name string) (*Adapter, error) {
	strategies := []func(string) (*Adapter, error){
		loadUserScript,
		loadBuiltin,
	}

	var lastErr error
	for _, strategy := range strategies {
		adapter, err := strategy(name)
		if err != nil {
			lastErr = err
			continue
		}
		return adapter, nil
	}

	return nil, fmt.Errorf("no loadable script for provider %s: %w", name, lastErr)
}

func loadUserScript(name string) (*Adapter, error) {
	path := filepath.Join(where.Sources(), name+Extension)

	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return nil, fmt.Errorf("no user script at %s", path)
	}

	state := newState()
	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	adapter, err := newAdapter(name, state)
	if err != nil {
		state.Close()
		return nil, err
	}

	return adapter, nil
}

func loadBuiltin(name string) (*Adapter, error) {
	content, ok := builtinScript(name)
	if !ok {
		return nil, fmt.Errorf("no builtin script named %s", name)
	}

	state := newState()
	if err := scraper.PreCompileAndLoadBytes(state, "builtin:"+name, content); err != nil {
		state.Close()
		return nil, err
	}

	adapter, err := newAdapter(name, state)
	if err != nil {
		state.Close()
		return nil, err
	}

	return adapter, nil
}

// newState creates a Lua state preloaded with the script stdlib and the
// http_tls module from wrapper_tls.go.
func newState() *lua.LState {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)
	return state
}
