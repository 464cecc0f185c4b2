// Package provider enumerates built-in and user-installed provider scripts.
package provider

import (
	"bytes"
	"path/filepath"

	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/provider/native"
	"github.com/anibridge/anibridge/util"
	"github.com/anibridge/anibridge/where"
)

// Provider describes one provider script known to the registry.
type Provider struct {
	ID            string
	Name          string
	UsesHeadless  bool // Indicates whether the script drives a headless browser.
	IsCustom      bool // User-installed script, as opposed to an embedded builtin.
	CreateAdapter func() (*native.Adapter, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the providers embedded in the binary.
func Builtins() []*Provider {
	var providers []*Provider
	for _, name := range native.BuiltinNames() {
		providers = append(providers, &Provider{
			ID:   native.IDfromName(name),
			Name: name,
			CreateAdapter: func() (*native.Adapter, error) {
				return native.Load(name)
			},
		})
	}

	return providers
}

// Customs returns all user-installed providers.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// Get finds a provider by name. A custom script shadows a builtin of the
// same name, matching the loader's strategy order.
func Get(name string) (*Provider, bool) {
	for _, p := range append(Customs(), Builtins()...) {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders enumerates the *.lua scripts under the sources dir.
// common.lua is shared helper code, not a provider.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != native.Extension {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:           native.IDfromName(name),
			Name:         name,
			UsesHeadless: isHeadless(path),
			IsCustom:     true,
			CreateAdapter: func() (*native.Adapter, error) {
				return native.Load(name)
			},
		})
	}

	return providers, nil
}

// Helpers

func isHeadless(path string) bool {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	match := [][]byte{
		[]byte("require(\"headless\")"),
		[]byte("require('headless')"),
	}

	for _, m := range match {
		if bytes.Contains(content, m) {
			return true
		}
	}
	return false
}
