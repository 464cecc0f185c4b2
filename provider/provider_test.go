package provider

import (
	"path/filepath"
	"testing"

	"github.com/anibridge/anibridge/filesystem"
	"github.com/anibridge/anibridge/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting the builtin provider", t, func() {
		p, ok := Get("allanime")
		Convey("Then it should be known and not custom", func() {
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeFalse)
			So(p.ID, ShouldEqual, "allanime native")
		})
	})
}

func TestCustomProviders(t *testing.T) {
	Convey("Given a user script in the sources dir", t, func() {
		script := []byte(`function SearchAnimes(query) return {} end`)
		path := filepath.Join(where.Sources(), "myanimes.lua")
		So(filesystem.API().WriteFile(path, script, 0644), ShouldBeNil)

		// Helper file that must never show up as a provider
		common := filepath.Join(where.Sources(), "common.lua")
		So(filesystem.API().WriteFile(common, []byte(`return {}`), 0644), ShouldBeNil)

		Convey("It should be enumerated as custom", func() {
			providers, err := CustomProviders()
			So(err, ShouldBeNil)
			So(providers, ShouldHaveLength, 1)
			So(providers[0].Name, ShouldEqual, "myanimes")
			So(providers[0].IsCustom, ShouldBeTrue)
			So(providers[0].UsesHeadless, ShouldBeFalse)
		})

		Convey("It should shadow builtins in Get", func() {
			p, ok := Get("myanimes")
			So(ok, ShouldBeTrue)
			So(p.IsCustom, ShouldBeTrue)
		})

		Convey("Its adapter should load from the script file", func() {
			p, _ := Get("myanimes")
			adapter, err := p.CreateAdapter()
			So(err, ShouldBeNil)
			defer adapter.Close()
			So(adapter.Name(), ShouldEqual, "myanimes")
		})
	})
}
