package native

import (
	"errors"
	"testing"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

// scriptAdapter builds an adapter straight from Lua source, bypassing the
// loader strategies.
func scriptAdapter(script string) (*Adapter, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, err
	}

	return newAdapter("testscript", state)
}

func TestCapabilityBinding(t *testing.T) {
	Convey("Capability binding", t, func() {
		Convey("Should bind the primary alias", func() {
			adapter, err := scriptAdapter(`
				function SearchAnimes(query)
					return { { id = "one", title = "One Piece: " .. query } }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			So(adapter.Capabilities(), ShouldResemble, []string{constant.CapSearch})

			records, err := adapter.Search("naruto")
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(records[0]["id"], ShouldEqual, "one")
			So(records[0]["title"], ShouldEqual, "One Piece: naruto")
		})

		Convey("Should bind the secondary alias when the primary is absent", func() {
			adapter, err := scriptAdapter(`
				function FetchSearch(query)
					return { { id = "sec" } }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			records, err := adapter.Search("bleach")
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(records[0]["id"], ShouldEqual, "sec")
		})

		Convey("Should prefer the primary alias when both are defined", func() {
			adapter, err := scriptAdapter(`
				function SearchAnimes(query) return { { id = "primary" } } end
				function FetchSearch(query) return { { id = "secondary" } } end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			records, err := adapter.Search("x")
			So(err, ShouldBeNil)
			So(records[0]["id"], ShouldEqual, "primary")
		})

		Convey("Should reject a script binding no known capability", func() {
			_, err := scriptAdapter(`x = 1`)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCapabilityCalls(t *testing.T) {
	Convey("Capability calls", t, func() {
		Convey("Should pass the page number through", func() {
			adapter, err := scriptAdapter(`
				function RecentAnimes(page)
					return { { id = "page-" .. page } }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			records, err := adapter.Recent(3)
			So(err, ShouldBeNil)
			So(records[0]["id"], ShouldEqual, "page-3")
		})

		Convey("Should unwrap a results field", func() {
			adapter, err := scriptAdapter(`
				function TopAiringAnimes(page)
					return { results = { { id = "r1" } }, hasNextPage = false }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			records, err := adapter.TopAiring(1)
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(records[0]["id"], ShouldEqual, "r1")
		})

		Convey("Should translate a details record", func() {
			adapter, err := scriptAdapter(`
				function AnimeDetails(id)
					return { id = id, title = "Bleach", episodeCount = 366 }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			record, err := adapter.Details("abc")
			So(err, ShouldBeNil)
			So(record["id"], ShouldEqual, "abc")
			So(record["title"], ShouldEqual, "Bleach")
			So(record["episodeCount"], ShouldEqual, 366.0)
		})

		Convey("Should accept a one-element list for a record capability", func() {
			adapter, err := scriptAdapter(`
				function EpisodeVideos(episodeId)
					return { { url = "https://example.com/stream.m3u8" } }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			record, err := adapter.Source("show/1")
			So(err, ShouldBeNil)
			So(record["url"], ShouldEqual, "https://example.com/stream.m3u8")
		})

		Convey("Should serve genres as strings", func() {
			adapter, err := scriptAdapter(`
				function AnimeGenres()
					return { "Action", "Drama" }
				end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			genres, err := adapter.Genres()
			So(err, ShouldBeNil)
			So(genres, ShouldResemble, []string{"Action", "Drama"})
		})
	})
}

func TestCapabilityFailures(t *testing.T) {
	Convey("Capability failures", t, func() {
		Convey("Should report an unbound capability as empty", func() {
			adapter, err := scriptAdapter(`
				function SearchAnimes(query) return { { id = "x" } } end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			_, err = adapter.Genres()
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})

		Convey("Should report a non-table return as empty", func() {
			adapter, err := scriptAdapter(`
				function SearchAnimes(query) return "nope" end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			_, err = adapter.Search("x")
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})

		Convey("Should report an empty list as empty", func() {
			adapter, err := scriptAdapter(`
				function SearchAnimes(query) return {} end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			_, err = adapter.Search("x")
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})

		Convey("Should wrap a raised error in CallError", func() {
			adapter, err := scriptAdapter(`
				function AnimeEpisodes(id) error("gateway exploded: " .. id) end
			`)
			So(err, ShouldBeNil)
			defer adapter.Close()

			_, err = adapter.Episodes("abc")
			So(err, ShouldNotBeNil)

			var callErr *catalog.CallError
			So(errors.As(err, &callErr), ShouldBeTrue)
			So(callErr.Capability, ShouldEqual, constant.CapEpisodes)
			So(callErr.Provider, ShouldEqual, "testscript")
			So(catalog.Absorbed(err), ShouldBeTrue)
		})
	})
}

func TestLazy(t *testing.T) {
	Convey("Lazy", t, func() {
		Convey("Should report an unknown provider as unavailable on every call", func() {
			lazy := NewLazy("definitely-not-installed")

			_, err := lazy.Search("x")
			So(errors.Is(err, catalog.ErrUnavailable), ShouldBeTrue)

			// Memoized outcome, same answer without a re-probe
			_, err = lazy.Recent(1)
			So(errors.Is(err, catalog.ErrUnavailable), ShouldBeTrue)

			So(lazy.Available(), ShouldBeFalse)
			So(lazy.Capabilities(), ShouldBeNil)
		})

		Convey("Should keep the provider name even when unavailable", func() {
			lazy := NewLazy("ghost")
			So(lazy.Name(), ShouldEqual, "ghost")
		})
	})
}

func TestBuiltinScript(t *testing.T) {
	Convey("Builtin allanime script", t, func() {
		adapter, err := Load("allanime")
		So(err, ShouldBeNil)
		defer adapter.Close()

		Convey("Should identify itself", func() {
			So(adapter.Name(), ShouldEqual, "allanime")
			So(adapter.ID(), ShouldEqual, "allanime native")
		})

		Convey("Should bind every capability except genres", func() {
			So(adapter.Capabilities(), ShouldResemble, []string{
				constant.CapDetails,
				constant.CapEpisodes,
				constant.CapRecent,
				constant.CapSearch,
				constant.CapSource,
				constant.CapTopAiring,
			})
		})

		Convey("Should report genres as empty", func() {
			_, err := adapter.Genres()
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})
	})
}
