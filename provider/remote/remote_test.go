package remote

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anibridge/anibridge/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func jsonServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestBaseIteration(t *testing.T) {
	Convey("Given a failing first base and a healthy second", t, func() {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		healthy := jsonServer(`{"data": [{"mal_id": 21, "title": "One Piece"}]}`)
		defer healthy.Close()

		adapter := NewWithBases(broken.URL, healthy.URL)

		Convey("The second base should serve the result", func() {
			records, err := adapter.Search("one piece")
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(records[0]["title"], ShouldEqual, "One Piece")
		})
	})

	Convey("Given only unreachable bases", t, func() {
		adapter := NewWithBases("http://127.0.0.1:1")

		Convey("The capability should report empty, not fail", func() {
			_, err := adapter.Recent(1)
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})
	})

	Convey("Given no base at all", t, func() {
		adapter := NewWithBases()

		Convey("The capability should report empty", func() {
			_, err := adapter.Search("naruto")
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})
	})
}

func TestTolerantParse(t *testing.T) {
	Convey("Tolerant body parsing", t, func() {
		Convey("The data field should beat results", func() {
			srv := jsonServer(`{
				"data":    [{"title": "from data"}],
				"results": [{"title": "from results"}]
			}`)
			defer srv.Close()

			records, err := NewWithBases(srv.URL).Search("x")
			So(err, ShouldBeNil)
			So(records[0]["title"], ShouldEqual, "from data")
		})

		Convey("The results field should serve when data is absent", func() {
			srv := jsonServer(`{"results": [{"title": "from results"}]}`)
			defer srv.Close()

			records, err := NewWithBases(srv.URL).Search("x")
			So(err, ShouldBeNil)
			So(records[0]["title"], ShouldEqual, "from results")
		})

		Convey("A bare array body should serve as-is", func() {
			srv := jsonServer(`[{"title": "bare"}]`)
			defer srv.Close()

			records, err := NewWithBases(srv.URL).Search("x")
			So(err, ShouldBeNil)
			So(records[0]["title"], ShouldEqual, "bare")
		})

		Convey("An empty data list should report empty", func() {
			srv := jsonServer(`{"data": []}`)
			defer srv.Close()

			_, err := NewWithBases(srv.URL).Search("x")
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})

		Convey("An undecodable body should report empty", func() {
			srv := jsonServer(`<!doctype html><html>maintenance</html>`)
			defer srv.Close()

			_, err := NewWithBases(srv.URL).Search("x")
			So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
		})
	})
}

func TestRequestShape(t *testing.T) {
	Convey("Given a recording server", t, func() {
		var gotPath, gotQuery, gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [{"mal_id": 1, "title": "x"}]}`))
		}))
		defer srv.Close()

		adapter := NewWithBases(srv.URL)

		Convey("Recent should hit /seasons/now with the page", func() {
			_, err := adapter.Recent(2)
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/seasons/now")
			So(gotQuery, ShouldEqual, "page=2")
		})

		Convey("TopAiring should hit /top/anime with the airing filter", func() {
			_, err := adapter.TopAiring(1)
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/top/anime")
			So(gotQuery, ShouldContainSubstring, "filter=airing")
			So(gotQuery, ShouldContainSubstring, "page=1")
		})

		Convey("Search should pass the query", func() {
			_, err := adapter.Search("naruto")
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/anime")
			So(gotQuery, ShouldEqual, "q=naruto")
		})

		Convey("Requests should identify the application", func() {
			_, _ = adapter.Search("naruto")
			So(gotUA, ShouldStartWith, "anibridge/")
		})

		Convey("A prefixed id should route straight to the numeric path", func() {
			_, err := adapter.Details("mal-21")
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/anime/21")
		})

		Convey("Episodes should use the episodes path", func() {
			_, err := adapter.Episodes("mal-21")
			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/anime/21/episodes")
		})
	})
}

func TestGenres(t *testing.T) {
	Convey("Given a genre listing", t, func() {
		srv := jsonServer(`{"data": [
			{"mal_id": 1, "name": "Action"},
			{"mal_id": 8, "name": "Drama"},
			{"mal_id": 0}
		]}`)
		defer srv.Close()

		Convey("Names should come back as plain strings", func() {
			genres, err := NewWithBases(srv.URL).Genres()
			So(err, ShouldBeNil)
			So(genres, ShouldResemble, []string{"Action", "Drama"})
		})
	})
}

func TestSource(t *testing.T) {
	Convey("Source resolution is unsupported upstream", t, func() {
		adapter := NewWithBases("http://unused.invalid")

		_, err := adapter.Source("mal-21-1")
		So(errors.Is(err, catalog.ErrEmpty), ShouldBeTrue)
	})
}
