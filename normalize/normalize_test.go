package normalize

import (
	"testing"

	"github.com/anibridge/anibridge/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNativeItem(t *testing.T) {
	Convey("NativeItem", t, func() {
		Convey("Should map a fully populated record", func() {
			item := NativeItem(catalog.Raw{
				"id":       "one-piece",
				"title":    "One Piece",
				"coverUrl": "https://img.example/op.jpg",
				"synopsis": "Pirates.",
				"tags":     []any{"Action", "Adventure"},
			})
			So(item.ID, ShouldEqual, "one-piece")
			So(item.Title, ShouldEqual, "One Piece")
			So(item.CoverURL, ShouldEqual, "https://img.example/op.jpg")
			So(item.Synopsis, ShouldEqual, "Pirates.")
			So(item.Tags, ShouldResemble, []string{"Action", "Adventure"})
		})

		Convey("Should walk the alias chains", func() {
			item := NativeItem(catalog.Raw{
				"animeId": "bleach",
				"name":    "Bleach",
				"image":   "https://img.example/bleach.jpg",
				"summary": "Soul reapers.",
				"genres":  []any{"Action"},
			})
			So(item.ID, ShouldEqual, "bleach")
			So(item.Title, ShouldEqual, "Bleach")
			So(item.CoverURL, ShouldEqual, "https://img.example/bleach.jpg")
			So(item.Synopsis, ShouldEqual, "Soul reapers.")
			So(item.Tags, ShouldResemble, []string{"Action"})
		})

		Convey("Should never fail on a record missing every field", func() {
			item := NativeItem(catalog.Raw{})
			So(item.ID, ShouldEqual, "")
			So(item.Title, ShouldEqual, UnknownTitle)
			So(item.CoverURL, ShouldEqual, "")
			So(item.Synopsis, ShouldEqual, "")
			So(item.Tags, ShouldBeNil)
		})

		Convey("Should coerce numeric identifiers", func() {
			item := NativeItem(catalog.Raw{"id": float64(42), "title": "X"})
			So(item.ID, ShouldEqual, "42")
		})
	})
}

func TestNativeDetails(t *testing.T) {
	Convey("NativeDetails", t, func() {
		Convey("Should map episode totals through the chain", func() {
			d := NativeDetails(catalog.Raw{
				"title":         "Naruto",
				"totalEpisodes": float64(220),
			}, "naruto")
			So(d.ID, ShouldEqual, "naruto")
			So(d.EpisodeCount, ShouldEqual, 220)
		})

		Convey("Should echo the requested identifier when the record has none", func() {
			d := NativeDetails(catalog.Raw{}, "naruto")
			So(d.ID, ShouldEqual, "naruto")
			So(d.Title, ShouldEqual, UnknownTitle)
			So(d.EpisodeCount, ShouldEqual, 0)
		})
	})
}

func TestNativeEpisode(t *testing.T) {
	Convey("NativeEpisode", t, func() {
		Convey("Should pass numbers through in display form", func() {
			ep := NativeEpisode(catalog.Raw{"id": "ep-7", "number": float64(7), "title": "Rescue"})
			So(ep.Number, ShouldEqual, "7")
			So(ep.Title, ShouldEqual, "Rescue")
		})

		Convey("Should keep fractional special numbers", func() {
			ep := NativeEpisode(catalog.Raw{"id": "ep-7-5", "number": 7.5})
			So(ep.Number, ShouldEqual, "7.5")
		})

		Convey("Should dig the number out of the title when absent", func() {
			ep := NativeEpisode(catalog.Raw{"id": "x", "title": "Season 2 Episode 13.5"})
			So(ep.Number, ShouldEqual, "13.5")
		})

		Convey("Should fall back to digits in the identifier", func() {
			ep := NativeEpisode(catalog.Raw{"id": "one-piece-episode-1071"})
			So(ep.Number, ShouldEqual, "1071")
		})
	})
}

func TestNativeSource(t *testing.T) {
	Convey("NativeSource", t, func() {
		So(NativeSource(catalog.Raw{"url": "https://cdn.example/a.m3u8"}).URL, ShouldEqual, "https://cdn.example/a.m3u8")
		So(NativeSource(catalog.Raw{"file": "https://cdn.example/b.mp4"}).URL, ShouldEqual, "https://cdn.example/b.mp4")
		So(NativeSource(catalog.Raw{}).Resolved(), ShouldBeFalse)
	})
}

func TestFallbackItem(t *testing.T) {
	Convey("FallbackItem", t, func() {
		Convey("Should map the catalog API shape and stamp the prefix", func() {
			item := FallbackItem(catalog.Raw{
				"mal_id": float64(21),
				"title":  "One Piece",
				"images": map[string]any{
					"jpg":  map[string]any{"image_url": "https://img.example/s.jpg", "large_image_url": "https://img.example/l.jpg"},
					"webp": map[string]any{"large_image_url": "https://img.example/l.webp"},
				},
				"synopsis": "Pirates.",
				"genres":   []any{map[string]any{"mal_id": float64(1), "name": "Action"}},
				"themes":   []any{map[string]any{"mal_id": float64(2), "name": "Pirates"}},
			})
			So(item.ID, ShouldEqual, "mal-21")
			So(item.Title, ShouldEqual, "One Piece")
			So(item.CoverURL, ShouldEqual, "https://img.example/l.webp")
			So(item.Tags, ShouldResemble, []string{"Action", "Pirates"})
		})

		Convey("Should prefer jpg variants when webp is absent", func() {
			item := FallbackItem(catalog.Raw{
				"mal_id": float64(20),
				"title":  "Naruto",
				"images": map[string]any{
					"jpg": map[string]any{"large_image_url": "https://img.example/naruto.jpg"},
				},
			})
			So(item.CoverURL, ShouldEqual, "https://img.example/naruto.jpg")
		})

		Convey("Should never fail on an empty record", func() {
			item := FallbackItem(catalog.Raw{})
			So(item.ID, ShouldEqual, "")
			So(item.Title, ShouldEqual, UnknownTitle)
			So(item.CoverURL, ShouldEqual, "")
			So(item.Synopsis, ShouldEqual, "")
		})
	})
}

func TestFallbackDetails(t *testing.T) {
	Convey("FallbackDetails", t, func() {
		Convey("Should default an absent episode total to zero", func() {
			d := FallbackDetails(catalog.Raw{
				"mal_id": float64(21),
				"title":  "One Piece",
			}, "mal-21")
			So(d.ID, ShouldEqual, "mal-21")
			So(d.EpisodeCount, ShouldEqual, 0)
		})

		Convey("Should ignore a null episode total", func() {
			d := FallbackDetails(catalog.Raw{"mal_id": float64(21), "episodes": nil}, "mal-21")
			So(d.EpisodeCount, ShouldEqual, 0)
		})

		Convey("Should echo the requested identifier when the record has none", func() {
			d := FallbackDetails(catalog.Raw{"title": "One Piece"}, "mal-21")
			So(d.ID, ShouldEqual, "mal-21")
		})
	})
}

func TestFallbackEpisodes(t *testing.T) {
	Convey("FallbackEpisodes", t, func() {
		raws := []catalog.Raw{
			{"mal_id": float64(1), "title": "Asteroid Blues"},
			{"mal_id": float64(2), "title": "Stray Dog Strut"},
		}

		Convey("Should compose routable identifiers from the parent entry", func() {
			eps := FallbackEpisodes(raws, "mal-1")
			So(eps, ShouldHaveLength, 2)
			So(eps[0].ID, ShouldEqual, "mal-1-1")
			So(eps[0].Number, ShouldEqual, "1")
			So(eps[0].Title, ShouldEqual, "Asteroid Blues")
			So(eps[1].ID, ShouldEqual, "mal-1-2")
		})

		Convey("Should accept an unprefixed parent identifier", func() {
			eps := FallbackEpisodes(raws, "1")
			So(eps[0].ID, ShouldEqual, "mal-1-1")
		})
	})
}
