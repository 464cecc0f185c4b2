package catalog

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFallbackIDs(t *testing.T) {
	Convey("Fallback identifiers", t, func() {
		Convey("FallbackID stamps the prefix once", func() {
			So(FallbackID("21"), ShouldEqual, "mal-21")
			So(FallbackID("mal-21"), ShouldEqual, "mal-21")
			So(FallbackID(""), ShouldEqual, "")
		})

		Convey("StripFallbackID recovers the upstream identifier", func() {
			So(StripFallbackID("mal-21"), ShouldEqual, "21")
			So(StripFallbackID("one-piece"), ShouldEqual, "one-piece")
		})

		Convey("IsFallbackID routes by prefix", func() {
			So(IsFallbackID("mal-21"), ShouldBeTrue)
			So(IsFallbackID("one-piece"), ShouldBeFalse)
			// Native slugs that merely contain the marker do not route to the fallback
			So(IsFallbackID("normal-anime"), ShouldBeFalse)
		})

		Convey("ProvenanceOfID", func() {
			So(ProvenanceOfID("mal-21"), ShouldEqual, ProvenanceFallback)
			So(ProvenanceOfID("one-piece"), ShouldEqual, ProvenanceNative)
		})
	})
}

func TestErrorTaxonomy(t *testing.T) {
	Convey("Error taxonomy", t, func() {
		Convey("Absorbed covers the fall-through signals", func() {
			So(Absorbed(ErrUnavailable), ShouldBeTrue)
			So(Absorbed(ErrEmpty), ShouldBeTrue)
			So(Absorbed(&CallError{Provider: "allanime", Capability: "search", Err: errors.New("boom")}), ShouldBeTrue)
		})

		Convey("Absorbed rejects transport failures", func() {
			So(Absorbed(&TransportError{Capability: "search", Err: errors.New("bad url")}), ShouldBeFalse)
			So(Absorbed(errors.New("anything else")), ShouldBeFalse)
		})

		Convey("CallError unwraps and names the capability", func() {
			cause := errors.New("attempt to index a nil value")
			err := &CallError{Provider: "allanime", Capability: "episodes", Err: cause}
			So(errors.Unwrap(err), ShouldEqual, cause)
			So(err.Error(), ShouldContainSubstring, "episodes")
			So(err.Error(), ShouldContainSubstring, "allanime")
		})

		Convey("Wrapped signals still match", func() {
			wrapped := &CallError{Provider: "allanime", Capability: "search", Err: ErrEmpty}
			So(errors.Is(wrapped, ErrEmpty), ShouldBeTrue)
		})
	})
}

func TestModels(t *testing.T) {
	Convey("Models", t, func() {
		Convey("Episode String prefers the title", func() {
			So(Episode{Number: "3", Title: "Sasuke and Sakura"}.String(), ShouldEqual, "Sasuke and Sakura")
			So(Episode{Number: "3"}.String(), ShouldEqual, "Episode 3")
		})

		Convey("StreamSource Resolved", func() {
			So(StreamSource{URL: "https://cdn.example/ep1.m3u8"}.Resolved(), ShouldBeTrue)
			So(StreamSource{}.Resolved(), ShouldBeFalse)
		})

		Convey("AnimeDetails Zero ignores the echoed identifier", func() {
			So(AnimeDetails{ID: "mal-21"}.Zero(), ShouldBeTrue)
			So(AnimeDetails{ID: "mal-21", Title: "One Piece"}.Zero(), ShouldBeFalse)
		})
	})
}
