package cache

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKey(t *testing.T) {
	Convey("Key", t, func() {
		So(Key("search", "q=naruto"), ShouldEqual, "search:q=naruto")
		So(Key("recent", "page=2"), ShouldEqual, "recent:page=2")
		So(Key("genres"), ShouldEqual, "genres")
		So(Key("episodes", "id=mal-21", "page=1"), ShouldEqual, "episodes:id=mal-21&page=1")
	})
}

func TestStore(t *testing.T) {
	Convey("Store", t, func() {
		s := New(300)

		Convey("Should round-trip a value", func() {
			s.Set("search:q=naruto", []string{"a", "b"}, time.Minute)
			v, ok := s.Get("search:q=naruto")
			So(ok, ShouldBeTrue)
			So(v, ShouldResemble, []string{"a", "b"})
		})

		Convey("Should miss on unknown keys", func() {
			_, ok := s.Get("details:id=mal-21")
			So(ok, ShouldBeFalse)
		})

		Convey("Should treat an expired entry as absent and remove it", func() {
			s.Set("recent:page=1", "stale", time.Minute)

			// Roll the clock past the lifetime; the entry is still resident but
			// must not be served again.
			s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
			So(s.Contains("recent:page=1"), ShouldBeTrue)

			_, ok := s.Get("recent:page=1")
			So(ok, ShouldBeFalse)
			So(s.Contains("recent:page=1"), ShouldBeFalse)
		})

		Convey("Should expire by time even when most recently used", func() {
			s.Set("recent:page=1", "stale", time.Minute)
			_, ok := s.Get("recent:page=1") // promote
			So(ok, ShouldBeTrue)

			s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
			_, ok = s.Get("recent:page=1")
			So(ok, ShouldBeFalse)
		})

		Convey("Should evict exactly the least recently used entry at capacity", func() {
			for i := 0; i < 300; i++ {
				s.Set(fmt.Sprintf("details:id=%d", i), i, time.Minute)
			}
			So(s.Len(), ShouldEqual, 300)

			// Touch the oldest entry so it is no longer the eviction candidate.
			_, ok := s.Get("details:id=0")
			So(ok, ShouldBeTrue)

			s.Set("details:id=300", 300, time.Minute)
			So(s.Len(), ShouldEqual, 300)

			So(s.Contains("details:id=0"), ShouldBeTrue)
			So(s.Contains("details:id=1"), ShouldBeFalse)
			So(s.Contains("details:id=300"), ShouldBeTrue)
		})

		Convey("Purge should drop everything", func() {
			s.Set("genres", []string{"Action"}, time.Minute)
			s.Purge()
			So(s.Len(), ShouldEqual, 0)
		})
	})
}
