package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders versions numerically, part by part", func() {
			cases := []struct {
				a, b string
				want int
			}{
				{"0.1.0", "0.1.0", 0},
				{"1.0.0", "0.9.9", 1},
				{"0.2.10", "0.10.2", -1},
				{"0.1.1", "0.1.0", 1},
			}

			for _, c := range cases {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			}
		})

		Convey("Accepts a leading v on either side", func() {
			got, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 0)
		})

		Convey("Rejects strings that are not versions", func() {
			_, err := Compare("latest", "0.1.0")
			So(err, ShouldNotBeNil)

			_, err = Compare("0.1.0", "1.2")
			So(err, ShouldNotBeNil)
		})
	})
}
