package metrics

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpandPrefix(t *testing.T) {
	hostname := func() (string, error) { return "web-1.dc.example.com", nil }

	Convey("Graphite prefix", t, func() {
		Convey("Without placeholder", func() {
			prefix, err := expandPrefix("DevOps.webformtags", hostname)
			So(err, ShouldBeNil)
			So(prefix, ShouldEqual, "DevOps.webformtags")
		})

		Convey("Placeholder is replaced with short host name", func() {
			prefix, err := expandPrefix("DevOps.{hostname}.webformtags", hostname)
			So(err, ShouldBeNil)
			So(prefix, ShouldEqual, "DevOps.web-1.webformtags")
		})

		Convey("Host name error", func() {
			expected := errors.New("no hostname")
			_, err := expandPrefix("{hostname}", func() (string, error) { return "", expected })
			So(err, ShouldEqual, expected)
		})
	})
}

func TestNewGraphiteRegistry(t *testing.T) {
	Convey("Graphite registry", t, func() {
		Convey("Disabled registry still counts", func() {
			registry, err := NewGraphiteRegistry(GraphiteRegistryConfig{}, "api")
			So(err, ShouldBeNil)
			counter := registry.NewCounter("sends", "ok")
			counter.Inc()
			So(counter.Count(), ShouldEqual, 1)
		})

		Convey("Unresolvable relay address", func() {
			_, err := NewGraphiteRegistry(GraphiteRegistryConfig{Enabled: true, URI: "relay-without-port"}, "api")
			So(err, ShouldNotBeNil)
		})
	})
}
