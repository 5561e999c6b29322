package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func newBufferLogger(buffer *bytes.Buffer, level zerolog.Level) *Logger {
	return &Logger{Logger: zerolog.New(buffer).Level(level).With().Str(ModuleFieldName, "test").Logger()}
}

func TestLogger(t *testing.T) {
	Convey("Zerolog adapter", t, func() {
		buffer := &bytes.Buffer{}
		logger := newBufferLogger(buffer, zerolog.InfoLevel)

		Convey("Writes tagged event", func() {
			logger.Info().
				String("webform", "contact").
				Int("count", 2).
				Error(errors.New("boom")).
				Msg("dispatched")

			var entry map[string]interface{}
			So(json.Unmarshal(buffer.Bytes(), &entry), ShouldBeNil)
			So(entry["message"], ShouldEqual, "dispatched")
			So(entry["webform"], ShouldEqual, "contact")
			So(entry["count"], ShouldEqual, float64(2))
			So(entry["error"], ShouldEqual, "boom")
			So(entry[ModuleFieldName], ShouldEqual, "test")
		})

		Convey("Disabled level writes nothing", func() {
			logger.Debug().String("key", "value").Msg("hidden")
			So(buffer.Len(), ShouldEqual, 0)
		})

		Convey("Clone does not share tags", func() {
			clone := logger.Clone().String("scope", "clone")
			logger.Info().Msg("original")

			var entry map[string]interface{}
			So(json.Unmarshal(buffer.Bytes(), &entry), ShouldBeNil)
			So(entry, ShouldNotContainKey, "scope")

			buffer.Reset()
			clone.Info().Msg("cloned")
			So(json.Unmarshal(buffer.Bytes(), &entry), ShouldBeNil)
			So(entry["scope"], ShouldEqual, "clone")
		})

		Convey("Level changes threshold", func() {
			_, err := logger.Level("debug")
			So(err, ShouldBeNil)
			logger.Debug().Msg("visible")
			So(buffer.Len(), ShouldBeGreaterThan, 0)

			_, err = logger.Level("unknown-level")
			So(err, ShouldNotBeNil)
		})
	})
}
