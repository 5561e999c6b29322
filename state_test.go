package webformtags

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSubmissionState_IsCompleted(t *testing.T) {
	Convey("IsCompleted test", t, func(c C) {
		c.So(SubmissionStateCompleted.IsCompleted(), ShouldBeTrue)
		c.So(SubmissionStateDraftCreated.IsCompleted(), ShouldBeFalse)
		c.So(SubmissionStateDraftUpdated.IsCompleted(), ShouldBeFalse)
		c.So(SubmissionStateUpdated.IsCompleted(), ShouldBeFalse)
		c.So(SubmissionStateUnsaved.IsCompleted(), ShouldBeFalse)
		c.So(SubmissionState("COMPLETED").IsCompleted(), ShouldBeFalse)
	})
}

func TestSubmissionState_IsKnown(t *testing.T) {
	Convey("IsKnown test", t, func(c C) {
		c.So(SubmissionStateLocked.IsKnown(), ShouldBeTrue)
		c.So(SubmissionStateConverted.IsKnown(), ShouldBeTrue)
		c.So(SubmissionState("").IsKnown(), ShouldBeFalse)
		c.So(SubmissionState("done").IsKnown(), ShouldBeFalse)
	})
}
