package collect

import (
	"context"
	"net/http"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/h2non/gock.v1"

	"github.com/tealiumiq/webformtags"
	logging "github.com/tealiumiq/webformtags/logging/zerolog_adapter"
)

func TestInit(t *testing.T) {
	logger, _ := logging.GetLogger("collect")

	Convey("Init tests", t, func() {
		sender := Sender{}

		Convey("Empty account", func() {
			err := sender.Init(map[string]interface{}{"profile": "main"}, logger)
			So(err, ShouldNotBeNil)
		})

		Convey("Empty profile", func() {
			err := sender.Init(map[string]interface{}{"account": "acme"}, logger)
			So(err, ShouldNotBeNil)
		})

		Convey("Broken timeout", func() {
			err := sender.Init(map[string]interface{}{"account": "acme", "profile": "main", "timeout": "soon"}, logger)
			So(err, ShouldNotBeNil)
		})

		Convey("Defaults are applied", func() {
			err := sender.Init(map[string]interface{}{"account": "acme", "profile": "main"}, logger)
			So(err, ShouldBeNil)
			So(sender.url, ShouldEqual, DefaultURL)
			So(sender.event, ShouldEqual, defaultEvent)
			So(sender.allowedCodes, ShouldResemble, defaultAllowedCodes)
			So(sender.client.Timeout, ShouldEqual, defaultTimeout)
		})

		Convey("Full config", func() {
			err := sender.Init(map[string]interface{}{
				"url":           "http://collect.local/event",
				"account":       "acme",
				"profile":       "main",
				"datasource":    "abc123",
				"event":         "form_sent",
				"timeout":       "5s",
				"allowed_codes": []int{200, 202},
			}, logger)
			So(err, ShouldBeNil)
			So(sender.url, ShouldEqual, "http://collect.local/event")
			So(sender.dataSource, ShouldEqual, "abc123")
			So(sender.event, ShouldEqual, "form_sent")
			So(sender.allowedCodes, ShouldResemble, []int{200, 202})
			So(sender.client.Timeout, ShouldEqual, 5*time.Second)
		})
	})
}

func TestSendProperties(t *testing.T) {
	logger, _ := logging.GetLogger("collect")
	defer gock.Off()

	sender := Sender{}
	err := sender.Init(map[string]interface{}{
		"url":        "http://collect.local/event",
		"account":    "acme",
		"profile":    "main",
		"datasource": "abc123",
	}, logger)
	if err != nil {
		t.Fatal(err)
	}
	gock.InterceptClient(sender.client)
	defer gock.RestoreClient(sender.client)

	Convey("Send properties", t, func() {
		ctx := webformtags.WithSessionID(context.Background(), "visitor-1")

		Convey("Event carries properties and account attributes", func() {
			gock.New("http://collect.local").
				Post("/event").
				MatchType("json").
				JSON(map[string]string{
					"user_email":         "ada@example.com",
					"tealium_account":    "acme",
					"tealium_profile":    "main",
					"tealium_datasource": "abc123",
					"tealium_event":      defaultEvent,
					"tealium_visitor_id": "visitor-1",
				}).
				Reply(http.StatusOK)

			err := sender.SendProperties(ctx, webformtags.PropertySet{"user_email": "ada@example.com"})
			So(err, ShouldBeNil)
			So(gock.IsDone(), ShouldBeTrue)
		})

		Convey("Mapped tealium_event is kept", func() {
			event := sender.buildEvent(context.Background(), webformtags.PropertySet{"tealium_event": "signup"})
			So(event["tealium_event"], ShouldEqual, "signup")
			_, ok := event["tealium_visitor_id"]
			So(ok, ShouldBeFalse)
		})

		Convey("Not allowed status code is an error", func() {
			gock.New("http://collect.local").
				Post("/event").
				Reply(http.StatusBadRequest).
				BodyString("bad account")

			err := sender.SendProperties(ctx, webformtags.PropertySet{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "bad account")
		})
	})
}
