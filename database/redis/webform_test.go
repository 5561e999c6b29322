package redis

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/database"
)

var contactWebform = webformtags.Webform{
	ID:       "contact",
	Title:    "Contact",
	Settings: webformtags.WebformSettings{Ajax: true},
	Elements: []webformtags.Element{
		{Key: "email", Title: "Email", Type: "email", Input: true},
	},
	Handlers: []webformtags.WebformHandler{
		{ID: "tealium", Type: "tealiumiq", Enabled: true},
	},
}

func TestWebforms(t *testing.T) {
	dataBase := newConnectedTestDatabase(t)

	Convey("Webforms manipulation", t, func() {
		Convey("Unknown webform returns ErrNil", func() {
			actual, err := dataBase.GetWebform("unknown")
			So(err, ShouldResemble, database.ErrNil)
			So(actual, ShouldResemble, webformtags.Webform{})
		})

		Convey("Saved webform can be read", func() {
			err := dataBase.SaveWebform(&contactWebform)
			So(err, ShouldBeNil)

			actual, err := dataBase.GetWebform(contactWebform.ID)
			So(err, ShouldBeNil)
			So(actual, ShouldResemble, contactWebform)
		})

		Convey("Removing webform removes its handler configs", func() {
			err := dataBase.SaveWebform(&contactWebform)
			So(err, ShouldBeNil)
			config := webformtags.HandlerConfig{FieldMapping: webformtags.NewFieldMapping([2]string{"email", "user_email"})}
			err = dataBase.SaveHandlerConfig(contactWebform.ID, "tealium", &config)
			So(err, ShouldBeNil)

			err = dataBase.RemoveWebform(contactWebform.ID)
			So(err, ShouldBeNil)

			_, err = dataBase.GetWebform(contactWebform.ID)
			So(IsNotFound(err), ShouldBeTrue)
			_, err = dataBase.GetHandlerConfig(contactWebform.ID, "tealium")
			So(IsNotFound(err), ShouldBeTrue)
		})
	})
}

func TestHandlerConfigs(t *testing.T) {
	dataBase := newConnectedTestDatabase(t)

	Convey("Handler configs manipulation", t, func() {
		Convey("Unknown config returns ErrNil", func() {
			_, err := dataBase.GetHandlerConfig("contact", "unknown")
			So(err, ShouldResemble, database.ErrNil)
		})

		Convey("Saved config keeps mapping order", func() {
			config := webformtags.HandlerConfig{FieldMapping: webformtags.NewFieldMapping(
				[2]string{"name__last", "last_name"},
				[2]string{"email", "user_email"},
				[2]string{"sid", "submission_id"},
			)}
			err := dataBase.SaveHandlerConfig("contact", "tealium", &config)
			So(err, ShouldBeNil)

			actual, err := dataBase.GetHandlerConfig("contact", "tealium")
			So(err, ShouldBeNil)
			So(actual.FieldMapping.Keys(), ShouldResemble, []string{"name__last", "email", "sid"})
			destination, _ := actual.FieldMapping.Get("email")
			So(destination, ShouldEqual, "user_email")
		})
	})
}
