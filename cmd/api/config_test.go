package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tealiumiq/webformtags/cmd"
	"github.com/tealiumiq/webformtags/handler"
)

func TestApiConfig(t *testing.T) {
	Convey("Api config to settings", t, func() {
		config := apiConfig{
			Listen:        "0000",
			EnableCORS:    true,
			SessionCookie: "session",
		}
		settings := config.getSettings()
		So(settings.Listen, ShouldEqual, "0000")
		So(settings.EnableCORS, ShouldBeTrue)
		So(settings.SessionCookie, ShouldEqual, "session")
	})
}

func TestGetDefault(t *testing.T) {
	Convey("Default config enables tealiumiq handler and session sender", t, func() {
		config := getDefault()
		So(config.Handlers, ShouldResemble, []handler.Config{{Type: handler.TealiumHandlerType, Enabled: true}})
		So(config.Senders, ShouldHaveLength, 1)
		So(config.Senders[0]["sender_type"], ShouldEqual, "session")
		So(config.API.SessionCookie, ShouldNotBeEmpty)
	})
}

func TestReadApiConfig(t *testing.T) {
	Convey("Read api config file", t, func() {
		configFile := filepath.Join(t.TempDir(), "api.yml")
		content := `
api:
  listen: ":9000"
  session_cookie: visitor
handlers:
  - type: tealiumiq
    enabled: false
senders:
  - sender_type: collect
    account: acme
    profile: main
    allowed_codes: [200, 202]
    headers:
      X-Test: value
`
		So(os.WriteFile(configFile, []byte(content), 0o600), ShouldBeNil)

		config := getDefault()
		err := cmd.ReadConfig(configFile, &config)
		So(err, ShouldBeNil)
		So(config.API.Listen, ShouldEqual, ":9000")
		So(config.API.SessionCookie, ShouldEqual, "visitor")
		So(config.Handlers, ShouldResemble, []handler.Config{{Type: "tealiumiq", Enabled: false}})

		Convey("Senders settings have string keys", func() {
			settings := getSendersSettings(config.Senders)
			So(settings, ShouldHaveLength, 1)
			So(settings[0]["account"], ShouldEqual, "acme")
			So(settings[0]["allowed_codes"], ShouldResemble, []interface{}{200, 202})
			So(settings[0]["headers"], ShouldResemble, map[string]interface{}{"X-Test": "value"})
		})
	})
}
