package session

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"

	"github.com/tealiumiq/webformtags"
	logging "github.com/tealiumiq/webformtags/logging/zerolog_adapter"
	mock_webformtags "github.com/tealiumiq/webformtags/mock/webformtags"
)

func TestSender(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	logger, _ := logging.GetLogger("session")

	Convey("Session sender", t, func() {
		database := mock_webformtags.NewMockDatabase(mockCtrl)
		properties := webformtags.PropertySet{"user_email": "ada@example.com"}

		Convey("Init without database", func() {
			sender := Sender{}
			So(sender.Init(map[string]interface{}{}, logger), ShouldNotBeNil)
		})

		Convey("Init with default ttl", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{"sender_type": "session"}, logger), ShouldBeNil)
			So(sender.ttl, ShouldEqual, defaultTTL)
		})

		Convey("Init with broken ttl", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{"ttl": "later"}, logger), ShouldNotBeNil)
		})

		Convey("Properties are stored in session", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{"ttl": "10m"}, logger), ShouldBeNil)

			database.EXPECT().StoreSessionProperties("visitor", properties, 10*time.Minute).Return(nil)
			err := sender.SendProperties(webformtags.WithSessionID(context.Background(), "visitor"), properties)
			So(err, ShouldBeNil)
		})

		Convey("Properties of ajax submission are not stored", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{}, logger), ShouldBeNil)

			ctx := webformtags.WithClientDelivery(webformtags.WithSessionID(context.Background(), "visitor"))
			So(sender.SendProperties(ctx, properties), ShouldBeNil)
		})

		Convey("Database error is returned", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{}, logger), ShouldBeNil)

			expected := errors.New("connection refused")
			database.EXPECT().StoreSessionProperties("visitor", properties, defaultTTL).Return(expected)
			err := sender.SendProperties(webformtags.WithSessionID(context.Background(), "visitor"), properties)
			So(err, ShouldEqual, expected)
		})

		Convey("No session in context", func() {
			sender := Sender{Database: database}
			So(sender.Init(map[string]interface{}{}, logger), ShouldBeNil)
			So(sender.SendProperties(context.Background(), properties), ShouldEqual, ErrNoSession)
		})
	})
}
