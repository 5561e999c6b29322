package controller

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/mock/gomock"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/clientscript"
	"github.com/tealiumiq/webformtags/clock"
	"github.com/tealiumiq/webformtags/delivery"
	"github.com/tealiumiq/webformtags/forms"
	"github.com/tealiumiq/webformtags/handler"
	logging "github.com/tealiumiq/webformtags/logging/zerolog_adapter"
	"github.com/tealiumiq/webformtags/metrics"
	mock_webformtags "github.com/tealiumiq/webformtags/mock/webformtags"
	"github.com/tealiumiq/webformtags/senders/session"
	"github.com/tealiumiq/webformtags/templating"
)

var pricingWebform = webformtags.Webform{
	ID:       "pricing",
	Elements: []webformtags.Element{{Key: "plan", Type: "select", Input: true}},
	Handlers: []webformtags.WebformHandler{{ID: "tealium", Type: handler.TealiumHandlerType, Enabled: true}},
}

var signupWebform = webformtags.Webform{
	ID:       "signup",
	Settings: webformtags.WebformSettings{Ajax: true},
	Elements: []webformtags.Element{{Key: "email", Type: "email", Input: true}},
	Handlers: []webformtags.WebformHandler{{ID: "tealium", Type: handler.TealiumHandlerType, Enabled: true}},
}

func TestHandleSubmission(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	logger, _ := logging.GetLogger("controller")

	Convey("Handle submission", t, func() {
		dataBase := mock_webformtags.NewMockDatabase(mockCtrl)
		enumerator := forms.NewEnumerator(dataBase, time.Minute)
		registry := metrics.NewCompositeRegistry()

		helper := delivery.NewHelper(logger, registry)
		err := helper.RegisterSender(map[string]interface{}{"sender_type": "session", "ttl": "30m"}, &session.Sender{Database: dataBase})
		So(err, ShouldBeNil)

		tealiumHandler, err := handler.NewTealiumHandler(handler.Dependencies{
			Logger:          logger,
			TokenResolver:   templating.NewTokenResolver(clock.NewSystemClock()),
			FieldEnumerator: enumerator,
			DeliveryHelper:  helper,
			Metrics:         metrics.ConfigureHandlerMetrics(registry),
		})
		So(err, ShouldBeNil)
		handlers := map[string]webformtags.SubmissionHandler{handler.TealiumHandlerType: tealiumHandler}

		dataBase.EXPECT().GetWebform("pricing").Return(pricingWebform, nil).AnyTimes()
		dataBase.EXPECT().GetWebform("signup").Return(signupWebform, nil).AnyTimes()
		dataBase.EXPECT().GetHandlerConfig("pricing", "tealium").Return(webformtags.HandlerConfig{
			FieldMapping: webformtags.NewFieldMapping([2]string{"plan", "plan_tag"}),
		}, nil).AnyTimes()
		dataBase.EXPECT().GetHandlerConfig("signup", "tealium").Return(webformtags.HandlerConfig{
			FieldMapping: webformtags.NewFieldMapping([2]string{"email", "user_email"}),
		}, nil).AnyTimes()

		pricingSubmission := &webformtags.Submission{
			ID:        "1",
			WebformID: "pricing",
			SessionID: "S",
			State:     webformtags.SubmissionStateCompleted,
			Data:      map[string]interface{}{"plan": "gold"},
		}
		signupSubmission := &webformtags.Submission{
			ID:        "2",
			WebformID: "signup",
			SessionID: "S",
			State:     webformtags.SubmissionStateCompleted,
			Data:      map[string]interface{}{"email": "a@b"},
		}

		Convey("Non ajax submission stores tags in session", func() {
			dataBase.EXPECT().StoreSessionProperties("S", webformtags.PropertySet{"plan_tag": "gold"}, 30*time.Minute).Return(nil)

			result, errResponse := HandleSubmission(context.Background(), dataBase, enumerator, handlers, logger, pricingSubmission)
			So(errResponse, ShouldBeNil)
			So(result.SessionID, ShouldEqual, "S")
			So(result.Commands, ShouldBeEmpty)
		})

		Convey("Ajax command carries only tags of the submission", func() {
			dataBase.EXPECT().StoreSessionProperties("S", webformtags.PropertySet{"plan_tag": "gold"}, 30*time.Minute).Return(nil)

			_, errResponse := HandleSubmission(context.Background(), dataBase, enumerator, handlers, logger, pricingSubmission)
			So(errResponse, ShouldBeNil)

			result, errResponse := HandleSubmission(context.Background(), dataBase, enumerator, handlers, logger, signupSubmission)
			So(errResponse, ShouldBeNil)
			So(result.Commands, ShouldHaveLength, 1)
			So(result.Commands[0].Method, ShouldEqual, clientscript.CallbackName)
			So(result.Commands[0].Args, ShouldResemble, []interface{}{webformtags.PropertySet{"user_email": "a@b"}})
		})

		Convey("Ajax command does not depend on session sender", func() {
			bareHelper := delivery.NewHelper(logger, metrics.NewCompositeRegistry())
			bareHandler, err := handler.NewTealiumHandler(handler.Dependencies{
				Logger:          logger,
				TokenResolver:   templating.NewTokenResolver(clock.NewSystemClock()),
				FieldEnumerator: enumerator,
				DeliveryHelper:  bareHelper,
				Metrics:         metrics.ConfigureHandlerMetrics(metrics.NewCompositeRegistry()),
			})
			So(err, ShouldBeNil)

			result, errResponse := HandleSubmission(context.Background(), dataBase, enumerator,
				map[string]webformtags.SubmissionHandler{handler.TealiumHandlerType: bareHandler}, logger, signupSubmission)
			So(errResponse, ShouldBeNil)
			So(result.Commands, ShouldHaveLength, 1)
			So(result.Commands[0].Args, ShouldResemble, []interface{}{webformtags.PropertySet{"user_email": "a@b"}})
		})

		Convey("Nothing dispatched gives no ajax command", func() {
			disabled := signupWebform
			disabled.ID = "disabled"
			disabled.Handlers = []webformtags.WebformHandler{{ID: "tealium", Type: handler.TealiumHandlerType, Enabled: false}}
			dataBase.EXPECT().GetWebform("disabled").Return(disabled, nil)

			submission := *signupSubmission
			submission.WebformID = "disabled"
			result, errResponse := HandleSubmission(context.Background(), dataBase, enumerator, handlers, logger, &submission)
			So(errResponse, ShouldBeNil)
			So(result.Commands, ShouldBeEmpty)
		})

		Convey("Draft of ajax webform gives no ajax command", func() {
			submission := *signupSubmission
			submission.State = webformtags.SubmissionStateDraftCreated
			result, errResponse := HandleSubmission(context.Background(), dataBase, enumerator, handlers, logger, &submission)
			So(errResponse, ShouldBeNil)
			So(result.Commands, ShouldBeEmpty)
		})
	})
}
