package webformtags

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSubmission_ToRecord(t *testing.T) {
	Convey("Submission record", t, func() {
		submission := Submission{
			ID:        "42",
			UUID:      "meta-value",
			WebformID: "contact",
			State:     SubmissionStateCompleted,
			Metadata:  map[string]interface{}{"uri": "/form/contact", "uuid": "from-metadata"},
			Data:      map[string]interface{}{"email": "ada@example.com"},
		}

		record := submission.ToRecord()
		So(record["sid"], ShouldEqual, "42")
		So(record["uri"], ShouldEqual, "/form/contact")
		So(record["uuid"], ShouldEqual, "from-metadata")
		So(record["webform_id"], ShouldEqual, "contact")
		So(record[SubmissionDataKey], ShouldResemble, map[string]interface{}{"email": "ada@example.com"})

		Convey("Record is a copy", func() {
			record["uri"] = "changed"
			record[SubmissionDataKey].(map[string]interface{})["email"] = "changed"
			So(submission.Metadata["uri"], ShouldEqual, "/form/contact")
			So(submission.Data["email"], ShouldEqual, "ada@example.com")
		})
	})
}

func TestElement_Label(t *testing.T) {
	Convey("Label fallbacks", t, func() {
		So((&Element{Key: "k", Title: "Title", AdminTitle: "Admin"}).Label(), ShouldEqual, "Admin")
		So((&Element{Key: "k", Title: "Title"}).Label(), ShouldEqual, "Title")
		So((&Element{Key: "k"}).Label(), ShouldEqual, "k")
	})
}

func TestFormAttachments_AttachLibrary(t *testing.T) {
	Convey("Library is attached once", t, func() {
		attachments := FormAttachments{}
		attachments.AttachLibrary("a")
		attachments.AttachLibrary("b")
		attachments.AttachLibrary("a")
		So(attachments.Libraries, ShouldResemble, []string{"a", "b"})
	})
}

func TestWebform_GetHandler(t *testing.T) {
	Convey("Get attached handler", t, func() {
		webform := Webform{Handlers: []WebformHandler{{ID: "tealium", Type: "tealiumiq", Enabled: true}}}
		handler, ok := webform.GetHandler("tealium")
		So(ok, ShouldBeTrue)
		So(handler.Type, ShouldEqual, "tealiumiq")

		_, ok = webform.GetHandler("missing")
		So(ok, ShouldBeFalse)
	})
}
