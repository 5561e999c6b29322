package webformtags

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v2"
)

func TestMerge(t *testing.T) {
	Convey("Merge field mappings", t, func() {
		defaultMapping := NewFieldMapping(
			[2]string{"sid", "submission_id"},
			[2]string{"uuid", "submission_uuid"},
		)

		Convey("User value wins on collision and keeps first position", func() {
			userMapping := NewFieldMapping(
				[2]string{"email", "user_email"},
				[2]string{"sid", "form_sid"},
			)
			merged := Merge(defaultMapping, userMapping)
			So(merged.Keys(), ShouldResemble, []string{"sid", "uuid", "email"})

			sid, ok := merged.Get("sid")
			So(ok, ShouldBeTrue)
			So(sid, ShouldEqual, "form_sid")

			uuid, _ := merged.Get("uuid")
			So(uuid, ShouldEqual, "submission_uuid")
		})

		Convey("Keys defined only in one source fall back to it", func() {
			merged := Merge(defaultMapping, FieldMapping{})
			So(merged.Keys(), ShouldResemble, []string{"sid", "uuid"})

			merged = Merge(FieldMapping{}, defaultMapping)
			So(merged.Keys(), ShouldResemble, []string{"sid", "uuid"})
		})

		Convey("Sources are not modified", func() {
			userMapping := NewFieldMapping([2]string{"sid", "other"})
			Merge(defaultMapping, userMapping)
			sid, _ := defaultMapping.Get("sid")
			So(sid, ShouldEqual, "submission_id")
			So(userMapping.Len(), ShouldEqual, 1)
		})
	})
}

func TestFieldMapping_Destinations(t *testing.T) {
	Convey("Destinations are distinct and ordered", t, func() {
		mapping := NewFieldMapping(
			[2]string{"name__first", "first_name"},
			[2]string{"first", "first_name"},
			[2]string{"email", "email"},
		)
		So(mapping.Destinations(), ShouldResemble, []string{"first_name", "email"})
	})
}

func TestFieldMapping_JSON(t *testing.T) {
	Convey("JSON keeps key order", t, func() {
		mapping := NewFieldMapping(
			[2]string{"zeta", "z"},
			[2]string{"alpha", "a"},
		)
		encoded, err := json.Marshal(mapping)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, `{"zeta":"z","alpha":"a"}`)

		var decoded FieldMapping
		err = json.Unmarshal([]byte(`{"b":"1","a":"2","b":"3"}`), &decoded)
		So(err, ShouldBeNil)
		So(decoded.Keys(), ShouldResemble, []string{"b", "a"})
		value, _ := decoded.Get("b")
		So(value, ShouldEqual, "3")
	})

	Convey("JSON null decodes to empty mapping", t, func() {
		var decoded FieldMapping
		err := json.Unmarshal([]byte(`null`), &decoded)
		So(err, ShouldBeNil)
		So(decoded.Len(), ShouldEqual, 0)
	})

	Convey("JSON array is rejected", t, func() {
		var decoded FieldMapping
		err := json.Unmarshal([]byte(`["a"]`), &decoded)
		So(err, ShouldNotBeNil)
	})
}

func TestFieldMapping_YAML(t *testing.T) {
	Convey("YAML keeps key order", t, func() {
		config := HandlerConfig{FieldMapping: NewFieldMapping(
			[2]string{"name__last", "last_name"},
			[2]string{"email", "email"},
		)}
		encoded, err := yaml.Marshal(config)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, "field_mapping:\n  name__last: last_name\n  email: email\n")

		var decoded HandlerConfig
		err = yaml.Unmarshal(encoded, &decoded)
		So(err, ShouldBeNil)
		So(decoded.FieldMapping.Keys(), ShouldResemble, []string{"name__last", "email"})
	})
}
