package webformtags

// Submission represents a single webform submission as handed over by the form framework
type Submission struct {
	ID        string                 `json:"sid"`
	UUID      string                 `json:"uuid"`
	WebformID string                 `json:"webform_id"`
	SessionID string                 `json:"session_id,omitempty"`
	State     SubmissionState        `json:"state"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      map[string]interface{} `json:"data"`
}

// SubmissionDataKey is the record key element values are nested under
const SubmissionDataKey = "data"

// ToRecord serializes the submission into a nested record: submission metadata with
// element values nested under "data". Identity fields are added unless metadata already holds them.
func (submission *Submission) ToRecord() map[string]interface{} {
	record := make(map[string]interface{}, len(submission.Metadata)+4)
	for key, value := range submission.Metadata {
		record[key] = value
	}
	setIfAbsent(record, "sid", submission.ID)
	setIfAbsent(record, "uuid", submission.UUID)
	setIfAbsent(record, "webform_id", submission.WebformID)

	data := make(map[string]interface{}, len(submission.Data))
	for key, value := range submission.Data {
		data[key] = value
	}
	record[SubmissionDataKey] = data
	return record
}

func setIfAbsent(record map[string]interface{}, key, value string) {
	if value == "" {
		return
	}
	if _, ok := record[key]; !ok {
		record[key] = value
	}
}

// WebformSettings holds per-form settings relevant to tag delivery
type WebformSettings struct {
	Ajax bool `json:"ajax"`
}

// WebformHandler is a handler instance attached to a webform
type WebformHandler struct {
	ID      string `json:"id" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// Webform represents a form definition with its elements and attached handlers
type Webform struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Settings WebformSettings  `json:"settings"`
	Elements []Element        `json:"elements"`
	Handlers []WebformHandler `json:"handlers"`
}

// GetHandler returns attached handler by its id
func (webform *Webform) GetHandler(handlerID string) (WebformHandler, bool) {
	for _, handler := range webform.Handlers {
		if handler.ID == handlerID {
			return handler, true
		}
	}
	return WebformHandler{}, false
}

// Element represents a form element. Containers hold Children, composite elements
// bundle several named sub-elements in CompositeElements
type Element struct {
	Key               string    `json:"key"`
	Title             string    `json:"title,omitempty"`
	AdminTitle        string    `json:"admin_title,omitempty"`
	Type              string    `json:"type"`
	Input             bool      `json:"input"`
	Composite         bool      `json:"composite,omitempty"`
	CompositeElements []Element `json:"composite_elements,omitempty"`
	Children          []Element `json:"children,omitempty"`
}

// Label returns admin title, then title, falling back to the element key
func (element *Element) Label() string {
	if element.AdminTitle != "" {
		return element.AdminTitle
	}
	if element.Title != "" {
		return element.Title
	}
	return element.Key
}

// FieldDefinition describes a submission field present on every webform
type FieldDefinition struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// SourceOption is a selectable mapping source shown to administrators
type SourceOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PropertySet is the final payload of destination tag name to resolved value
type PropertySet map[string]string

// HandlerConfig is the persisted per-form handler configuration
type HandlerConfig struct {
	FieldMapping FieldMapping `json:"field_mapping" yaml:"field_mapping"`
}

// MappingSection is one mapping table of a handler configuration form
type MappingSection struct {
	Title            string         `json:"title"`
	SourceTitle      string         `json:"source_title"`
	DestinationTitle string         `json:"destination_title"`
	Source           []SourceOption `json:"source"`
	Value            FieldMapping   `json:"value"`
}

// ConfigForm is the administrator-facing handler configuration form
type ConfigForm struct {
	DefaultMapping MappingSection `json:"default_mapping"`
	UserMapping    MappingSection `json:"user_mapping"`
}

// FormAttachments collects what a handler adds to the rendered form
type FormAttachments struct {
	Libraries          []string `json:"libraries"`
	SubmitAjaxCallback string   `json:"submit_ajax_callback,omitempty"`
}

// AttachLibrary adds library to attachments once
func (attachments *FormAttachments) AttachLibrary(library string) {
	for _, attached := range attachments.Libraries {
		if attached == library {
			return
		}
	}
	attachments.Libraries = append(attachments.Libraries, library)
}
