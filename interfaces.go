package webformtags

import (
	"context"
	"time"

	"github.com/tealiumiq/webformtags/logging"
)

// Database implements DB functionality
type Database interface {
	// Webform storing
	GetWebform(webformID string) (Webform, error)
	SaveWebform(webform *Webform) error
	RemoveWebform(webformID string) error

	// Handler configuration storing
	GetHandlerConfig(webformID, handlerID string) (HandlerConfig, error)
	SaveHandlerConfig(webformID, handlerID string, config *HandlerConfig) error

	// Session tags storing
	StoreSessionProperties(sessionID string, properties PropertySet, ttl time.Duration) error
	PopSessionProperties(sessionID string) (PropertySet, error)
}

// Logger implements logger abstraction
type Logger interface {
	Debug() logging.EventBuilder
	Info() logging.EventBuilder
	Error() logging.EventBuilder
	Fatal() logging.EventBuilder
	Warning() logging.EventBuilder

	// Level sets minimal level of logging
	Level(string) (Logger, error)

	// Clone returns copy of logger with the same tags
	Clone() Logger

	String(key, value string) Logger
	Int(key string, value int) Logger
	Fields(fields map[string]interface{}) Logger
}

// TokenResolver substitutes placeholder tokens embedded in submission values.
// Implementations must not have side effects.
type TokenResolver interface {
	Replace(data map[string]interface{}, submission *Submission, webform *Webform) map[string]interface{}
}

// FieldEnumerator enumerates fields available for mapping
type FieldEnumerator interface {
	// DefaultFields returns fields present on all webform submissions
	DefaultFields(webform *Webform) []FieldDefinition
	// Elements returns flattened elements of webform that hold a value
	Elements(webform *Webform) []Element
	// IsInput reports whether element accepts user input
	IsInput(element Element) bool
}

// DeliveryHelper delivers a property set to the analytics service.
// It is fire-and-forget: failures are handled by the helper itself.
type DeliveryHelper interface {
	StoreProperties(ctx context.Context, properties PropertySet)
}

// Sender interface for implementing specified analytics delivery type
type Sender interface {
	Init(senderSettings map[string]interface{}, logger Logger) error
	SendProperties(ctx context.Context, properties PropertySet) error
}

// SubmissionHandler is a webform handler reacting to submission lifecycle
type SubmissionHandler interface {
	// BuildConfigForm returns administrator configuration form for webform
	BuildConfigForm(webform *Webform, config HandlerConfig) (*ConfigForm, error)
	// SubmitConfigForm builds configuration to persist from submitted mapping tables
	SubmitConfigForm(defaultMapping, userMapping FieldMapping) HandlerConfig
	// AlterForm adds handler attachments to the rendered form
	AlterForm(webform *Webform, attachments *FormAttachments)
	// OnSubmissionComplete is called after a submission is saved.
	// It returns the property set handed to delivery, nil when nothing was dispatched.
	OnSubmissionComplete(ctx context.Context, webform *Webform, config HandlerConfig, submission *Submission) PropertySet
}

// Clock is an interface to work with Time.
type Clock interface {
	NowUTC() time.Time
	NowUnix() int64
}
