package dto

import (
	"fmt"
	"net/http"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/clientscript"
)

// Submission is a submission lifecycle event sent by the form framework
type Submission struct {
	ID       string                      `json:"sid" validate:"required"`
	UUID     string                      `json:"uuid"`
	State    webformtags.SubmissionState `json:"state" validate:"required"`
	Metadata map[string]interface{}      `json:"metadata"`
	Data     map[string]interface{}      `json:"data"`
}

// Bind is a method that implements Binder interface from chi and checks that validity of data in request
func (submission *Submission) Bind(request *http.Request) error {
	if err := validateStruct(submission); err != nil {
		return err
	}
	if !submission.State.IsKnown() {
		return fmt.Errorf("unknown submission state '%s'", submission.State)
	}
	return nil
}

// ToSubmission converts transfer object to submission of webform
func (submission *Submission) ToSubmission(webformID, sessionID string) *webformtags.Submission {
	return &webformtags.Submission{
		ID:        submission.ID,
		UUID:      submission.UUID,
		WebformID: webformID,
		SessionID: sessionID,
		State:     submission.State,
		Metadata:  submission.Metadata,
		Data:      submission.Data,
	}
}

// SubmissionResult is the response to submission event. Ajax forms get commands for the browser library.
type SubmissionResult struct {
	SessionID string                 `json:"session_id"`
	Commands  []clientscript.Command `json:"commands"`
}

// Render is a function that implements chi Renderer interface for SubmissionResult
func (*SubmissionResult) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// SessionTags are tags waiting in visitor session for the next page view
type SessionTags struct {
	SessionID string                  `json:"session_id"`
	Tags      webformtags.PropertySet `json:"tags"`
}

// Render is a function that implements chi Renderer interface for SessionTags
func (*SessionTags) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
