package webformtags

// SubmissionState describes the lifecycle states of a webform submission as reported by the form framework
type SubmissionState string

// Submission lifecycle states
var (
	SubmissionStateUnsaved      SubmissionState = "unsaved"
	SubmissionStateDraftCreated SubmissionState = "draft_created"
	SubmissionStateDraftUpdated SubmissionState = "draft_updated"
	SubmissionStateCompleted    SubmissionState = "completed"
	SubmissionStateUpdated      SubmissionState = "updated"
	SubmissionStateDeleted      SubmissionState = "deleted"
	SubmissionStateLocked       SubmissionState = "locked"
	SubmissionStateConverted    SubmissionState = "converted"
)

var knownSubmissionStates = map[SubmissionState]struct{}{
	SubmissionStateUnsaved:      {},
	SubmissionStateDraftCreated: {},
	SubmissionStateDraftUpdated: {},
	SubmissionStateCompleted:    {},
	SubmissionStateUpdated:      {},
	SubmissionStateDeleted:      {},
	SubmissionStateLocked:       {},
	SubmissionStateConverted:    {},
}

// String is a simple Stringer implementation for SubmissionState
func (state SubmissionState) String() string {
	return string(state)
}

// IsCompleted reports whether the submission has reached the terminal "completed" state.
// Only completed submissions are forwarded to analytics.
func (state SubmissionState) IsCompleted() bool {
	return state == SubmissionStateCompleted
}

// IsKnown checks that state is one of the framework lifecycle states
func (state SubmissionState) IsKnown() bool {
	_, ok := knownSubmissionStates[state]
	return ok
}
