package forms

import "github.com/tealiumiq/webformtags"

var defaultSubmissionFields = []webformtags.FieldDefinition{
	{Key: "serial", Title: "Number", Type: "serial"},
	{Key: "sid", Title: "ID", Type: "sid"},
	{Key: "uuid", Title: "UUID", Type: "uuid"},
	{Key: "token", Title: "Token", Type: "token"},
	{Key: "uri", Title: "Submission URI", Type: "uri"},
	{Key: "created", Title: "Created", Type: "created"},
	{Key: "completed", Title: "Completed", Type: "completed"},
	{Key: "changed", Title: "Changed", Type: "changed"},
	{Key: "in_draft", Title: "Is draft", Type: "in_draft"},
	{Key: "current_page", Title: "Current page", Type: "current_page"},
	{Key: "remote_addr", Title: "IP address", Type: "remote_addr"},
	{Key: "uid", Title: "User", Type: "entity_reference"},
	{Key: "langcode", Title: "Language", Type: "langcode"},
	{Key: "webform_id", Title: "Webform", Type: "entity_reference"},
	{Key: "entity_type", Title: "Submitted to: Entity type", Type: "entity_type"},
	{Key: "entity_id", Title: "Submitted to: Entity ID", Type: "entity_id"},
	{Key: "locked", Title: "Locked", Type: "locked"},
	{Key: "sticky", Title: "Sticky", Type: "sticky"},
	{Key: "notes", Title: "Notes", Type: "notes"},
}

// DefaultSubmissionFields returns fields every webform submission has
func DefaultSubmissionFields() []webformtags.FieldDefinition {
	fields := make([]webformtags.FieldDefinition, len(defaultSubmissionFields))
	copy(fields, defaultSubmissionFields)
	return fields
}
