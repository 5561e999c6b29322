package webformtags

const (
	LogFieldNameWebformID    = "webformtags.webform.id"
	LogFieldNameHandlerID    = "webformtags.handler.id"
	LogFieldNameHandlerType  = "webformtags.handler.type"
	LogFieldNameSubmissionID = "webformtags.submission.id"
	LogFieldNameSessionID    = "webformtags.session.id"
	LogFieldNameSenderType   = "webformtags.sender.type"
	LogFieldNameContext      = "webformtags.context"
)
