package middleware

import (
	"net/http"

	"github.com/tealiumiq/webformtags"
)

// ContextKey used as key of api request context values.
type ContextKey string

func (key ContextKey) String() string {
	return "api context key " + string(key)
}

var (
	databaseKey  ContextKey = "database"
	webformIDKey ContextKey = "webformID"
	handlerIDKey ContextKey = "handlerID"
	sessionIDKey ContextKey = "sessionID"
)

// GetDatabase gets webformtags.Database realization from request context
func GetDatabase(request *http.Request) webformtags.Database {
	return request.Context().Value(databaseKey).(webformtags.Database)
}

// GetWebformID gets webform id string from request context, which was sets in WebformContext middleware
func GetWebformID(request *http.Request) string {
	return request.Context().Value(webformIDKey).(string)
}

// GetHandlerID gets handler id string from request context, which was sets in HandlerContext middleware
func GetHandlerID(request *http.Request) string {
	return request.Context().Value(handlerIDKey).(string)
}

// GetSessionID gets visitor session id from request context, which was sets in SessionContext middleware
func GetSessionID(request *http.Request) string {
	return request.Context().Value(sessionIDKey).(string)
}
