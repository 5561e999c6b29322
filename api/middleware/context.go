package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/api"
)

// SessionHeader is the header visitor session id can be passed in
const SessionHeader = "X-Webformtags-Session"

// DatabaseContext sets to requests context configured database
func DatabaseContext(database webformtags.Database) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), databaseKey, database)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// WebformContext gets webformId from parsed URI corresponding to webform routes and set it to request context
func WebformContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		webformID := chi.URLParam(request, "webformId")
		if webformID == "" {
			render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("webformId must be set"))) //nolint
			return
		}
		ctx := context.WithValue(request.Context(), webformIDKey, webformID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// HandlerContext gets handlerId from parsed URI corresponding to handler routes and set it to request context
func HandlerContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		handlerID := chi.URLParam(request, "handlerId")
		if handlerID == "" {
			render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("handlerId must be set"))) //nolint
			return
		}
		ctx := context.WithValue(request.Context(), handlerIDKey, handlerID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// SessionContext gets visitor session id from header or cookie and sets it in request context.
// Visitors without session get a new one, returned in the cookie.
func SessionContext(cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			sessionID := request.Header.Get(SessionHeader)
			if sessionID == "" {
				if cookie, err := request.Cookie(cookieName); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				uuid4, err := uuid.NewV4()
				if err != nil {
					render.Render(writer, request, api.ErrorInternalServer(err)) //nolint
					return
				}
				sessionID = uuid4.String()
				http.SetCookie(writer, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(request.Context(), sessionIDKey, sessionID)
			ctx = webformtags.WithSessionID(ctx, sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// SessionPathContext gets sessionId from parsed URI and set it to request context
func SessionPathContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sessionID := chi.URLParam(request, "sessionId")
		if sessionID == "" {
			render.Render(writer, request, api.ErrorInvalidRequest(fmt.Errorf("sessionId must be set"))) //nolint
			return
		}
		ctx := context.WithValue(request.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
