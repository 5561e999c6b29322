package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/controller"
	webformtagsmiddle "github.com/tealiumiq/webformtags/api/middleware"
	"github.com/tealiumiq/webformtags/forms"
)

// Storage is the database the api works with
type Storage interface {
	webformtags.Database
	controller.Pinger
}

var (
	database   Storage
	enumerator *forms.Enumerator
	handlers   map[string]webformtags.SubmissionHandler
)

// NewHandler creates new api handler request uris based on github.com/go-chi/chi
func NewHandler(
	db Storage,
	log webformtags.Logger,
	config *api.Config,
	webformEnumerator *forms.Enumerator,
	submissionHandlers map[string]webformtags.SubmissionHandler,
) http.Handler {
	database = db
	enumerator = webformEnumerator
	handlers = submissionHandlers

	router := chi.NewRouter()
	router.Use(webformtagsmiddle.RequestLogger(log))
	router.Use(middleware.NoCache)

	router.NotFound(notFoundHandler)
	router.MethodNotAllowed(methodNotAllowedHandler)

	router.Get("/static/"+clientScriptFileName, getClientScript)

	router.Route("/api", func(router chi.Router) {
		router.Use(render.SetContentType(render.ContentTypeJSON))
		router.Use(webformtagsmiddle.DatabaseContext(database))
		router.Get("/health", getHealth)
		router.Route("/webform", webform(config))
		router.Route("/session", session)
	})
	if config.EnableCORS {
		return cors.AllowAll().Handler(router)
	}
	return router
}

func notFoundHandler(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("X-Content-Type-Options", "nosniff")
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusNotFound)
	render.Render(writer, request, api.ErrNotFound) //nolint
}

func methodNotAllowedHandler(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusMethodNotAllowed)
	render.Render(writer, request, api.ErrMethodNotAllowed) //nolint
}
