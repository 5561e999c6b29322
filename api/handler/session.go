package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/controller"
	"github.com/tealiumiq/webformtags/api/middleware"
)

func session(router chi.Router) {
	router.Route("/{sessionId}", func(router chi.Router) {
		router.Use(middleware.SessionPathContext)
		router.Get("/tags", popSessionTags)
	})
}

func popSessionTags(writer http.ResponseWriter, request *http.Request) {
	sessionID := middleware.GetSessionID(request)

	tags, err := controller.PopSessionTags(middleware.GetDatabase(request), sessionID)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, tags); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
