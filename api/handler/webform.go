package handler

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/controller"
	"github.com/tealiumiq/webformtags/api/dto"
	"github.com/tealiumiq/webformtags/api/middleware"
)

func webform(config *api.Config) func(router chi.Router) {
	return func(router chi.Router) {
		router.Route("/{webformId}", func(router chi.Router) {
			router.Use(middleware.WebformContext)
			router.Get("/", getWebform)
			router.Put("/", saveWebform)
			router.Delete("/", removeWebform)
			router.Get("/form", getFormAttachments)
			router.With(middleware.SessionContext(config.SessionCookie)).Post("/submission", handleSubmission)
			router.Route("/handler/{handlerId}/config", func(router chi.Router) {
				router.Use(middleware.HandlerContext)
				router.Get("/", getConfigForm)
				router.Put("/", submitConfigForm)
			})
		})
	}
}

func getWebform(writer http.ResponseWriter, request *http.Request) {
	webformID := middleware.GetWebformID(request)

	webform, err := controller.GetWebform(enumerator, webformID)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, webform); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func saveWebform(writer http.ResponseWriter, request *http.Request) {
	webform := &dto.Webform{}
	if err := render.Bind(request, webform); err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	webformID := middleware.GetWebformID(request)
	if err := controller.SaveWebform(middleware.GetDatabase(request), enumerator, webformID, webform); err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, webform); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func removeWebform(writer http.ResponseWriter, request *http.Request) {
	webformID := middleware.GetWebformID(request)
	if err := controller.RemoveWebform(middleware.GetDatabase(request), enumerator, webformID); err != nil {
		render.Render(writer, request, err) //nolint
	}
}

func getFormAttachments(writer http.ResponseWriter, request *http.Request) {
	webformID := middleware.GetWebformID(request)

	attachments, err := controller.GetFormAttachments(enumerator, handlers, webformID)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, attachments); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func getConfigForm(writer http.ResponseWriter, request *http.Request) {
	webformID := middleware.GetWebformID(request)
	handlerID := middleware.GetHandlerID(request)

	form, err := controller.GetConfigForm(middleware.GetDatabase(request), enumerator, handlers, webformID, handlerID)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, form); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func submitConfigForm(writer http.ResponseWriter, request *http.Request) {
	form := &dto.SubmitConfigForm{}
	if err := render.Bind(request, form); err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	webformID := middleware.GetWebformID(request)
	handlerID := middleware.GetHandlerID(request)

	config, err := controller.SubmitConfigForm(middleware.GetDatabase(request), enumerator, handlers, webformID, handlerID, form)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, config); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}

func handleSubmission(writer http.ResponseWriter, request *http.Request) {
	submissionDTO := &dto.Submission{}
	if err := render.Bind(request, submissionDTO); err != nil {
		render.Render(writer, request, api.ErrorInvalidRequest(err)) //nolint
		return
	}

	webformID := middleware.GetWebformID(request)
	sessionID := middleware.GetSessionID(request)
	submission := submissionDTO.ToSubmission(webformID, sessionID)

	result, err := controller.HandleSubmission(
		request.Context(),
		middleware.GetDatabase(request),
		enumerator,
		handlers,
		middleware.GetLoggerEntry(request),
		submission,
	)
	if err != nil {
		render.Render(writer, request, err) //nolint
		return
	}

	if err := render.Render(writer, request, result); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
