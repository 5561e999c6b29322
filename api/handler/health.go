package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/controller"
	"github.com/tealiumiq/webformtags/api/dto"
)

func getHealth(writer http.ResponseWriter, request *http.Request) {
	state := controller.GetServiceState(database)
	if state.State != dto.ServiceStateOK {
		render.Status(request, http.StatusServiceUnavailable)
	}

	if err := render.Render(writer, request, state); err != nil {
		render.Render(writer, request, api.ErrorRender(err)) //nolint
	}
}
