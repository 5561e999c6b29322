package controller

import (
	"errors"
	"fmt"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/dto"
	"github.com/tealiumiq/webformtags/database"
	"github.com/tealiumiq/webformtags/forms"
)

// GetConfigForm builds configuration form of webform handler filled with stored configuration
func GetConfigForm(
	dataBase webformtags.Database,
	enumerator *forms.Enumerator,
	handlers map[string]webformtags.SubmissionHandler,
	webformID, handlerID string,
) (*dto.ConfigForm, *api.ErrorResponse) {
	webform, handler, errResponse := getWebformHandler(enumerator, handlers, webformID, handlerID)
	if errResponse != nil {
		return nil, errResponse
	}

	config, err := getHandlerConfig(dataBase, webformID, handlerID)
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}

	form, err := handler.BuildConfigForm(webform, config)
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}
	return &dto.ConfigForm{ConfigForm: *form}, nil
}

// SubmitConfigForm merges submitted mapping tables and stores resulting configuration
func SubmitConfigForm(
	dataBase webformtags.Database,
	enumerator *forms.Enumerator,
	handlers map[string]webformtags.SubmissionHandler,
	webformID, handlerID string,
	form *dto.SubmitConfigForm,
) (*dto.HandlerConfig, *api.ErrorResponse) {
	_, handler, errResponse := getWebformHandler(enumerator, handlers, webformID, handlerID)
	if errResponse != nil {
		return nil, errResponse
	}

	config := handler.SubmitConfigForm(form.DefaultMapping, form.UserMapping)
	if err := dataBase.SaveHandlerConfig(webformID, handlerID, &config); err != nil {
		return nil, api.ErrorInternalServer(err)
	}
	return &dto.HandlerConfig{HandlerConfig: config}, nil
}

func getWebformHandler(
	enumerator *forms.Enumerator,
	handlers map[string]webformtags.SubmissionHandler,
	webformID, handlerID string,
) (*webformtags.Webform, webformtags.SubmissionHandler, *api.ErrorResponse) {
	webform, errResponse := getWebform(enumerator, webformID)
	if errResponse != nil {
		return nil, nil, errResponse
	}

	webformHandler, ok := webform.GetHandler(handlerID)
	if !ok {
		return nil, nil, api.ErrorNotFound(fmt.Sprintf("handler with ID '%s' is not attached to webform '%s'", handlerID, webformID))
	}

	handler, ok := handlers[webformHandler.Type]
	if !ok {
		return nil, nil, api.ErrorInvalidRequest(webformtags.HandlerConfigError{
			HandlerType: webformHandler.Type,
			Err:         webformtags.ErrUnknownHandlerType,
		})
	}
	return webform, handler, nil
}

// getHandlerConfig returns stored handler configuration, handler without one gets empty configuration
func getHandlerConfig(dataBase webformtags.Database, webformID, handlerID string) (webformtags.HandlerConfig, error) {
	config, err := dataBase.GetHandlerConfig(webformID, handlerID)
	if err != nil && !errors.Is(err, database.ErrNil) {
		return config, err
	}
	return config, nil
}
