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

// GetWebform gets webform definition by id
func GetWebform(enumerator *forms.Enumerator, webformID string) (*dto.Webform, *api.ErrorResponse) {
	webform, err := getWebform(enumerator, webformID)
	if err != nil {
		return nil, err
	}
	return dto.NewWebform(*webform), nil
}

// SaveWebform stores webform definition and drops cached one
func SaveWebform(dataBase webformtags.Database, enumerator *forms.Enumerator, webformID string, webformDTO *dto.Webform) *api.ErrorResponse {
	if webformDTO.ID != webformID {
		return api.ErrorInvalidRequest(fmt.Errorf("webform id '%s' does not match url id '%s'", webformDTO.ID, webformID))
	}

	webform := webformDTO.ToWebform()
	if err := dataBase.SaveWebform(&webform); err != nil {
		return api.ErrorInternalServer(err)
	}
	enumerator.Invalidate(webformID)
	return nil
}

// RemoveWebform deletes webform definition with its handler configurations
func RemoveWebform(dataBase webformtags.Database, enumerator *forms.Enumerator, webformID string) *api.ErrorResponse {
	if err := dataBase.RemoveWebform(webformID); err != nil {
		return api.ErrorInternalServer(err)
	}
	enumerator.Invalidate(webformID)
	return nil
}

// GetFormAttachments returns what enabled handlers of webform attach to the rendered form
func GetFormAttachments(enumerator *forms.Enumerator, handlers map[string]webformtags.SubmissionHandler, webformID string) (*dto.FormAttachments, *api.ErrorResponse) {
	webform, errResponse := getWebform(enumerator, webformID)
	if errResponse != nil {
		return nil, errResponse
	}

	attachments := &dto.FormAttachments{FormAttachments: webformtags.FormAttachments{Libraries: make([]string, 0)}}
	for _, webformHandler := range webform.Handlers {
		if !webformHandler.Enabled {
			continue
		}
		if handler, ok := handlers[webformHandler.Type]; ok {
			handler.AlterForm(webform, &attachments.FormAttachments)
		}
	}
	return attachments, nil
}

func getWebform(enumerator *forms.Enumerator, webformID string) (*webformtags.Webform, *api.ErrorResponse) {
	webform, err := enumerator.GetWebform(webformID)
	if err != nil {
		if errors.Is(err, database.ErrNil) {
			return nil, api.ErrorNotFound(fmt.Sprintf("webform with ID '%s' does not exists", webformID))
		}
		return nil, api.ErrorInternalServer(err)
	}
	return webform, nil
}
