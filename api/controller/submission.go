package controller

import (
	"context"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/api/dto"
	"github.com/tealiumiq/webformtags/clientscript"
	"github.com/tealiumiq/webformtags/forms"
)

// HandleSubmission passes submission event to every enabled handler of the webform.
// Completed submissions of ajax webforms get the tags dispatched for this submission back as a browser command.
func HandleSubmission(
	ctx context.Context,
	dataBase webformtags.Database,
	enumerator *forms.Enumerator,
	handlers map[string]webformtags.SubmissionHandler,
	logger webformtags.Logger,
	submission *webformtags.Submission,
) (*dto.SubmissionResult, *api.ErrorResponse) {
	webform, errResponse := getWebform(enumerator, submission.WebformID)
	if errResponse != nil {
		return nil, errResponse
	}

	clientDelivery := webform.Settings.Ajax && submission.State.IsCompleted()
	ctx = webformtags.WithSessionID(ctx, submission.SessionID)
	if clientDelivery {
		ctx = webformtags.WithClientDelivery(ctx)
	}

	var dispatched webformtags.PropertySet
	for _, webformHandler := range webform.Handlers {
		if !webformHandler.Enabled {
			continue
		}

		handler, ok := handlers[webformHandler.Type]
		if !ok {
			logger.Warning().
				String(webformtags.LogFieldNameWebformID, webform.ID).
				String(webformtags.LogFieldNameHandlerID, webformHandler.ID).
				String(webformtags.LogFieldNameHandlerType, webformHandler.Type).
				Msg("Handler type is not configured, skip it")
			continue
		}

		config, err := getHandlerConfig(dataBase, webform.ID, webformHandler.ID)
		if err != nil {
			return nil, api.ErrorInternalServer(err)
		}

		properties := handler.OnSubmissionComplete(ctx, webform, config, submission)
		if properties == nil {
			continue
		}
		if dispatched == nil {
			dispatched = make(webformtags.PropertySet, len(properties))
		}
		for tag, value := range properties {
			dispatched[tag] = value
		}
	}

	result := &dto.SubmissionResult{
		SessionID: submission.SessionID,
		Commands:  make([]clientscript.Command, 0),
	}
	if clientDelivery && dispatched != nil {
		result.Commands = append(result.Commands, clientscript.AjaxCommand(dispatched))
	}
	return result, nil
}

// PopSessionTags returns tags waiting in visitor session and removes them
func PopSessionTags(dataBase webformtags.Database, sessionID string) (*dto.SessionTags, *api.ErrorResponse) {
	properties, err := dataBase.PopSessionProperties(sessionID)
	if err != nil {
		return nil, api.ErrorInternalServer(err)
	}
	if properties == nil {
		properties = webformtags.PropertySet{}
	}
	return &dto.SessionTags{SessionID: sessionID, Tags: properties}, nil
}
