package handler

import (
	"context"
	"time"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/clientscript"
	"github.com/tealiumiq/webformtags/mapping"
	"github.com/tealiumiq/webformtags/metrics"
	"github.com/tealiumiq/webformtags/resolver"
)

// TealiumHandlerType is the registry identifier of TealiumHandler
const TealiumHandlerType = "tealiumiq"

const (
	defaultMappingTitle     = "Default Webform Field Mapping"
	userMappingTitle        = "User Field Mapping"
	sourceTitle             = "Webform element"
	defaultDestinationTitle = "TealiumIQ Tag"
	userDestinationTitle    = "Tag"
)

// TealiumHandler maps completed webform submissions to TealiumIQ tags
type TealiumHandler struct {
	logger        webformtags.Logger
	tokenResolver webformtags.TokenResolver
	enumerator    webformtags.FieldEnumerator
	helper        webformtags.DeliveryHelper
	metrics       *metrics.HandlerMetrics
}

// NewTealiumHandler is a TealiumHandler factory
func NewTealiumHandler(deps Dependencies) (webformtags.SubmissionHandler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &TealiumHandler{
		logger:        deps.Logger,
		tokenResolver: deps.TokenResolver,
		enumerator:    deps.FieldEnumerator,
		helper:        deps.DeliveryHelper,
		metrics:       deps.Metrics,
	}, nil
}

// BuildConfigForm returns two mapping tables: one for fields every webform submission has and one
// for the elements of this webform. Both show the stored mapping.
func (handler *TealiumHandler) BuildConfigForm(webform *webformtags.Webform, config webformtags.HandlerConfig) (*webformtags.ConfigForm, error) {
	defaultSources := mapping.DefaultSourceOptions(handler.enumerator.DefaultFields(webform))
	userSources := mapping.ElementSourceOptions(handler.enumerator.Elements(webform), handler.enumerator.IsInput)

	return &webformtags.ConfigForm{
		DefaultMapping: webformtags.MappingSection{
			Title:            defaultMappingTitle,
			SourceTitle:      sourceTitle,
			DestinationTitle: defaultDestinationTitle,
			Source:           defaultSources,
			Value:            config.FieldMapping,
		},
		UserMapping: webformtags.MappingSection{
			Title:            userMappingTitle,
			SourceTitle:      sourceTitle,
			DestinationTitle: userDestinationTitle,
			Source:           userSources,
			Value:            config.FieldMapping,
		},
	}, nil
}

// SubmitConfigForm merges submitted tables, user table wins on collision
func (handler *TealiumHandler) SubmitConfigForm(defaultMapping, userMapping webformtags.FieldMapping) webformtags.HandlerConfig {
	return webformtags.HandlerConfig{
		FieldMapping: mapping.MergeMappings(defaultMapping, userMapping),
	}
}

// AlterForm attaches ajax trigger script to forms submitted in-page
func (handler *TealiumHandler) AlterForm(webform *webformtags.Webform, attachments *webformtags.FormAttachments) {
	if !webform.Settings.Ajax {
		return
	}
	attachments.AttachLibrary(clientscript.LibraryName)
	attachments.SubmitAjaxCallback = clientscript.CallbackName
}

// OnSubmissionComplete builds property set of completed submission and hands it to delivery helper
func (handler *TealiumHandler) OnSubmissionComplete(ctx context.Context, webform *webformtags.Webform, config webformtags.HandlerConfig, submission *webformtags.Submission) webformtags.PropertySet {
	handler.metrics.SubmissionsReceived.Mark(1)

	logger := handler.logger.Clone().
		String(webformtags.LogFieldNameWebformID, webform.ID).
		String(webformtags.LogFieldNameSubmissionID, submission.ID)

	if !submission.State.IsCompleted() {
		handler.metrics.SubmissionsIgnored.Mark(1)
		logger.Debug().
			String("state", submission.State.String()).
			Msg("Submission is not completed, skip it")
		return nil
	}

	if webformtags.SessionIDFromContext(ctx) == "" && submission.SessionID != "" {
		ctx = webformtags.WithSessionID(ctx, submission.SessionID)
	}

	startTime := time.Now()
	data := resolver.Flatten(submission.ToRecord())
	data = handler.tokenResolver.Replace(data, submission, webform)
	properties := resolver.PropertySet(data, config.FieldMapping)

	handler.helper.StoreProperties(ctx, properties)
	handler.metrics.PropertiesDispatched.Mark(int64(len(properties)))
	handler.metrics.DispatchTimer.UpdateSince(startTime)

	logger.Debug().
		Int("properties_count", len(properties)).
		Msg("Submission properties dispatched")
	return properties
}
