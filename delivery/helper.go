// Package delivery hands property sets built by webform handlers over to the configured senders.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/metrics"
)

var (
	ErrSenderRegistered  = errors.New("sender is already registered")
	ErrMissingSenderType = errors.New("failed to retrieve sender type from sender settings")
)

type registeredSender struct {
	senderType string
	sender     webformtags.Sender
	metrics    *metrics.SenderMetrics
}

// Helper delivers property sets to every registered sender one by one.
// Delivery failures are logged and counted, never returned or retried.
type Helper struct {
	logger   webformtags.Logger
	registry metrics.Registry
	senders  []registeredSender
}

// NewHelper creates delivery helper without senders
func NewHelper(logger webformtags.Logger, registry metrics.Registry) *Helper {
	return &Helper{
		logger:   logger,
		registry: registry,
	}
}

// RegisterSender initializes sender and adds it for sender type and registers metrics
func (helper *Helper) RegisterSender(senderSettings map[string]interface{}, sender webformtags.Sender) error {
	senderType, ok := senderSettings["sender_type"].(string)
	if !ok || senderType == "" {
		return ErrMissingSenderType
	}

	for _, registered := range helper.senders {
		if registered.senderType == senderType {
			return fmt.Errorf("failed to initialize sender [%s], err [%w]", senderType, ErrSenderRegistered)
		}
	}

	senderLogger := helper.logger.Clone().String(webformtags.LogFieldNameSenderType, senderType)
	if err := sender.Init(senderSettings, senderLogger); err != nil {
		return fmt.Errorf("failed to initialize sender [%s], err [%w]", senderType, err)
	}

	helper.senders = append(helper.senders, registeredSender{
		senderType: senderType,
		sender:     sender,
		metrics:    metrics.ConfigureSenderMetrics(helper.registry, senderType),
	})

	helper.logger.Info().
		String(webformtags.LogFieldNameSenderType, senderType).
		Msg("Sender registered")
	return nil
}

// SenderTypes returns types of registered senders in registration order
func (helper *Helper) SenderTypes() []string {
	types := make([]string, 0, len(helper.senders))
	for _, registered := range helper.senders {
		types = append(types, registered.senderType)
	}
	return types
}

// StoreProperties implements webformtags.DeliveryHelper
func (helper *Helper) StoreProperties(ctx context.Context, properties webformtags.PropertySet) {
	if len(helper.senders) == 0 {
		helper.logger.Warning().
			Int("properties_count", len(properties)).
			Msg("No senders registered, properties are dropped")
		return
	}

	for _, registered := range helper.senders {
		err := registered.sender.SendProperties(ctx, properties)
		if err != nil {
			registered.metrics.SendsFailed.Mark(1)
			helper.logger.Error().
				String(webformtags.LogFieldNameSenderType, registered.senderType).
				String(webformtags.LogFieldNameSessionID, webformtags.SessionIDFromContext(ctx)).
				Error(err).
				Msg("Failed to send properties")
			continue
		}
		registered.metrics.SendsOK.Mark(1)
	}
}
