package log

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/tealiumiq/webformtags"
)

// Structure that represents the log sender configuration in the YAML file.
type config struct {
	Message string `mapstructure:"message"`
}

// Sender writes property sets to the service log
type Sender struct {
	message string
	logger  webformtags.Logger
}

// Init read yaml config
func (sender *Sender) Init(senderSettings map[string]interface{}, logger webformtags.Logger) error {
	var cfg config
	if err := mapstructure.Decode(senderSettings, &cfg); err != nil {
		return err
	}
	sender.message = cfg.Message
	if sender.message == "" {
		sender.message = "Webform submission properties"
	}
	sender.logger = logger
	return nil
}

// SendProperties implements Sender interface
func (sender *Sender) SendProperties(ctx context.Context, properties webformtags.PropertySet) error {
	fields := make(map[string]interface{}, len(properties))
	for tag, value := range properties {
		fields[tag] = value
	}

	sender.logger.Info().
		String(webformtags.LogFieldNameSessionID, webformtags.SessionIDFromContext(ctx)).
		Interface("properties", fields).
		Msg(sender.message)
	return nil
}
