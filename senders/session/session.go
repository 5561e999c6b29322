package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/xiam/to"

	"github.com/tealiumiq/webformtags"
)

const defaultTTL = 30 * time.Minute

// ErrNoSession is returned when a property set is delivered outside of a visitor session
var ErrNoSession = errors.New("no visitor session in context")

// Structure that represents the session sender configuration in the YAML file.
type config struct {
	TTL string `mapstructure:"ttl"`
}

// Sender keeps property sets in visitor session until the next page view picks them up
type Sender struct {
	Database webformtags.Database
	ttl      time.Duration
	logger   webformtags.Logger
}

// Init read yaml config
func (sender *Sender) Init(senderSettings map[string]interface{}, logger webformtags.Logger) error {
	if sender.Database == nil {
		return fmt.Errorf("session sender requires database")
	}

	var cfg config
	if err := mapstructure.Decode(senderSettings, &cfg); err != nil {
		return fmt.Errorf("failed to decode senderSettings to session config: %w", err)
	}

	sender.ttl = defaultTTL
	if cfg.TTL != "" {
		sender.ttl = to.Duration(cfg.TTL)
		if sender.ttl <= 0 {
			return fmt.Errorf("can not read session ttl from config: %s", cfg.TTL)
		}
	}
	sender.logger = logger
	return nil
}

// SendProperties stores property set in session of the visitor found in context.
// Tags already returned to the browser with the submission response are not stored.
func (sender *Sender) SendProperties(ctx context.Context, properties webformtags.PropertySet) error {
	sessionID := webformtags.SessionIDFromContext(ctx)
	if sessionID == "" {
		return ErrNoSession
	}

	if webformtags.IsClientDelivery(ctx) {
		sender.logger.Debug().
			String(webformtags.LogFieldNameSessionID, sessionID).
			Msg("Properties are delivered by the browser, skip session")
		return nil
	}

	if err := sender.Database.StoreSessionProperties(sessionID, properties, sender.ttl); err != nil {
		return err
	}

	sender.logger.Debug().
		String(webformtags.LogFieldNameSessionID, sessionID).
		Int("properties_count", len(properties)).
		Msg("Properties stored in session")
	return nil
}
