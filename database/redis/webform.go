package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/database"
	"github.com/tealiumiq/webformtags/database/redis/reply"
)

// GetWebform returns webform definition by given id, if no value, return database.ErrNil error
func (connector *DbConnector) GetWebform(webformID string) (webformtags.Webform, error) {
	c := *connector.client

	result := c.Get(connector.context, webformKey(webformID))
	webform, err := reply.Webform(result)
	if err != nil {
		return webform, err
	}
	webform.ID = webformID
	return webform, nil
}

// SaveWebform writes webform definition
func (connector *DbConnector) SaveWebform(webform *webformtags.Webform) error {
	webformString, err := json.Marshal(webform)
	if err != nil {
		return fmt.Errorf("failed to marshal webform: %w", err)
	}

	c := *connector.client
	err = c.Set(connector.context, webformKey(webform.ID), webformString, redis.KeepTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to save webform %s: %w", webform.ID, err)
	}
	return nil
}

// RemoveWebform deletes webform definition and configuration of its handlers
func (connector *DbConnector) RemoveWebform(webformID string) error {
	c := *connector.client

	handlerIDs, err := c.HKeys(connector.context, handlerConfigsKey(webformID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to get handlers of webform %s: %w", webformID, err)
	}

	pipe := c.TxPipeline()
	pipe.Del(connector.context, webformKey(webformID))
	pipe.Del(connector.context, handlerConfigsKey(webformID))
	if _, err := pipe.Exec(connector.context); err != nil {
		return fmt.Errorf("failed to remove webform %s: %w", webformID, err)
	}

	if len(handlerIDs) > 0 {
		connector.logger.Debug().
			String(webformtags.LogFieldNameWebformID, webformID).
			Int("handlers_count", len(handlerIDs)).
			Msg("Removed webform handler configurations")
	}
	return nil
}

// GetHandlerConfig returns configuration of webform handler, if no value, return database.ErrNil error
func (connector *DbConnector) GetHandlerConfig(webformID, handlerID string) (webformtags.HandlerConfig, error) {
	c := *connector.client

	result := c.HGet(connector.context, handlerConfigsKey(webformID), handlerID)
	return reply.HandlerConfig(result)
}

// SaveHandlerConfig writes configuration of webform handler
func (connector *DbConnector) SaveHandlerConfig(webformID, handlerID string, config *webformtags.HandlerConfig) error {
	configString, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal handler config: %w", err)
	}

	c := *connector.client
	if err := c.HSet(connector.context, handlerConfigsKey(webformID), handlerID, configString).Err(); err != nil {
		return fmt.Errorf("failed to save handler %s config: %w", handlerID, err)
	}
	return nil
}

// IsNotFound is a helper for callers working with database.ErrNil
func IsNotFound(err error) bool {
	return errors.Is(err, database.ErrNil)
}

func webformKey(webformID string) string {
	return "webformtags-webform:" + webformID
}

func handlerConfigsKey(webformID string) string {
	return "webformtags-webform-handlers:" + webformID
}
