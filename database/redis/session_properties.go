package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tealiumiq/webformtags"
)

// StoreSessionProperties merges properties into the session bucket and refreshes its ttl.
// Properties stored later overwrite earlier ones with the same tag name.
func (connector *DbConnector) StoreSessionProperties(sessionID string, properties webformtags.PropertySet, ttl time.Duration) error {
	if len(properties) == 0 {
		return nil
	}

	values := make(map[string]interface{}, len(properties))
	for tag, value := range properties {
		values[tag] = value
	}

	c := *connector.client
	key := sessionPropertiesKey(sessionID)
	pipe := c.TxPipeline()
	pipe.HSet(connector.context, key, values)
	if ttl > 0 {
		pipe.Expire(connector.context, key, ttl)
	}
	if _, err := pipe.Exec(connector.context); err != nil {
		return fmt.Errorf("failed to store session %s properties: %w", sessionID, err)
	}
	return nil
}

// PopSessionProperties returns properties stored for session and removes them.
// Empty property set is returned for unknown session.
func (connector *DbConnector) PopSessionProperties(sessionID string) (webformtags.PropertySet, error) {
	c := *connector.client
	key := sessionPropertiesKey(sessionID)

	pipe := c.TxPipeline()
	getAll := pipe.HGetAll(connector.context, key)
	pipe.Del(connector.context, key)
	if _, err := pipe.Exec(connector.context); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to pop session %s properties: %w", sessionID, err)
	}

	values, err := getAll.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return webformtags.PropertySet(values), nil
}

func sessionPropertiesKey(sessionID string) string {
	return "webformtags-session-properties:" + sessionID
}
