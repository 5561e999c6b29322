package reply

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/database"
)

func unmarshalWebform(bytes []byte, err error) (webformtags.Webform, error) {
	webform := webformtags.Webform{}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return webform, database.ErrNil
		}
		return webform, fmt.Errorf("failed to read webform: %s", err.Error())
	}

	err = json.Unmarshal(bytes, &webform)
	if err != nil {
		return webform, fmt.Errorf("failed to parse webform json %s: %s", string(bytes), err.Error())
	}

	return webform, nil
}

// Webform converts redis DB reply to webformtags.Webform object
func Webform(rep *redis.StringCmd) (webformtags.Webform, error) {
	return unmarshalWebform(rep.Bytes())
}

func unmarshalHandlerConfig(bytes []byte, err error) (webformtags.HandlerConfig, error) {
	config := webformtags.HandlerConfig{}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return config, database.ErrNil
		}
		return config, fmt.Errorf("failed to read handler config: %s", err.Error())
	}

	err = json.Unmarshal(bytes, &config)
	if err != nil {
		return config, fmt.Errorf("failed to parse handler config json %s: %s", string(bytes), err.Error())
	}

	return config, nil
}

// HandlerConfig converts redis DB reply to webformtags.HandlerConfig object
func HandlerConfig(rep *redis.StringCmd) (webformtags.HandlerConfig, error) {
	return unmarshalHandlerConfig(rep.Bytes())
}
