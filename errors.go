package webformtags

import "errors"

// ErrUnknownHandlerType is returned when a webform references a handler type that is not registered
var ErrUnknownHandlerType = errors.New("unknown handler type")

// HandlerConfigError means that handler can not be built from its static config
type HandlerConfigError struct {
	HandlerType string
	Err         error
}

func (e HandlerConfigError) Error() string {
	return "handler " + e.HandlerType + ": " + e.Err.Error()
}

func (e HandlerConfigError) Unwrap() error {
	return e.Err
}
