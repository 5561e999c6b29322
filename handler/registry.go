package handler

import (
	"errors"
	"fmt"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/metrics"
)

var (
	ErrHandlerRegistered   = errors.New("handler type is already registered")
	ErrMissingDependencies = errors.New("handler dependencies are not set")
)

// Dependencies are collaborators injected into every handler at construction time
type Dependencies struct {
	Logger          webformtags.Logger
	TokenResolver   webformtags.TokenResolver
	FieldEnumerator webformtags.FieldEnumerator
	DeliveryHelper  webformtags.DeliveryHelper
	Metrics         *metrics.HandlerMetrics
}

func (deps Dependencies) validate() error {
	if deps.Logger == nil || deps.TokenResolver == nil || deps.FieldEnumerator == nil ||
		deps.DeliveryHelper == nil || deps.Metrics == nil {
		return ErrMissingDependencies
	}
	return nil
}

// Factory creates handler from its dependencies
type Factory func(deps Dependencies) (webformtags.SubmissionHandler, error)

// Config is a static handler configuration
type Config struct {
	Type    string `yaml:"type"`
	Enabled bool   `yaml:"enabled"`
}

// Registry maps handler type to handler factory
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns registry with all built-in handler types
func NewRegistry() *Registry {
	registry := &Registry{factories: make(map[string]Factory)}
	registry.factories[TealiumHandlerType] = NewTealiumHandler
	return registry
}

// Register adds handler factory for handler type
func (registry *Registry) Register(handlerType string, factory Factory) error {
	if _, ok := registry.factories[handlerType]; ok {
		return fmt.Errorf("failed to register handler [%s], err [%w]", handlerType, ErrHandlerRegistered)
	}
	registry.factories[handlerType] = factory
	return nil
}

// Create builds handler of given type
func (registry *Registry) Create(handlerType string, deps Dependencies) (webformtags.SubmissionHandler, error) {
	factory, ok := registry.factories[handlerType]
	if !ok {
		return nil, webformtags.HandlerConfigError{HandlerType: handlerType, Err: webformtags.ErrUnknownHandlerType}
	}

	handler, err := factory(deps)
	if err != nil {
		return nil, webformtags.HandlerConfigError{HandlerType: handlerType, Err: err}
	}
	return handler, nil
}

// ConfigureHandlers builds enabled handlers from static config, keyed by handler type
func (registry *Registry) ConfigureHandlers(configs []Config, deps Dependencies) (map[string]webformtags.SubmissionHandler, error) {
	handlers := make(map[string]webformtags.SubmissionHandler, len(configs))
	for _, config := range configs {
		if !config.Enabled {
			continue
		}
		if _, ok := handlers[config.Type]; ok {
			return nil, fmt.Errorf("failed to configure handler [%s], err [%w]", config.Type, ErrHandlerRegistered)
		}

		handler, err := registry.Create(config.Type, deps)
		if err != nil {
			return nil, err
		}
		handlers[config.Type] = handler

		deps.Logger.Info().
			String(webformtags.LogFieldNameHandlerType, config.Type).
			Msg("Handler registered")
	}
	return handlers, nil
}
