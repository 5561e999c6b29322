package dto

import (
	"net/http"

	"github.com/tealiumiq/webformtags"
)

// ConfigForm is the handler configuration form
type ConfigForm struct {
	webformtags.ConfigForm
}

// Render is a function that implements chi Renderer interface for ConfigForm
func (*ConfigForm) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// SubmitConfigForm is the submitted handler configuration form
type SubmitConfigForm struct {
	DefaultMapping webformtags.FieldMapping `json:"default_mapping"`
	UserMapping    webformtags.FieldMapping `json:"user_mapping"`
}

// Bind is a method that implements Binder interface from chi
func (*SubmitConfigForm) Bind(request *http.Request) error {
	return nil
}

// HandlerConfig is the stored handler configuration
type HandlerConfig struct {
	webformtags.HandlerConfig
}

// Render is a function that implements chi Renderer interface for HandlerConfig
func (*HandlerConfig) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
