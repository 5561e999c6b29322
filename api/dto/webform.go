package dto

import (
	"fmt"
	"net/http"

	"github.com/tealiumiq/webformtags"
)

// Webform is a webform definition pushed by the form framework
type Webform struct {
	ID       string                       `json:"id" validate:"required"`
	Title    string                       `json:"title"`
	Settings webformtags.WebformSettings  `json:"settings"`
	Elements []webformtags.Element        `json:"elements" validate:"dive"`
	Handlers []webformtags.WebformHandler `json:"handlers" validate:"dive"`
}

// Bind is a method that implements Binder interface from chi and checks that validity of data in request
func (webform *Webform) Bind(request *http.Request) error {
	if err := validateStruct(webform); err != nil {
		return err
	}

	handlerIDs := make(map[string]struct{}, len(webform.Handlers))
	for _, handler := range webform.Handlers {
		if _, ok := handlerIDs[handler.ID]; ok {
			return fmt.Errorf("handler id '%s' is used twice", handler.ID)
		}
		handlerIDs[handler.ID] = struct{}{}
	}
	return nil
}

// Render is a function that implements chi Renderer interface for Webform
func (*Webform) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// NewWebform converts webform definition to transfer object
func NewWebform(webform webformtags.Webform) *Webform {
	return &Webform{
		ID:       webform.ID,
		Title:    webform.Title,
		Settings: webform.Settings,
		Elements: webform.Elements,
		Handlers: webform.Handlers,
	}
}

// ToWebform converts transfer object to webform definition
func (webform *Webform) ToWebform() webformtags.Webform {
	return webformtags.Webform{
		ID:       webform.ID,
		Title:    webform.Title,
		Settings: webform.Settings,
		Elements: webform.Elements,
		Handlers: webform.Handlers,
	}
}

// FormAttachments is the result of altering rendered form by webform handlers
type FormAttachments struct {
	webformtags.FormAttachments
}

// Render is a function that implements chi Renderer interface for FormAttachments
func (*FormAttachments) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
