// Package forms exposes webform definitions and their mappable fields.
package forms

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/tealiumiq/webformtags"
)

// Element types that never hold a submission value
var nonInputElementTypes = map[string]struct{}{
	"container":           {},
	"details":             {},
	"fieldset":            {},
	"flexbox":             {},
	"markup":              {},
	"processed_text":      {},
	"webform_markup":      {},
	"webform_message":     {},
	"webform_actions":     {},
	"webform_section":     {},
	"webform_wizard_page": {},
	"label":               {},
	"item":                {},
}

// Enumerator gives access to webform definitions and enumerates their fields.
// Webform definitions are cached for cacheTTL.
type Enumerator struct {
	database webformtags.Database
	cache    *cache.Cache
}

// NewEnumerator creates enumerator over database with webform cache
func NewEnumerator(database webformtags.Database, cacheTTL time.Duration) *Enumerator {
	return &Enumerator{
		database: database,
		cache:    cache.New(cacheTTL, 2*cacheTTL),
	}
}

// GetWebform returns webform definition, cached
func (enumerator *Enumerator) GetWebform(webformID string) (*webformtags.Webform, error) {
	if cached, ok := enumerator.cache.Get(webformID); ok {
		return cached.(*webformtags.Webform), nil
	}

	webform, err := enumerator.database.GetWebform(webformID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webform %s: %w", webformID, err)
	}

	enumerator.cache.Set(webformID, &webform, cache.DefaultExpiration)
	return &webform, nil
}

// Invalidate drops cached webform definition
func (enumerator *Enumerator) Invalidate(webformID string) {
	enumerator.cache.Delete(webformID)
}

// DefaultFields returns fields present on all submissions of webform
func (enumerator *Enumerator) DefaultFields(_ *webformtags.Webform) []webformtags.FieldDefinition {
	return DefaultSubmissionFields()
}

// Elements flattens webform element tree and returns elements holding a value.
// Composite elements are returned as is, their sub-elements are not flattened.
func (enumerator *Enumerator) Elements(webform *webformtags.Webform) []webformtags.Element {
	elements := make([]webformtags.Element, 0, len(webform.Elements))
	return enumerator.flatten(webform.Elements, elements)
}

func (enumerator *Enumerator) flatten(tree []webformtags.Element, result []webformtags.Element) []webformtags.Element {
	for _, element := range tree {
		if element.Composite || enumerator.IsInput(element) {
			result = append(result, element)
		}
		if !element.Composite && len(element.Children) > 0 {
			result = enumerator.flatten(element.Children, result)
		}
	}
	return result
}

// IsInput reports whether element accepts a value
func (enumerator *Enumerator) IsInput(element webformtags.Element) bool {
	if _, ok := nonInputElementTypes[element.Type]; ok {
		return false
	}
	return element.Input
}
