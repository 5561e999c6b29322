// Package mapping builds the list of mapping sources offered to administrators
// and merges submitted mapping tables into a handler configuration.
package mapping

import (
	"strings"

	"github.com/tealiumiq/webformtags"
)

// CompositeKeySeparator joins composite element key and sub-element key into one source key.
// A field name containing the separator itself is ambiguous with a composite key.
const CompositeKeySeparator = "__"

// CompositeLabelSeparator joins composite element label and sub-element label.
const CompositeLabelSeparator = ":"

// CompositeKey builds source key of composite sub-element
func CompositeKey(parent, child string) string {
	return parent + CompositeKeySeparator + child
}

// SplitCompositeKey splits source key into composite element and sub-element keys.
// The first two parts are used and anything after a second separator is ignored,
// so "a__b__c" gives ("a", "b"). Both parts must be non-empty.
func SplitCompositeKey(key string) (parent, child string, ok bool) {
	parts := strings.SplitN(key, CompositeKeySeparator, 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// DefaultSourceOptions returns options for fields present on all webforms, labeled by title or key
func DefaultSourceOptions(fields []webformtags.FieldDefinition) []webformtags.SourceOption {
	options := make([]webformtags.SourceOption, 0, len(fields))
	for _, field := range fields {
		label := field.Title
		if label == "" {
			label = field.Key
		}
		options = append(options, webformtags.SourceOption{Key: field.Key, Label: label})
	}
	return options
}

// ElementSourceOptions returns options for webform elements. Composite elements are expanded into
// one option per input sub-element keyed "<parent>__<child>" and labeled "<parent label>:<child label>".
func ElementSourceOptions(elements []webformtags.Element, isInput func(webformtags.Element) bool) []webformtags.SourceOption {
	options := make([]webformtags.SourceOption, 0, len(elements))
	for _, element := range elements {
		if !element.Composite {
			options = append(options, webformtags.SourceOption{Key: element.Key, Label: element.Label()})
			continue
		}

		for _, compositeElement := range element.CompositeElements {
			if !isInput(compositeElement) {
				continue
			}
			options = append(options, webformtags.SourceOption{
				Key:   CompositeKey(element.Key, compositeElement.Key),
				Label: element.Label() + CompositeLabelSeparator + compositeElement.Label(),
			})
		}
	}
	return options
}

// MergeMappings merges default mapping and user mapping, user mapping wins on collision.
// Rows without destination tag are not stored.
func MergeMappings(defaultMapping, userMapping webformtags.FieldMapping) webformtags.FieldMapping {
	merged := webformtags.Merge(withDestinations(defaultMapping), withDestinations(userMapping))
	return merged
}

func withDestinations(mapping webformtags.FieldMapping) webformtags.FieldMapping {
	result := webformtags.FieldMapping{}
	for _, source := range mapping.Keys() {
		destination, _ := mapping.Get(source)
		if strings.TrimSpace(destination) == "" {
			continue
		}
		result.Set(source, destination)
	}
	return result
}
