// Package resolver flattens submission records and resolves mapped values out of them.
package resolver

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/mapping"
)

// Flatten lifts element data nested under "data" to the top level of the record.
// Element values take priority over submission metadata with the same key. Record is not modified.
func Flatten(record map[string]interface{}) map[string]interface{} {
	elementData, _ := record[webformtags.SubmissionDataKey].(map[string]interface{})

	flattened := make(map[string]interface{}, len(record)+len(elementData))
	for key, value := range record {
		if key == webformtags.SubmissionDataKey {
			continue
		}
		flattened[key] = value
	}
	for key, value := range elementData {
		flattened[key] = value
	}
	return flattened
}

// Value returns the value mapped by source key. When direct lookup is empty and key is
// composite, the value is looked up in the nested composite element value. Missing values are empty string.
func Value(data map[string]interface{}, key string) string {
	value := data[key]
	if isEmpty(value) {
		if parent, child, ok := mapping.SplitCompositeKey(key); ok {
			if nested, ok := data[parent].(map[string]interface{}); ok {
				if compositeValue, ok := nested[child]; ok && compositeValue != nil {
					value = compositeValue
				}
			}
		}
	}
	return Stringify(value)
}

// PropertySet maps data to destination tags. Every destination tag of the mapping is present
// in the result, source keys later in the mapping win when they share a destination.
func PropertySet(data map[string]interface{}, fieldMapping webformtags.FieldMapping) webformtags.PropertySet {
	properties := make(webformtags.PropertySet, fieldMapping.Len())
	for _, source := range fieldMapping.Keys() {
		destination, _ := fieldMapping.Get(source)
		properties[destination] = Value(data, source)
	}
	return properties
}

// isEmpty follows loose emptiness of form values: nil, false, zero numbers, "", "0" and empty collections
func isEmpty(value interface{}) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == "" || typed == "0"
	case bool:
		return !typed
	case json.Number:
		return typed == "" || typed == "0"
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflected.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflected.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return reflected.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return reflected.Len() == 0
	}
	return false
}

// Stringify converts submission value to tag value: scalars are formatted, lists are comma-joined
// and nested objects are JSON-encoded
func Stringify(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		if typed {
			return "1"
		}
		return "0"
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case json.Number:
		return typed.String()
	case []interface{}:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(typed, ",")
	case map[string]interface{}:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
	return fmt.Sprint(value)
}
