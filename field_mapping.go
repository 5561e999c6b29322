package webformtags

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

// FieldMapping is an ordered mapping from a source field key to a destination tag name.
// Keys are unique, setting an existing key keeps its position and replaces the value.
type FieldMapping struct {
	keys   []string
	values map[string]string
}

// NewFieldMapping creates mapping from source/destination pairs
func NewFieldMapping(pairs ...[2]string) FieldMapping {
	mapping := FieldMapping{}
	for _, pair := range pairs {
		mapping.Set(pair[0], pair[1])
	}
	return mapping
}

// Set stores destination tag for source key
func (mapping *FieldMapping) Set(source, destination string) {
	if mapping.values == nil {
		mapping.values = make(map[string]string)
	}
	if _, ok := mapping.values[source]; !ok {
		mapping.keys = append(mapping.keys, source)
	}
	mapping.values[source] = destination
}

// Get returns destination tag for source key
func (mapping FieldMapping) Get(source string) (string, bool) {
	destination, ok := mapping.values[source]
	return destination, ok
}

// Keys returns source keys in insertion order
func (mapping FieldMapping) Keys() []string {
	keys := make([]string, len(mapping.keys))
	copy(keys, mapping.keys)
	return keys
}

// Len returns count of mapped source keys
func (mapping FieldMapping) Len() int {
	return len(mapping.keys)
}

// Destinations returns distinct destination tags in order of first appearance
func (mapping FieldMapping) Destinations() []string {
	seen := make(map[string]struct{}, len(mapping.keys))
	destinations := make([]string, 0, len(mapping.keys))
	for _, key := range mapping.keys {
		destination := mapping.values[key]
		if _, ok := seen[destination]; ok {
			continue
		}
		seen[destination] = struct{}{}
		destinations = append(destinations, destination)
	}
	return destinations
}

// Merge merges mappings the way PHP array_merge does for string keys: result keeps key
// positions of the first mapping it saw them in, later mappings overwrite values and
// append unseen keys.
func Merge(mappings ...FieldMapping) FieldMapping {
	merged := FieldMapping{}
	for _, mapping := range mappings {
		for _, key := range mapping.keys {
			merged.Set(key, mapping.values[key])
		}
	}
	return merged
}

// MarshalJSON encodes mapping as a JSON object keeping key order
func (mapping FieldMapping) MarshalJSON() ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.WriteByte('{')
	for i, key := range mapping.keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		encodedValue, err := json.Marshal(mapping.values[key])
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		buffer.Write(encodedValue)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes JSON object keeping key order
func (mapping *FieldMapping) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		*mapping = FieldMapping{}
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("field mapping must be a JSON object, got %v", token)
	}

	result := FieldMapping{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, _ := keyToken.(string)

		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode destination of '%s': %w", key, err)
		}
		result.Set(key, value)
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}

	*mapping = result
	return nil
}

// MarshalYAML encodes mapping as an ordered YAML map
func (mapping FieldMapping) MarshalYAML() (interface{}, error) {
	slice := make(yaml.MapSlice, 0, len(mapping.keys))
	for _, key := range mapping.keys {
		slice = append(slice, yaml.MapItem{Key: key, Value: mapping.values[key]})
	}
	return slice, nil
}

// UnmarshalYAML decodes ordered YAML map
func (mapping *FieldMapping) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var slice yaml.MapSlice
	if err := unmarshal(&slice); err != nil {
		return err
	}

	result := FieldMapping{}
	for _, item := range slice {
		result.Set(fmt.Sprint(item.Key), fmt.Sprint(item.Value))
	}
	*mapping = result
	return nil
}
