// Package csvkit implements the CSV/JSON mapping tools.
package csvkit

import (
	"encoding/json"
	"fmt"
	"os"

	"randomtools/internal/common"
)

// MapEntry is one key/value pair of a JSON map in document order.
type MapEntry struct {
	Key   string
	Value string
}

// ReadOrderedMap reads a flat JSON object preserving its key order,
// which encoding/json's map decoding would lose. Null values become
// empty strings, non-string scalars their JSON rendering.
func ReadOrderedMap(path string) ([]MapEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeStorage, "map_read", "failed to open JSON map "+path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)

	token, err := dec.Token()
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeValidation, "map_parse", "failed to parse JSON map "+path)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, common.NewValidationError("map_parse", "JSON map must be an object: "+path)
	}

	var entries []MapEntry
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, common.WrapError(err, common.ErrorTypeValidation, "map_parse", "failed to parse JSON map "+path)
		}
		key := keyToken.(string)

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, common.WrapError(err, common.ErrorTypeValidation, "map_parse", "failed to parse JSON map "+path)
		}
		entries = append(entries, MapEntry{Key: key, Value: stringValue(value)})
	}
	return entries, nil
}

// ReadMap reads a flat JSON object as a plain map.
func ReadMap(path string) (map[string]string, error) {
	entries, err := ReadOrderedMap(path)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(entries))
	for _, entry := range entries {
		m[entry.Key] = entry.Value
	}
	return m, nil
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
