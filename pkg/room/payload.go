package room

import (
	"shithead-server/pkg/shed"
)

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`

	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetIndexSlice returns the index of each element of an [{index}, ...] value
func (a AdditionalData) GetIndexSlice(key string) ([]int, bool) {
	slice, ok := a[key].([]interface{})
	if !ok {
		return nil, false
	}

	indices := make([]int, len(slice))
	for i, val := range slice {
		obj, ok := val.(map[string]interface{})
		if !ok {
			return nil, false
		}

		index, ok := obj["index"].(float64)
		if !ok {
			return nil, false
		}

		indices[i] = int(index)
	}

	return indices, true
}

// GetCardSelections returns card selections from a [{type, index}, ...] value
func (a AdditionalData) GetCardSelections(key string) ([]shed.CardSelection, bool) {
	slice, ok := a[key].([]interface{})
	if !ok {
		return nil, false
	}

	selections := make([]shed.CardSelection, len(slice))
	for i, val := range slice {
		obj, ok := val.(map[string]interface{})
		if !ok {
			return nil, false
		}

		source, ok := obj["type"].(string)
		if !ok {
			return nil, false
		}

		index, ok := obj["index"].(float64)
		if !ok {
			return nil, false
		}

		selections[i] = shed.CardSelection{
			Source: shed.CardSource(source),
			Index:  int(index),
		}
	}

	return selections, true
}
