// File: codec.go
// Title: Optional Serialization
// Description: JSON and YAML codecs for Optional. Empty encodes as null and
//              null decodes as Empty.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package optional

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	etkerror "github.com/msto63/etkit/core/error"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Empty[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return etkerror.Wrap(err, "failed to decode optional value").
			WithCode(etkerror.CodeInvalidFormat).
			WithOperation("optional.UnmarshalJSON")
	}
	*o = OfNullable(value)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = Empty[T]()
		return nil
	}

	var value T
	if err := node.Decode(&value); err != nil {
		return etkerror.Wrap(err, "failed to decode optional value").
			WithCode(etkerror.CodeInvalidFormat).
			WithOperation("optional.UnmarshalYAML").
			WithDetail("line", node.Line)
	}
	*o = OfNullable(value)
	return nil
}
