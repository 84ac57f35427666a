// Package codec converts between in-memory wire models and their JSON
// representation. The deserializer is parameterized by a model registry
// mapping model names to type definitions, so callers decode by name
// rather than by a concrete destination type.
package codec

import (
	"encoding/json"
	"io"
	"reflect"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Serializer encodes wire models as JSON.
type Serializer struct{}

// Deserializer decodes JSON into wire models resolved by name from a
// model registry.
type Deserializer struct {
	models map[string]reflect.Type
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSerializer creates a serializer with no special options.
func NewSerializer() *Serializer {
	return new(Serializer)
}

// NewDeserializer creates a deserializer for the given model registry.
func NewDeserializer(models map[string]reflect.Type) *Deserializer {
	return &Deserializer{models: models}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Marshal encodes a value as JSON.
func (s *Serializer) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode reads JSON from r into a fresh instance of the named model and
// returns a pointer to it. An unregistered name is an error.
func (d *Deserializer) Decode(name string, r io.Reader) (any, error) {
	t, exists := d.models[name]
	if !exists {
		return nil, httpresponse.ErrBadRequest.Withf("unknown model %q", name)
	}
	v := reflect.New(t).Interface()
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeBytes decodes a JSON-encoded byte slice into a fresh instance of the
// named model.
func (d *Deserializer) DecodeBytes(name string, data []byte) (any, error) {
	t, exists := d.models[name]
	if !exists {
		return nil, httpresponse.ErrBadRequest.Withf("unknown model %q", name)
	}
	v := reflect.New(t).Interface()
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}
