package schema

import (
	"reflect"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// models is the registry of exported wire models, keyed by type name. The set
// of models is fixed by the API description, so the table is maintained by
// hand rather than discovered at runtime.
var models = map[string]reflect.Type{
	"File":          reflect.TypeOf(File{}),
	"FileList":      reflect.TypeOf(FileList{}),
	"ErrorResponse": reflect.TypeOf(ErrorResponse{}),
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Models returns a copy of the model registry, mapping each exported model
// name to its type definition.
func Models() map[string]reflect.Type {
	result := make(map[string]reflect.Type, len(models))
	for name, t := range models {
		result[name] = t
	}
	return result
}

// ModelNames returns the names of all registered models.
func ModelNames() []string {
	result := make([]string, 0, len(models))
	for name := range models {
		result = append(result, name)
	}
	return result
}

// Lookup returns the type definition for a named model, or nil when the name
// is not registered.
func Lookup(name string) reflect.Type {
	return models[name]
}
