package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	// Packages
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router is the interface required to register HTTP handlers.
type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers all file service HTTP handlers on the provided router.
func RegisterHandlers(mgr *manager.Manager, router Router) error {
	var result error
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.RegisterFunc(path, handler, true, spec))
	}
	register(FileStreamHandler(mgr))
	register(FileListHandler(mgr))
	register(FileHandler(mgr))
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeFileHeaders sets the file metadata header and standard entity headers.
func writeFileHeaders(w http.ResponseWriter, file *schema.File) error {
	meta, err := json.Marshal(file)
	if err != nil {
		return err
	}
	w.Header().Set(schema.FileMetaHeader, string(meta))
	if file.ContentType != "" {
		w.Header().Set(types.ContentTypeHeader, file.ContentType)
	} else {
		w.Header().Set(types.ContentTypeHeader, types.ContentTypeBinary)
	}
	w.Header().Set(types.ContentLengthHeader, strconv.FormatInt(file.Size, 10))
	if !file.ModTime.IsZero() {
		w.Header().Set(types.ContentModifiedHeader, file.ModTime.UTC().Format(http.TimeFormat))
	}
	return nil
}

// serveError writes the service error model as a JSON body.
func serveError(w http.ResponseWriter, status int, message string) error {
	w.Header().Set(types.ContentTypeHeader, types.ContentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(schema.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// serveErr writes err as the service error model, using the HTTP status
// carried by the error when there is one.
func serveErr(w http.ResponseWriter, err error) error {
	status := http.StatusInternalServerError
	var code httpresponse.Err
	if errors.As(err, &code) {
		status = int(code)
	}
	return serveError(w, status, err.Error())
}
