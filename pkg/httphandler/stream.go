package httphandler

import (
	"fmt"
	"io"
	"net/http"

	// Packages
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /files/stream/{kind}
// GET streams one of the canonical test payloads: "nonempty" (a PNG sample),
// "verylarge" (a synthetic multi-gigabyte stream) or "empty" (zero bytes).
func FileStreamHandler(mgr *manager.Manager) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/files/stream/{kind}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = streamGet(w, r, mgr)
			default:
				_ = serveErr(w, httpresponse.Err(http.StatusMethodNotAllowed).With(r.Method))
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Download a canonical test stream (nonempty, verylarge or empty)",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func streamGet(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	var reader io.ReadCloser
	var file *schema.File
	var err error

	switch kind := r.PathValue("kind"); kind {
	case schema.StreamKindNonEmpty:
		reader, file, err = readStored(r, mgr, schema.StreamPathNonEmpty)
	case schema.StreamKindEmpty:
		reader, file, err = readStored(r, mgr, schema.StreamPathEmpty)
	case schema.StreamKindVeryLarge:
		reader, file, err = mgr.ReadLargeStream(r.Context())
	default:
		return serveError(w, http.StatusNotFound, fmt.Sprintf("unknown stream kind %q", kind))
	}
	if err != nil {
		return serveErr(w, err)
	}
	defer reader.Close()

	if err := writeFileHeaders(w, file); err != nil {
		return serveErr(w, err)
	}
	w.WriteHeader(http.StatusOK)

	_, err = io.Copy(w, reader)
	return err
}

func readStored(r *http.Request, mgr *manager.Manager, path string) (io.ReadCloser, *schema.File, error) {
	return mgr.ReadFile(r.Context(), mgr.DefaultStore(), schema.ReadFileRequest{
		GetFileRequest: schema.GetFileRequest{Path: path},
	})
}
