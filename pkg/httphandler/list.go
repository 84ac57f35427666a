package httphandler

import (
	"net/http"

	// Packages
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /files/{$}
// GET returns a page of file metadata; query parameters path, recursive,
// offset and limit control the listing.
func FileListHandler(mgr *manager.Manager) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/files/{$}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = fileList(w, r, mgr)
			default:
				_ = serveErr(w, httpresponse.Err(http.StatusMethodNotAllowed).With(r.Method))
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "List files",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fileList(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	var request schema.ListFilesRequest

	// Read query parameters into the request struct
	if err := httprequest.Query(r.URL.Query(), &request); err != nil {
		return serveErr(w, httpresponse.ErrBadRequest.With(err.Error()))
	}

	response, err := mgr.ListFiles(r.Context(), mgr.DefaultStore(), request)
	if err != nil {
		return serveErr(w, err)
	}

	return httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), response)
}
