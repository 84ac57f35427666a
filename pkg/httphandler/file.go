package httphandler

import (
	"io"
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

// Path: /files/{path...}
// GET downloads a file, HEAD returns metadata, PUT creates or replaces,
// DELETE removes.
func FileHandler(mgr *manager.Manager) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/files/{path...}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = fileGet(w, r, mgr)
			case http.MethodHead:
				_ = fileHead(w, r, mgr)
			case http.MethodPut:
				_ = filePut(w, r, mgr)
			case http.MethodDelete:
				_ = fileDelete(w, r, mgr)
			default:
				_ = serveErr(w, httpresponse.Err(http.StatusMethodNotAllowed).With(r.Method))
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Download a file",
			},
			Head: &openapi.Operation{
				Description: "Get file metadata without body",
			},
			Put: &openapi.Operation{
				Description: "Create or replace a file",
			},
			Delete: &openapi.Operation{
				Description: "Delete a file",
			},
		})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func filePut(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	req := schema.PutFileRequest{
		Path: types.NormalisePath(r.PathValue("path")),
		Body: r.Body,
	}

	// Forward Content-Type if provided
	if ct := r.Header.Get(types.ContentTypeHeader); ct != "" {
		req.ContentType = ct
	}

	// Forward Last-Modified if provided
	if lm := r.Header.Get(types.ContentModifiedHeader); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			req.ModTime = t
		}
	}

	// Create the file in the manager
	file, err := mgr.CreateFile(r.Context(), mgr.DefaultStore(), req)
	if err != nil {
		return serveErr(w, err)
	}

	return httpresponse.JSON(w, http.StatusCreated, httprequest.Indent(r), file)
}

func fileDelete(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	file, err := mgr.DeleteFile(r.Context(), mgr.DefaultStore(), schema.DeleteFileRequest{
		Path: types.NormalisePath(r.PathValue("path")),
	})
	if err != nil {
		return serveErr(w, err)
	}

	return httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), file)
}

func fileHead(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	file, err := mgr.GetFile(r.Context(), mgr.DefaultStore(), schema.GetFileRequest{
		Path: types.NormalisePath(r.PathValue("path")),
	})
	if err != nil {
		return serveErr(w, err)
	}

	if err := writeFileHeaders(w, file); err != nil {
		return serveErr(w, err)
	}
	w.WriteHeader(http.StatusOK)
	return nil
}

func fileGet(w http.ResponseWriter, r *http.Request, mgr *manager.Manager) error {
	reader, file, err := mgr.ReadFile(r.Context(), mgr.DefaultStore(), schema.ReadFileRequest{
		GetFileRequest: schema.GetFileRequest{Path: types.NormalisePath(r.PathValue("path"))},
	})
	if err != nil {
		return serveErr(w, err)
	}
	defer reader.Close()

	if err := writeFileHeaders(w, file); err != nil {
		return serveErr(w, err)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		return err
	}

	return nil
}
