package schema

import (
	"io"
	"time"

	// Packages
	"github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// MaxListLimit is the maximum number of files that can be returned in a
// single ListFiles call. Clients must paginate using Offset for larger sets.
const MaxListLimit = 1000

////////////////////////////////////////////////////////////////////////////////
// TYPES

// File is the wire representation of a stored file's metadata.
type File struct {
	Name        string    `json:"name,omitempty"` // store name
	Path        string    `json:"path,omitempty"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"modtime,omitzero"`
	ContentType string    `json:"type,omitempty"`
	ETag        string    `json:"etag,omitempty"`
}

// FileList is a page of file metadata.
type FileList struct {
	Name  string `json:"name,omitempty"`
	Count int    `json:"count"`          // total number of matching files, before offset/limit
	Body  []File `json:"body,omitempty"` // page of files; nil when Limit==0 (count-only)
}

// ErrorResponse is the wire error body returned by the service.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type PutFileRequest struct {
	Path        string
	Body        io.Reader `json:"-"`
	ContentType string    // optional: MIME type of the file
	ModTime     time.Time // optional: modification time (stored as metadata)
}

type GetFileRequest struct {
	Path string
}

type ReadFileRequest struct {
	GetFileRequest
}

type ListFilesRequest struct {
	Path      string `json:"path,omitempty"`      // optional path prefix within the store
	Recursive bool   `json:"recursive,omitempty"` // if true, list all files recursively; if false, list only immediate children
	Offset    int    `json:"offset,omitempty"`    // number of files to skip before returning results
	Limit     int    `json:"limit,omitempty"`     // max files to return; 0 returns the count only, no body
}

type DeleteFileRequest struct {
	Path string
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f File) String() string {
	return types.Stringify(f)
}

func (l FileList) String() string {
	return types.Stringify(l)
}

func (e ErrorResponse) String() string {
	return types.Stringify(e)
}

func (r PutFileRequest) String() string {
	return types.Stringify(r)
}

func (r GetFileRequest) String() string {
	return types.Stringify(r)
}

func (r ListFilesRequest) String() string {
	return types.Stringify(r)
}

func (r DeleteFileRequest) String() string {
	return types.Stringify(r)
}
