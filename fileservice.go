package fileservice

import (
	"context"
	"io"
	"net/url"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Store is the interface for a file store which backs the service.
type Store interface {
	io.Closer

	// Name returns the name of the store
	Name() string

	// URL returns the store destination URL. The scheme, host (bucket/name)
	// and path identify the storage location. Query parameters carry useful
	// non-credential details: region, endpoint, anonymous.
	URL() *url.URL

	// Create a file in the store
	CreateFile(context.Context, schema.PutFileRequest) (*schema.File, error)

	// Get file metadata from the store
	GetFile(context.Context, schema.GetFileRequest) (*schema.File, error)

	// Read file content from the store. Caller must close the returned reader.
	ReadFile(context.Context, schema.ReadFileRequest) (io.ReadCloser, *schema.File, error)

	// List files in the store
	ListFiles(context.Context, schema.ListFilesRequest) (*schema.FileList, error)

	// Delete a single file from the store
	DeleteFile(context.Context, schema.DeleteFileRequest) (*schema.File, error)
}
