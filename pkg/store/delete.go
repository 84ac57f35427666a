package store

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DeleteFile deletes a file and returns its last-known metadata
func (s *blobstore) DeleteFile(ctx context.Context, req schema.DeleteFileRequest) (*schema.File, error) {
	sk := s.key(req.Path)
	filePath := cleanPath(req.Path)

	// Attributes may not exist, continue with delete
	attrs, err := s.bucket.Attributes(ctx, sk)
	if err != nil {
		attrs = nil
	}

	// Perform delete
	if err := s.bucket.Delete(ctx, sk); err != nil {
		return nil, blobErr(err, s.Name()+":"+filePath)
	}

	file := &schema.File{Name: s.Name(), Path: filePath}
	if attrs != nil {
		file = s.attrsToFile(filePath, attrs)
		file.Name = s.Name()
	}
	return file, nil
}
