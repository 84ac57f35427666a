package store

import (
	"context"
	"io"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetFile gets file metadata
func (s *blobstore) GetFile(ctx context.Context, req schema.GetFileRequest) (*schema.File, error) {
	sk := s.key(req.Path)
	filePath := cleanPath(req.Path)

	attrs, err := s.bucket.Attributes(ctx, sk)
	if err != nil {
		return nil, blobErr(err, s.Name()+":"+filePath)
	}

	file := s.attrsToFile(filePath, attrs)
	file.Name = s.Name()
	return file, nil
}

// ReadFile reads file content. Caller must close the returned reader.
func (s *blobstore) ReadFile(ctx context.Context, req schema.ReadFileRequest) (io.ReadCloser, *schema.File, error) {
	sk := s.key(req.Path)
	filePath := cleanPath(req.Path)

	attrs, err := s.bucket.Attributes(ctx, sk)
	if err != nil {
		return nil, nil, blobErr(err, s.Name()+":"+filePath)
	}
	r, err := s.bucket.NewReader(ctx, sk, nil)
	if err != nil {
		return nil, nil, blobErr(err, s.Name()+":"+filePath)
	}

	file := s.attrsToFile(filePath, attrs)
	file.Name = s.Name()
	return r, file, nil
}
