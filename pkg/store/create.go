package store

import (
	"context"
	"errors"
	"io"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	blob "gocloud.dev/blob"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateFile creates or replaces a file in the store
func (s *blobstore) CreateFile(ctx context.Context, req schema.PutFileRequest) (*schema.File, error) {
	sk := s.key(req.Path)
	filePath := cleanPath(req.Path)

	// Stamp the modification time as metadata so it survives the round-trip
	var meta map[string]string
	if !req.ModTime.IsZero() {
		meta = map[string]string{
			schema.AttrLastModified: req.ModTime.Format(time.RFC3339),
		}
	}

	// Write the file
	if w, err := s.bucket.NewWriter(ctx, sk, &blob.WriterOptions{
		ContentType: req.ContentType,
		Metadata:    meta,
	}); err != nil {
		return nil, blobErr(err, s.Name()+":"+filePath)
	} else if _, err := io.Copy(w, req.Body); err != nil {
		err = errors.Join(err, w.Close())
		s.bucket.Delete(ctx, sk)
		return nil, blobErr(err, s.Name()+":"+filePath)
	} else if err := w.Close(); err != nil {
		s.bucket.Delete(ctx, sk)
		return nil, blobErr(err, s.Name()+":"+filePath)
	}

	// Get attributes to return
	attrs, err := s.bucket.Attributes(ctx, sk)
	if err != nil {
		// The write succeeded but we couldn't fetch the final metadata.
		// Return a partial file rather than an error to avoid spurious retries
		// that would duplicate the file in storage.
		return &schema.File{
			Name:        s.Name(),
			Path:        filePath,
			ContentType: req.ContentType,
		}, nil
	}

	// Return success
	file := s.attrsToFile(filePath, attrs)
	file.Name = s.Name()
	return file, nil
}
