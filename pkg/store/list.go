package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	blob "gocloud.dev/blob"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListFiles lists files in the store.
// If a single file exists at the path, it returns just that file.
// Otherwise, it treats the path as a prefix and lists all matching files.
// Use Recursive=true to list nested files, or Recursive=false for immediate children only.
func (s *blobstore) ListFiles(ctx context.Context, req schema.ListFilesRequest) (*schema.FileList, error) {
	sk := s.key(req.Path)

	// Response
	response := schema.FileList{
		Name: s.Name(),
	}

	// Check if this path refers to a single real file (not a phantom directory)
	if sk != "" {
		if attrs, err := s.bucket.Attributes(ctx, sk); err == nil {
			file := s.attrsToFile(cleanPath(req.Path), attrs)
			response.Body = append(response.Body, *file)
			return &response, nil
		}
	}

	// File doesn't exist (or key is empty for root), treat as prefix
	prefix := strings.TrimSuffix(sk, "/")
	if prefix != "" {
		prefix = prefix + "/"
	}

	// List files with prefix
	var delim string
	if !req.Recursive {
		delim = "/"
	}
	iter := s.bucket.List(&blob.ListOptions{
		Prefix:    prefix,
		Delimiter: delim,
	})

	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, blobErr(err, s.Name()+":"+req.Path)
		}

		// Skip the prefix itself
		if obj.Key == prefix {
			continue
		}

		file := schema.File{
			Path:    cleanPath(obj.Key),
			Size:    obj.Size,
			ModTime: obj.ModTime,
		}
		if len(obj.MD5) > 0 {
			file.ETag = fmt.Sprintf("%x", obj.MD5)
		}
		response.Body = append(response.Body, file)
	}

	return &response, nil
}
