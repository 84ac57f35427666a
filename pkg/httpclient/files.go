package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
	codec "github.com/mutablelogic/go-fileservice/pkg/codec"
	config "github.com/mutablelogic/go-fileservice/pkg/config"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Files is the sub-resource client for file operations. It holds the
// transport, configuration, serializer and deserializer it was constructed
// with by the facade.
type Files struct {
	client      *client.Client
	config      *config.Config
	serialize   *codec.Serializer
	deserialize *codec.Deserializer
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CANONICAL STREAMS

// GetFile downloads the canonical non-empty stream, calling fn with each
// chunk of data as it arrives from the server. fn may be nil when only
// metadata is needed. The slice passed to fn is reused across calls; copy it
// if retained. Returns the file metadata; the returned *File is always
// non-nil on success.
func (f *Files) GetFile(ctx context.Context, fn func([]byte) error) (*schema.File, error) {
	return f.stream(ctx, fn, schema.StreamKindNonEmpty)
}

// GetFileLarge downloads the canonical very large stream (~3 GB by default).
// The request timeout is disabled since the transfer can legitimately run for
// minutes; cancel via the context instead.
func (f *Files) GetFileLarge(ctx context.Context, fn func([]byte) error) (*schema.File, error) {
	return f.stream(ctx, fn, schema.StreamKindVeryLarge, client.OptNoTimeout())
}

// GetEmptyFile downloads the canonical empty stream. fn is never called since
// the stream has no content.
func (f *Files) GetEmptyFile(ctx context.Context, fn func([]byte) error) (*schema.File, error) {
	return f.stream(ctx, fn, schema.StreamKindEmpty)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FILE OPERATIONS

// Download retrieves the content of a stored file using GET, calling fn with
// each chunk of data. fn may be nil when only metadata is needed.
func (f *Files) Download(ctx context.Context, path string, fn func([]byte) error) (*schema.File, error) {
	u := &fileStreamUnmarshaler{deserialize: f.deserialize, fn: fn}
	if err := f.client.DoWithContext(ctx,
		client.NewRequest(),
		u,
		client.OptPath("files", path),
	); err != nil {
		return nil, err
	}
	if u.file == nil {
		return nil, fmt.Errorf("Download: missing %s header in response", schema.FileMetaHeader)
	}
	return u.file, nil
}

// Put uploads content using PUT, forwarding ContentType and ModTime as
// request headers.
func (f *Files) Put(ctx context.Context, req schema.PutFileRequest) (*schema.File, error) {
	payload := newPutPayload(req)

	opts := []client.RequestOpt{client.OptPath("files", req.Path)}
	if !req.ModTime.IsZero() {
		opts = append(opts, client.OptReqHeader(types.ContentModifiedHeader, req.ModTime.UTC().Format(http.TimeFormat)))
	}

	u := &fileUnmarshaler{deserialize: f.deserialize}
	if err := f.client.DoWithContext(ctx, payload, u, opts...); err != nil {
		return nil, err
	}
	return u.file, nil
}

// List returns a page of file metadata matching the request.
func (f *Files) List(ctx context.Context, req schema.ListFilesRequest) (*schema.FileList, error) {
	query := make(url.Values)
	if req.Path != "" {
		query.Set("path", req.Path)
	}
	if req.Recursive {
		query.Set("recursive", "true")
	}
	if req.Offset > 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	u := &fileListUnmarshaler{deserialize: f.deserialize}
	if err := f.client.DoWithContext(ctx,
		client.NewRequest(),
		u,
		client.OptPath("files"),
		client.OptQuery(query),
	); err != nil {
		return nil, err
	}
	return u.list, nil
}

// Stat retrieves metadata only for a file using HEAD (no body download).
func (f *Files) Stat(ctx context.Context, path string) (*schema.File, error) {
	u := &fileHeadUnmarshaler{deserialize: f.deserialize}
	if err := f.client.DoWithContext(ctx,
		client.NewRequestEx(http.MethodHead, ""),
		u,
		client.OptPath("files", path),
	); err != nil {
		return nil, err
	}
	if u.file == nil {
		return nil, fmt.Errorf("Stat: missing %s header in response", schema.FileMetaHeader)
	}
	return u.file, nil
}

// Delete deletes a single file and returns its last-known metadata.
func (f *Files) Delete(ctx context.Context, path string) (*schema.File, error) {
	u := &fileUnmarshaler{deserialize: f.deserialize}
	if err := f.client.DoWithContext(ctx,
		client.NewRequestEx(http.MethodDelete, types.ContentTypeJSON),
		u,
		client.OptPath("files", path),
	); err != nil {
		return nil, err
	}
	return u.file, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f *Files) stream(ctx context.Context, fn func([]byte) error, kind string, opts ...client.RequestOpt) (*schema.File, error) {
	u := &fileStreamUnmarshaler{deserialize: f.deserialize, fn: fn}
	opts = append(opts, client.OptPath("files", "stream", kind))
	if err := f.client.DoWithContext(ctx, client.NewRequest(), u, opts...); err != nil {
		return nil, err
	}
	if u.file == nil {
		return nil, fmt.Errorf("stream %q: missing %s header in response", kind, schema.FileMetaHeader)
	}
	return u.file, nil
}
