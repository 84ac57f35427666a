package manager

import (
	"context"
	"io"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// patternReader produces a repeating byte pattern of a fixed total size, so
// the "verylarge" stream can be served without storing a multi-gigabyte file.
type patternReader struct {
	remaining int64
	next      byte
}

var _ io.ReadCloser = (*patternReader)(nil)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ReadLargeStream returns a synthetic reader of LargeStreamSize bytes together
// with its metadata. Caller must close the returned reader.
func (manager *Manager) ReadLargeStream(ctx context.Context) (io.ReadCloser, *schema.File, error) {
	var result error
	_, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("ReadLargeStream"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "ReadLargeStream")
	manager.countBytes(ctx, manager.largeSize)

	file := &schema.File{
		Path:        "/stream/" + schema.StreamKindVeryLarge,
		Size:        manager.largeSize,
		ContentType: "application/octet-stream",
	}
	return &patternReader{remaining: manager.largeSize}, file, nil
}

////////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (r *patternReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	n := len(p)
	if int64(n) > r.remaining {
		n = int(r.remaining)
	}
	for i := 0; i < n; i++ {
		p[i] = r.next
		r.next++
	}
	r.remaining -= int64(n)
	return n, nil
}

func (r *patternReader) Close() error {
	r.remaining = 0
	return nil
}
