package manager

import (
	"context"
	"errors"
	"io"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	fileservice "github.com/mutablelogic/go-fileservice"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	attribute "go.opentelemetry.io/otel/attribute"
	metric "go.opentelemetry.io/otel/metric"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Manager struct {
	opts
	operations metric.Int64Counter
	bytesRead  metric.Int64Counter
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// DefaultLargeStreamSize is the size of the synthetic "verylarge" stream,
// matching the canonical ~3 GB test payload.
const DefaultLargeStreamSize = int64(3000) * 1024 * 1024

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new file service manager.
func New(ctx context.Context, opt ...Opt) (*Manager, error) {
	self := new(Manager)

	// Apply options
	if opts, err := applyOpts(opt); err != nil {
		return nil, err
	} else {
		self.opts = opts
	}

	// Create counters when a meter is configured
	if self.meter != nil {
		var err error
		if self.operations, err = self.meter.Int64Counter(schema.SchemaName + ".operations"); err != nil {
			return nil, err
		}
		if self.bytesRead, err = self.meter.Int64Counter(schema.SchemaName + ".bytes_read"); err != nil {
			return nil, err
		}
	}

	// Return success
	return self, nil
}

// Close all stores
func (manager *Manager) Close() error {
	var result error
	for _, s := range manager.stores {
		if err := s.Close(); err != nil {
			result = errors.Join(result, err)
		}
	}

	// Return any errors
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stores returns the list of store names
func (manager *Manager) Stores() []string {
	result := make([]string, 0, len(manager.stores))
	for _, s := range manager.stores {
		result = append(result, s.Name())
	}
	return result
}

// Store returns the named store, or nil when it does not exist
func (manager *Manager) Store(name string) fileservice.Store {
	for _, s := range manager.stores {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// DefaultStore returns the name of the first registered store, or empty
// string when no store is registered
func (manager *Manager) DefaultStore() string {
	if len(manager.stores) == 0 {
		return ""
	}
	return manager.stores[0].Name()
}

// LargeStreamSize returns the configured size of the synthetic "verylarge" stream
func (manager *Manager) LargeStreamSize() int64 {
	return manager.largeSize
}

func (manager *Manager) CreateFile(ctx context.Context, name string, req schema.PutFileRequest) (*schema.File, error) {
	// Find the right store
	s, err := manager.storeForName(name)
	if err != nil {
		return nil, err
	}

	// OTEL span
	var result error
	child, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("CreateFile"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "CreateFile")

	// Run the store
	return s.CreateFile(child, req)
}

func (manager *Manager) GetFile(ctx context.Context, name string, req schema.GetFileRequest) (*schema.File, error) {
	// Find the right store
	s, err := manager.storeForName(name)
	if err != nil {
		return nil, err
	}

	// OTEL span
	var result error
	child, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("GetFile"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "GetFile")

	// Run the store
	return s.GetFile(child, req)
}

func (manager *Manager) ReadFile(ctx context.Context, name string, req schema.ReadFileRequest) (io.ReadCloser, *schema.File, error) {
	// Find the right store
	s, err := manager.storeForName(name)
	if err != nil {
		return nil, nil, err
	}

	// OTEL span
	var result error
	child, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("ReadFile"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "ReadFile")

	// Run the store
	r, file, err := s.ReadFile(child, req)
	if err != nil {
		result = err
		return nil, nil, err
	}
	manager.countBytes(ctx, file.Size)
	return r, file, nil
}

func (manager *Manager) ListFiles(ctx context.Context, name string, req schema.ListFilesRequest) (*schema.FileList, error) {
	// Find the right store
	s, err := manager.storeForName(name)
	if err != nil {
		return nil, err
	}

	// OTEL span
	var result error
	child, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("ListFiles"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "ListFiles")

	// Run the store (always returns the full set; pagination is applied here)
	resp, err := s.ListFiles(child, req)
	if err != nil {
		result = err
		return nil, err
	}

	// Record total count before slicing
	resp.Count = len(resp.Body)

	// Negative pagination values are treated as zero
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	limit := req.Limit
	if limit < 0 {
		limit = 0
	}

	// Limit==0 means count-only: return the total with no body
	if limit == 0 {
		resp.Body = nil
		return resp, nil
	}

	// Apply offset
	if offset > resp.Count {
		offset = resp.Count
	}
	resp.Body = resp.Body[offset:]

	// Clamp limit to MaxListLimit and apply
	if limit > schema.MaxListLimit {
		limit = schema.MaxListLimit
	}
	if limit < len(resp.Body) {
		resp.Body = resp.Body[:limit]
	}

	return resp, nil
}

func (manager *Manager) DeleteFile(ctx context.Context, name string, req schema.DeleteFileRequest) (*schema.File, error) {
	// Find the right store
	s, err := manager.storeForName(name)
	if err != nil {
		return nil, err
	}

	// OTEL span
	var result error
	child, endFunc := otel.StartSpan(manager.tracer, ctx, spanManagerName("DeleteFile"))
	defer func() { endFunc(result) }()
	manager.count(ctx, "DeleteFile")

	// Run the store
	return s.DeleteFile(child, req)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (manager *Manager) storeForName(name string) (fileservice.Store, error) {
	for _, s := range manager.stores {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, httpresponse.ErrNotFound.Withf("no store found for name %q", name)
}

func (manager *Manager) count(ctx context.Context, op string) {
	if manager.operations != nil {
		manager.operations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
	}
}

func (manager *Manager) countBytes(ctx context.Context, n int64) {
	if manager.bytesRead != nil && n > 0 {
		manager.bytesRead.Add(ctx, n)
	}
}

func spanManagerName(op string) string {
	return schema.SchemaName + ".manager." + op
}
