package manager

import (
	"context"
	"fmt"

	// Packages
	fileservice "github.com/mutablelogic/go-fileservice"
	store "github.com/mutablelogic/go-fileservice/pkg/store"
	metric "go.opentelemetry.io/otel/metric"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for manager configuration.
type Opt func(*opts) error

type opts struct {
	tracer    trace.Tracer
	meter     metric.Meter
	stores    []fileservice.Store
	largeSize int64
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTracer sets the tracer used for tracing operations.
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		o.tracer = tracer
		return nil
	}
}

// WithMeter sets the meter used for operation and byte counters.
func WithMeter(meter metric.Meter) Opt {
	return func(o *opts) error {
		o.meter = meter
		return nil
	}
}

// WithStore adds a blob store (mem://, file://, s3://) to the manager.
// The url should be in the format "scheme://name" (e.g., "mem://files", "s3://mybucket").
// Returns an error if a store with the same name already exists.
func WithStore(ctx context.Context, url string, storeOpts ...store.Opt) Opt {
	return func(o *opts) error {
		s, err := store.NewBlobStore(ctx, url, storeOpts...)
		if err != nil {
			return err
		}
		for _, existing := range o.stores {
			if existing.Name() == s.Name() {
				return fmt.Errorf("store with name %q already registered", s.Name())
			}
		}
		o.stores = append(o.stores, s)
		return nil
	}
}

// WithLargeStreamSize sets the number of bytes produced by the synthetic
// "verylarge" stream. Values below one are an error.
func WithLargeStreamSize(size int64) Opt {
	return func(o *opts) error {
		if size < 1 {
			return fmt.Errorf("large stream size must be positive, got %d", size)
		}
		o.largeSize = size
		return nil
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt []Opt) (opts, error) {
	// Set defaults
	o := opts{
		largeSize: DefaultLargeStreamSize,
	}

	// Apply options
	for _, fn := range opt {
		if err := fn(&o); err != nil {
			return opts{}, err
		}
	}

	// Return success
	return o, nil
}
