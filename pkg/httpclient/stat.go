package httpclient

import (
	"context"
	"sync"

	// Packages
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	semaphore "golang.org/x/sync/semaphore"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// parallelStats bounds the number of concurrent HEAD requests issued
// by StatAll.
const parallelStats = 10

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// StatAll issues HEAD requests for the given paths in parallel, bounded by
// parallelStats, and returns the metadata in the same order as the paths.
// A path which could not be resolved (missing, or any other per-path error)
// yields a nil entry. Returns an error only when the context is cancelled.
func (f *Files) StatAll(ctx context.Context, paths []string) ([]*schema.File, error) {
	results := make([]*schema.File, len(paths))
	sem := semaphore.NewWeighted(parallelStats)
	var wg sync.WaitGroup
	for i, p := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			defer sem.Release(1)
			if file, err := f.Stat(ctx, p); err == nil {
				results[i] = file
			}
		}(i, p)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
