package httphandler_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	httphandler "github.com/mutablelogic/go-fileservice/pkg/httphandler"
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	store "github.com/mutablelogic/go-fileservice/pkg/store"
)

// serveMux creates an http.ServeMux with all httphandler routes registered.
func serveMux(mgr *manager.Manager) *http.ServeMux {
	mux := http.NewServeMux()
	path, handler, _ := httphandler.FileStreamHandler(mgr)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.FileListHandler(mgr)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.FileHandler(mgr)
	mux.HandleFunc(path, handler)
	return mux
}

// newTestManager creates a manager with a seeded mem store.
func newTestManager(t *testing.T, opts ...manager.Opt) *manager.Manager {
	t.Helper()
	opts = append([]manager.Opt{manager.WithStore(context.Background(), "mem://files")}, opts...)
	mgr, err := manager.New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	if err := store.Seed(context.Background(), mgr.Store("files")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })
	return mgr
}
