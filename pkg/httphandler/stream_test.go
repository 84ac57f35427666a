package httphandler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	store "github.com/mutablelogic/go-fileservice/pkg/store"
)

func Test_streamGet_nonempty(t *testing.T) {
	mgr := newTestManager(t)
	mux := serveMux(mgr)

	req := httptest.NewRequest(http.MethodGet, "/files/stream/nonempty", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)

	resp := rw.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected Content-Type image/png, got %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != string(store.Sample()) {
		t.Errorf("body does not match the sample payload (%d bytes vs %d)", len(body), len(store.Sample()))
	}

	var file schema.File
	if err := json.Unmarshal([]byte(resp.Header.Get(schema.FileMetaHeader)), &file); err != nil {
		t.Fatalf("failed to decode %s header: %v", schema.FileMetaHeader, err)
	}
	if file.Size != int64(len(store.Sample())) {
		t.Errorf("expected size %d in metadata, got %d", len(store.Sample()), file.Size)
	}
}

func Test_streamGet_empty(t *testing.T) {
	mgr := newTestManager(t)
	mux := serveMux(mgr)

	req := httptest.NewRequest(http.MethodGet, "/files/stream/empty", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)

	resp := rw.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("expected empty body, got %d bytes", len(body))
	}
}

func Test_streamGet_verylarge(t *testing.T) {
	// Use a small synthetic size so the test stays fast
	mgr := newTestManager(t, manager.WithLargeStreamSize(2*1024*1024))
	mux := serveMux(mgr)

	req := httptest.NewRequest(http.MethodGet, "/files/stream/verylarge", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)

	resp := rw.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		t.Fatalf("failed to drain body: %v", err)
	}
	if n != 2*1024*1024 {
		t.Errorf("expected %d bytes, got %d", 2*1024*1024, n)
	}
}

func Test_streamGet_unknownKind(t *testing.T) {
	mgr := newTestManager(t)
	mux := serveMux(mgr)

	req := httptest.NewRequest(http.MethodGet, "/files/stream/bogus", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)

	resp := rw.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}

	var out schema.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if out.Status != http.StatusNotFound {
		t.Errorf("expected status 404 in error body, got %d", out.Status)
	}
	if out.Message == "" {
		t.Error("expected non-empty error message")
	}
}

func Test_streamGet_methodNotAllowed(t *testing.T) {
	mgr := newTestManager(t)
	mux := serveMux(mgr)

	req := httptest.NewRequest(http.MethodPost, "/files/stream/nonempty", nil)
	rw := httptest.NewRecorder()
	mux.ServeHTTP(rw, req)

	resp := rw.Result()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.StatusCode)
	}

	var out schema.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if out.Status != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405 in error body, got %d", out.Status)
	}
}
