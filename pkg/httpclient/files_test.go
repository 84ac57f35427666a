package httpclient_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	// Packages
	config "github.com/mutablelogic/go-fileservice/pkg/config"
	httpclient "github.com/mutablelogic/go-fileservice/pkg/httpclient"
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	store "github.com/mutablelogic/go-fileservice/pkg/store"
)

func TestGetFile(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	var got []byte
	file, err := c.Files.GetFile(context.Background(), func(chunk []byte) error {
		got = append(got, chunk...)
		return nil
	})
	if err != nil {
		t.Fatalf("GetFile: %v", err)
	}
	if !bytes.Equal(got, store.Sample()) {
		t.Errorf("body: got %d bytes, want the %d byte sample", len(got), len(store.Sample()))
	}
	if file.Size != int64(len(store.Sample())) {
		t.Errorf("size: got %d, want %d", file.Size, len(store.Sample()))
	}
	if file.ContentType != "image/png" {
		t.Errorf("content type: got %q, want %q", file.ContentType, "image/png")
	}
}

func TestGetFile_nilFn(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	file, err := c.Files.GetFile(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetFile with nil fn: %v", err)
	}
	if file == nil {
		t.Fatal("expected metadata with nil fn, got nil")
	}
}

func TestGetEmptyFile(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	calls := 0
	file, err := c.Files.GetEmptyFile(context.Background(), func(chunk []byte) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("GetEmptyFile: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no chunks for empty stream, got %d calls", calls)
	}
	if file.Size != 0 {
		t.Errorf("size: got %d, want 0", file.Size)
	}
}

func TestGetFileLarge(t *testing.T) {
	const size = 2 * 1024 * 1024
	c, cleanup := newTestServer(t, manager.WithLargeStreamSize(size))
	defer cleanup()

	var total int64
	file, err := c.Files.GetFileLarge(context.Background(), func(chunk []byte) error {
		total += int64(len(chunk))
		return nil
	})
	if err != nil {
		t.Fatalf("GetFileLarge: %v", err)
	}
	if total != size {
		t.Errorf("drained %d bytes, want %d", total, size)
	}
	if file.Size != size {
		t.Errorf("size: got %d, want %d", file.Size, size)
	}
}

func TestGetFile_fnError(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	sentinel := errors.New("fn error")
	_, err := c.Files.GetFile(context.Background(), func([]byte) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

func TestGetFile_missingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg, err := config.New(config.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	c, err := httpclient.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Files.GetFile(context.Background(), nil); err == nil {
		t.Fatal("expected error for missing header, got nil")
	}
}

func TestPut_roundtrip(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	data := []byte("hello world")
	file, err := c.Files.Put(context.Background(), schema.PutFileRequest{
		Path:        "/hello.txt",
		Body:        bytes.NewReader(data),
		ContentType: "text/plain",
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if file.Path != "/hello.txt" {
		t.Errorf("path: got %q, want %q", file.Path, "/hello.txt")
	}
	if file.Size != int64(len(data)) {
		t.Errorf("size: got %d, want %d", file.Size, len(data))
	}

	var got []byte
	read, err := c.Files.Download(context.Background(), "/hello.txt", func(chunk []byte) error {
		got = append(got, chunk...)
		return nil
	})
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("body: got %q, want %q", got, data)
	}
	if read.Size != int64(len(data)) {
		t.Errorf("size: got %d, want %d", read.Size, len(data))
	}
}

func TestPut_modTime(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	modtime := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	file, err := c.Files.Put(context.Background(), schema.PutFileRequest{
		Path:        "/dated.txt",
		Body:        strings.NewReader("dated"),
		ContentType: "text/plain",
		ModTime:     modtime,
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !file.ModTime.Truncate(time.Second).Equal(modtime) {
		t.Errorf("modtime: got %v, want %v", file.ModTime, modtime)
	}
}

func TestList(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	paths := []string{"/list/x.txt", "/list/y.txt", "/list/nested/z.txt"}
	for _, p := range paths {
		if _, err := c.Files.Put(context.Background(), schema.PutFileRequest{
			Path: p, Body: strings.NewReader("data"), ContentType: "text/plain",
		}); err != nil {
			t.Fatalf("Put %s: %v", p, err)
		}
	}

	resp, err := c.Files.List(context.Background(), schema.ListFilesRequest{
		Path: "/list", Recursive: true, Limit: 100,
	})
	if err != nil {
		t.Fatalf("List recursive: %v", err)
	}
	if resp.Count != 3 {
		t.Errorf("count: got %d, want 3", resp.Count)
	}
	if len(resp.Body) != 3 {
		t.Errorf("body len: got %d, want 3: %+v", len(resp.Body), resp.Body)
	}

	resp2, err := c.Files.List(context.Background(), schema.ListFilesRequest{
		Path: "/list", Recursive: false, Limit: 100,
	})
	if err != nil {
		t.Fatalf("List non-recursive: %v", err)
	}
	for _, file := range resp2.Body {
		if strings.Contains(file.Path, "nested/") {
			t.Errorf("non-recursive list returned deep nested path %q", file.Path)
		}
	}
}

func TestStat(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	data := []byte("metadata check")
	if _, err := c.Files.Put(context.Background(), schema.PutFileRequest{
		Path: "/meta.txt", Body: bytes.NewReader(data), ContentType: "text/plain",
	}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	file, err := c.Files.Stat(context.Background(), "/meta.txt")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if file.Size != int64(len(data)) {
		t.Errorf("size: got %d, want %d", file.Size, len(data))
	}
}

func TestStatAll(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	paths := []string{"/sa/a.txt", "/sa/b.txt", "/sa/c.txt"}
	for _, p := range paths {
		if _, err := c.Files.Put(context.Background(), schema.PutFileRequest{
			Path: p, Body: strings.NewReader("data"), ContentType: "text/plain",
		}); err != nil {
			t.Fatalf("Put %s: %v", p, err)
		}
	}

	// Include a path that does not exist; its entry must be nil.
	all := append([]string{}, paths...)
	all = append(all, "/sa/missing.txt")
	files, err := c.Files.StatAll(context.Background(), all)
	if err != nil {
		t.Fatalf("StatAll: %v", err)
	}
	if len(files) != len(all) {
		t.Fatalf("len: got %d, want %d", len(files), len(all))
	}
	for i, p := range paths {
		if files[i] == nil {
			t.Errorf("files[%d] is nil", i)
			continue
		}
		if files[i].Path != p {
			t.Errorf("files[%d].Path: got %q, want %q", i, files[i].Path, p)
		}
	}
	if files[len(all)-1] != nil {
		t.Errorf("expected nil entry for missing path, got %+v", files[len(all)-1])
	}
}

func TestDelete(t *testing.T) {
	c, cleanup := newTestServer(t)
	defer cleanup()

	if _, err := c.Files.Put(context.Background(), schema.PutFileRequest{
		Path: "/delete_me.txt", Body: strings.NewReader("bye"), ContentType: "text/plain",
	}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	file, err := c.Files.Delete(context.Background(), "/delete_me.txt")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if file == nil {
		t.Fatal("Delete returned nil")
	}
	if _, err := c.Files.Stat(context.Background(), "/delete_me.txt"); err == nil {
		t.Error("expected error fetching deleted file, got nil")
	}
}
