package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"syscall"
	"time"

	// Packages
	fileservice "github.com/mutablelogic/go-fileservice"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
	blob "gocloud.dev/blob"
	s3blob "gocloud.dev/blob/s3blob"
	gcerrors "gocloud.dev/gcerrors"
	otelaws "go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"

	// Drivers
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs
	_ "gocloud.dev/blob/s3blob"   // s3:// URLs
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type blobstore struct {
	*opt
	bucket *blob.Bucket
}

var _ fileservice.Store = (*blobstore)(nil)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewBlobStore creates a new file store using Go CDK blob.
// Supported URL schemes: s3://, file://, mem://
// Examples:
//   - "s3://my-bucket?region=us-east-1"
//   - "file://name/path/to/directory"
//   - "mem://name"
//
// For S3 URLs, you can optionally provide an aws.Config via WithAWSConfig()
// for full control over AWS SDK configuration.
func NewBlobStore(ctx context.Context, u string, opts ...Opt) (*blobstore, error) {
	self := new(blobstore)

	// Set the options
	if url, err := url.Parse(u); err != nil {
		return nil, err
	} else if opt, err := apply(url, opts...); err != nil {
		return nil, err
	} else {
		self.opt = opt
	}

	// Validate the store name (URL host) is a valid identifier
	if !types.IsIdentifier(self.url.Host) {
		return nil, fmt.Errorf("store name %q must be a valid identifier (letter, digits, underscores, hyphens; max 64 chars)", self.url.Host)
	}

	// Open the bucket
	var bucket *blob.Bucket
	var err error

	if self.url.Scheme == "s3" && self.awsConfig != nil {
		// Use the provided AWS config to open the S3 bucket directly. When a
		// tracer is configured, inject AWS SDK middleware so each S3 API call
		// produces a child span.
		cfg := *self.awsConfig
		if self.tracer != nil {
			otelaws.AppendMiddlewares(&cfg.APIOptions)
		}
		client := s3blob.Dial(cfg)
		bucket, err = s3blob.OpenBucket(ctx, client, self.url.Host, nil)
	} else if self.url.Scheme == "file" {
		// For file:// the path is the bucket root dir - open using just the path
		openURL := &url.URL{Scheme: "file", Path: self.url.Path, RawQuery: self.url.RawQuery}
		bucket, err = blob.OpenBucket(ctx, openURL.String())
	} else {
		// For s3, mem, etc.: open at root (strip path)
		openURL := *self.url
		openURL.Path = ""
		openURL.RawPath = ""
		bucket, err = blob.OpenBucket(ctx, openURL.String())
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	self.bucket = bucket

	return self, nil
}

// NewFileStore creates a file-based store with a logical name.
// name must be a valid identifier (see types.IsIdentifier): starts with a
// letter, contains only letters, digits, underscores, or hyphens, max 64 chars.
// dir must be an absolute path; if it doesn't start with "/" an error is returned.
func NewFileStore(ctx context.Context, name, dir string, opts ...Opt) (*blobstore, error) {
	if !path.IsAbs(dir) {
		return nil, fmt.Errorf("store dir %q must be an absolute path", dir)
	}
	return NewBlobStore(ctx, "file://"+name+path.Clean(dir), opts...)
}

// Close the store
func (s *blobstore) Close() error {
	var result error
	if s.bucket != nil {
		result = errors.Join(result, s.bucket.Close())
		s.bucket = nil
	}

	// Return any errors
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the name of the store (the host component of the URL)
func (s *blobstore) Name() string {
	return s.url.Host
}

// URL returns the store destination URL
func (s *blobstore) URL() *url.URL {
	return s.url
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// key converts a logical path to the blob storage key. The path is cleaned to
// prevent directory traversal (e.g. "/../../../etc/passwd" becomes "/etc/passwd").
func (s *blobstore) key(p string) string {
	return strings.TrimPrefix(cleanPath(p), "/")
}

// cleanPath returns the canonical absolute form of a logical path.
func cleanPath(p string) string {
	return path.Clean("/" + p)
}

func (s *blobstore) attrsToFile(p string, attrs *blob.Attributes) *schema.File {
	file := &schema.File{
		Path:        p,
		Size:        attrs.Size,
		ModTime:     attrs.ModTime,
		ContentType: attrs.ContentType,
	}
	if attrs.ETag != "" {
		file.ETag = attrs.ETag
	}
	// Prefer the caller-supplied modification time over the storage mtime
	if v, exists := attrs.Metadata[schema.AttrLastModified]; exists {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			file.ModTime = t
		}
	}
	return file
}

// blobErr wraps a go-cloud blob error with the appropriate httpresponse error
func blobErr(err error, url string) error {
	if err == nil {
		return nil
	}
	// Check for OS-level errors before go-cloud classification, since the
	// gcerrors default path wraps with %v and breaks the chain.
	if errors.Is(err, syscall.EISDIR) || errors.Is(err, syscall.EEXIST) {
		return httpresponse.ErrBadRequest.Withf("cannot overwrite directory with file: %q", url)
	}
	switch gcerrors.Code(err) {
	case gcerrors.NotFound:
		return httpresponse.ErrNotFound.Withf("file %q not found", url)
	case gcerrors.PermissionDenied:
		return httpresponse.ErrForbidden.Withf("permission denied for %q", url)
	case gcerrors.InvalidArgument:
		return httpresponse.ErrBadRequest.Withf("invalid argument for %q: %v", url, err)
	case gcerrors.FailedPrecondition:
		return httpresponse.ErrConflict.Withf("precondition failed for %q: %v", url, err)
	default:
		return httpresponse.ErrInternalError.Withf("blob operation failed: %v", err)
	}
}
