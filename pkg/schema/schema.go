package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

const (
	SchemaName = "fileservice"

	// HTTP headers
	FileMetaHeader = "X-File-Meta" // JSON-encoded File metadata on GET and HEAD responses

	// AttrLastModified is the metadata key used to store the file modification time.
	// S3 normalizes metadata keys to lowercase, so we use lowercase for consistency.
	AttrLastModified = "last-modified"
)

// Canonical stream kinds served by the test service under /files/stream/{kind}.
const (
	StreamKindNonEmpty  = "nonempty"
	StreamKindVeryLarge = "verylarge"
	StreamKindEmpty     = "empty"
)

// Store paths backing the seeded canonical streams. The "verylarge" stream is
// synthesized by the manager and has no store path.
const (
	StreamPathNonEmpty = "/stream/nonempty"
	StreamPathEmpty    = "/stream/empty"
)
