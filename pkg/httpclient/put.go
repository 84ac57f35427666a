package httpclient

import (
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// putPayload implements client.Payload for file uploads, carrying the
// upload request with its body and declared content type.
type putPayload struct {
	schema.PutFileRequest
}

var _ client.Payload = (*putPayload)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newPutPayload(req schema.PutFileRequest) *putPayload {
	return &putPayload{PutFileRequest: req}
}

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (p *putPayload) Method() string {
	return http.MethodPut
}

// The response to an upload is always the file metadata in JSON
func (p *putPayload) Accept() string {
	return types.ContentTypeJSON
}

// Type reports the declared content type, falling back to binary
func (p *putPayload) Type() string {
	if p.ContentType != "" {
		return p.ContentType
	}
	return types.ContentTypeBinary
}

func (p *putPayload) Read(b []byte) (int, error) {
	return p.Body.Read(b)
}
