package httpclient

import (
	"fmt"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	codec "github.com/mutablelogic/go-fileservice/pkg/codec"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// fileStreamUnmarshaler streams the response body to fn in chunks and captures
// the file metadata from the X-File-Meta response header. A nil fn drains the
// body without delivering it.
type fileStreamUnmarshaler struct {
	deserialize *codec.Deserializer
	file        *schema.File
	fn          func([]byte) error
}

// fileUnmarshaler decodes a JSON response body into file metadata through the
// model registry.
type fileUnmarshaler struct {
	deserialize *codec.Deserializer
	file        *schema.File
}

// fileListUnmarshaler decodes a JSON response body into a file listing through
// the model registry.
type fileListUnmarshaler struct {
	deserialize *codec.Deserializer
	list        *schema.FileList
}

// fileHeadUnmarshaler captures file metadata from the X-File-Meta response
// header only, for HEAD requests with no body.
type fileHeadUnmarshaler struct {
	deserialize *codec.Deserializer
	file        *schema.File
}

// Ensure the unmarshalers implement client.Unmarshaler
var _ client.Unmarshaler = (*fileStreamUnmarshaler)(nil)
var _ client.Unmarshaler = (*fileUnmarshaler)(nil)
var _ client.Unmarshaler = (*fileListUnmarshaler)(nil)
var _ client.Unmarshaler = (*fileHeadUnmarshaler)(nil)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE IMPLEMENTATION

func (r *fileStreamUnmarshaler) Unmarshal(header http.Header, reader io.Reader) error {
	metaJSON := header.Get(schema.FileMetaHeader)
	if metaJSON == "" {
		return fmt.Errorf("missing %s header in response", schema.FileMetaHeader)
	}
	file, err := decodeFileMeta(r.deserialize, metaJSON)
	if err != nil {
		return err
	}
	r.file = file
	if r.fn == nil {
		_, err := io.Copy(io.Discard, reader)
		return err
	}
	buf := make([]byte, 32*1024)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			if callErr := r.fn(buf[:n]); callErr != nil {
				return callErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *fileUnmarshaler) Unmarshal(_ http.Header, reader io.Reader) error {
	decoded, err := r.deserialize.Decode("File", reader)
	if err != nil {
		return err
	}
	r.file = decoded.(*schema.File)
	return nil
}

func (r *fileListUnmarshaler) Unmarshal(_ http.Header, reader io.Reader) error {
	decoded, err := r.deserialize.Decode("FileList", reader)
	if err != nil {
		return err
	}
	r.list = decoded.(*schema.FileList)
	return nil
}

func (r *fileHeadUnmarshaler) Unmarshal(header http.Header, _ io.Reader) error {
	if metaJSON := header.Get(schema.FileMetaHeader); metaJSON != "" {
		file, err := decodeFileMeta(r.deserialize, metaJSON)
		if err != nil {
			return err
		}
		r.file = file
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeFileMeta(deserialize *codec.Deserializer, metaJSON string) (*schema.File, error) {
	decoded, err := deserialize.DecodeBytes("File", []byte(metaJSON))
	if err != nil {
		return nil, err
	}
	return decoded.(*schema.File), nil
}
