package httpclient

import (
	// Packages
	client "github.com/mutablelogic/go-client"
	codec "github.com/mutablelogic/go-fileservice/pkg/codec"
	config "github.com/mutablelogic/go-fileservice/pkg/config"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the file service facade. It wraps the base HTTP client and
// exposes the files sub-resource. The transport, serializer, deserializer and
// configuration are bound once at construction and never mutated.
type Client struct {
	*client.Client

	// Files exposes the file operations of the service.
	Files *Files

	config      *config.Config
	serialize   *codec.Serializer
	deserialize *codec.Deserializer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new file service client from a configuration. The transport
// is built from the configuration's base URL, the serializer takes no special
// options, and the deserializer is parameterized by the full model registry.
// Any construction error propagates unmodified.
func New(cfg *config.Config, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	cl, err := client.New(append(opts, client.OptEndpoint(cfg.BaseURL))...)
	if err != nil {
		return nil, err
	}
	c.Client = cl
	c.config = cfg
	c.serialize = codec.NewSerializer()
	c.deserialize = codec.NewDeserializer(schema.Models())
	c.Files = &Files{
		client:      cl,
		config:      cfg,
		serialize:   c.serialize,
		deserialize: c.deserialize,
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Config returns the configuration the client was constructed with.
func (c *Client) Config() *config.Config {
	return c.config
}
