package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-fileservice/pkg/config"
	httpclient "github.com/mutablelogic/go-fileservice/pkg/httpclient"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client builds a file service HTTP client from the global flags.
func (g *Globals) Client() (*httpclient.Client, error) {
	cfg, err := config.New(config.WithBaseURL(g.Endpoint))
	if err != nil {
		return nil, err
	}
	opts := []client.ClientOpt{}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, false))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return httpclient.New(cfg, opts...)
}
