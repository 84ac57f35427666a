package main

import (
	"fmt"
	"net/http"

	// Packages
	httphandler "github.com/mutablelogic/go-fileservice/pkg/httphandler"
	manager "github.com/mutablelogic/go-fileservice/pkg/manager"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	store "github.com/mutablelogic/go-fileservice/pkg/store"
	version "github.com/mutablelogic/go-fileservice/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	Serve ServeCommand `cmd:"" name:"serve" help:"Run the file service HTTP server." group:"SERVER"`
}

type ServeCommand struct {
	Listen    string   `name:"listen" default:":8080" help:"Listen address"`
	Prefix    string   `name:"prefix" default:"/" help:"Path prefix for all routes"`
	Origin    string   `name:"origin" default:"*" help:"CORS origin"`
	Store     []string `name:"store" default:"mem://files" help:"Store URL (e.g. mem://name, file://name/path, s3://bucket). May be repeated."`
	LargeSize int64    `name:"large-size" help:"Size in bytes of the synthetic verylarge stream (default ~3 GB)."`
	NoSeed    bool     `name:"no-seed" help:"Do not seed the canonical stream files into the default store."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCommand) Run(ctx *Globals) error {
	// Create manager with stores
	opts := []manager.Opt{}
	for _, url := range cmd.Store {
		opts = append(opts, manager.WithStore(ctx.ctx, url))
	}
	if cmd.LargeSize > 0 {
		opts = append(opts, manager.WithLargeStreamSize(cmd.LargeSize))
	}
	mgr, err := manager.New(ctx.ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create manager: %w", err)
	}
	defer mgr.Close()

	// Seed the canonical stream files into the default store
	if !cmd.NoSeed {
		if err := store.Seed(ctx.ctx, mgr.Store(mgr.DefaultStore())); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
	}

	return serve(ctx, cmd, mgr)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// serve registers HTTP handlers and runs the server until context is done.
func serve(ctx *Globals, cmd *ServeCommand, mgr *manager.Manager) error {
	// Create the router
	router, err := httprouter.NewRouter(ctx.ctx, cmd.Prefix, cmd.Origin, schema.SchemaName, version.Version())
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	// Register file service HTTP handlers
	if err := httphandler.RegisterHandlers(mgr, router); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	// Create and run the HTTP server
	srv, err := httpserver.New(cmd.Listen, http.Handler(router), nil)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Printf("%s@%s started on %s\n", schema.SchemaName, version.Version(), cmd.Listen)
	return srv.Run(ctx.ctx)
}
