package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Endpoint string        `env:"FILESERVICE_ENDPOINT" default:"http://localhost/" help:"Service endpoint"`
	Debug    bool          `help:"Enable debug output"`
	Timeout  time.Duration `default:"30s" help:"Request timeout"`

	ctx    context.Context
	cancel context.CancelFunc
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewApp(app Globals) *Globals {
	// Create the context
	// This context is cancelled when the process receives a SIGINT or SIGTERM
	app.ctx, app.cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Return the app
	return &app
}

func (app *Globals) Close() error {
	app.cancel()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (app *Globals) Context() context.Context {
	return app.ctx
}
