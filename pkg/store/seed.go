package store

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	// Packages
	fileservice "github.com/mutablelogic/go-fileservice"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var sampleOnce sync.Once
var sampleData []byte

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Sample returns the PNG served by the canonical non-empty stream. The image
// is generated once and cached for the process lifetime.
func Sample() []byte {
	sampleOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 0x80, A: 0xFF})
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			panic(err)
		}
		sampleData = buf.Bytes()
	})
	return sampleData
}

// Seed loads the canonical stream files into a store: a non-empty PNG sample
// and a zero-byte file. A freshly seeded store can serve all canonical stream
// endpoints except "verylarge", which is synthesized rather than stored.
func Seed(ctx context.Context, s fileservice.Store) error {
	if _, err := s.CreateFile(ctx, schema.PutFileRequest{
		Path:        schema.StreamPathNonEmpty,
		Body:        bytes.NewReader(Sample()),
		ContentType: "image/png",
	}); err != nil {
		return err
	}
	if _, err := s.CreateFile(ctx, schema.PutFileRequest{
		Path:        schema.StreamPathEmpty,
		Body:        strings.NewReader(""),
		ContentType: "application/octet-stream",
	}); err != nil {
		return err
	}
	return nil
}
