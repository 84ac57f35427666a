// Package httpclient provides a typed Go client for consuming the file
// service REST API.
//
// Create a configuration and a client with:
//
//	cfg, err := config.New(config.WithBaseURL("http://localhost:8080"))
//	if err != nil {
//	   panic(err)
//	}
//	client, err := httpclient.New(cfg)
//	if err != nil {
//	   panic(err)
//	}
//
// Then use the files sub-resource to retrieve content:
//
//	// Download the canonical non-empty stream
//	file, err := client.Files.GetFile(ctx, func(chunk []byte) error {
//	   _, err := w.Write(chunk)
//	   return err
//	})
package httpclient
