package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	// Packages
	httpclient "github.com/mutablelogic/go-fileservice/pkg/httpclient"
	schema "github.com/mutablelogic/go-fileservice/pkg/schema"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FileCommands struct {
	Ls     LsCommand     `cmd:"" group:"FILES" help:"List files"`
	Get    GetCommand    `cmd:"" group:"FILES" help:"Download a file"`
	Put    PutCommand    `cmd:"" group:"FILES" help:"Upload a file"`
	Rm     RmCommand     `cmd:"" group:"FILES" help:"Delete a file"`
	Stat   StatCommand   `cmd:"" group:"FILES" help:"Show file metadata"`
	Stream StreamCommand `cmd:"" group:"FILES" help:"Download one of the canonical test streams"`
}

type LsCommand struct {
	Path      string `arg:"" name:"path" help:"Path prefix to list" optional:"" default:"/"`
	Recursive bool   `name:"recursive" short:"r" help:"List recursively"`
	Limit     int    `name:"limit" short:"n" help:"Maximum number of files to return (default: all)."`
	Offset    int    `name:"offset" help:"Number of files to skip (for pagination)." default:"0"`
}

type GetCommand struct {
	Path   string `arg:"" name:"path" help:"File path (e.g. /dir/file.txt)"`
	Output string `name:"output" short:"o" help:"Write to file instead of stdout"`
}

type PutCommand struct {
	File string `arg:"" name:"file" type:"existingfile" help:"Local file to upload"`
	Path string `arg:"" name:"path" help:"Remote path (defaults to /<basename>)" optional:""`
}

type RmCommand struct {
	Path string `arg:"" name:"path" help:"File path"`
}

type StatCommand struct {
	Paths []string `arg:"" name:"path" help:"One or more file paths"`
}

type StreamCommand struct {
	Kind   string `arg:"" name:"kind" enum:"nonempty,verylarge,empty" help:"Stream kind (nonempty, verylarge or empty)"`
	Output string `name:"output" short:"o" help:"Write to file instead of stdout"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *LsCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	limit := cmd.Limit
	if limit == 0 {
		limit = schema.MaxListLimit
	}
	resp, err := c.Files.List(ctx.ctx, schema.ListFilesRequest{
		Path:      cmd.Path,
		Recursive: cmd.Recursive,
		Limit:     limit,
		Offset:    cmd.Offset,
	})
	if err != nil {
		return err
	}
	if ctx.Debug {
		return prettyJSON(resp)
	}
	return printListing(resp)
}

func (cmd *GetCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	return writeOutput(cmd.Output, func(out io.Writer) error {
		_, err := c.Files.Download(ctx.ctx, cmd.Path, func(chunk []byte) error {
			_, err := out.Write(chunk)
			return err
		})
		return err
	})
}

func (cmd *PutCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	f, err := os.Open(cmd.File)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	remote := cmd.Path
	if remote == "" {
		remote = "/" + filepath.Base(cmd.File)
	}
	file, err := c.Files.Put(ctx.ctx, schema.PutFileRequest{
		Path:        remote,
		Body:        f,
		ContentType: httpclient.MIMEByExt(path.Ext(remote)),
		ModTime:     fi.ModTime(),
	})
	if err != nil {
		return err
	}
	return prettyJSON(file)
}

func (cmd *RmCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	file, err := c.Files.Delete(ctx.ctx, cmd.Path)
	if err != nil {
		return err
	}
	if ctx.Debug {
		return prettyJSON(file)
	}
	if file == nil {
		return nil
	}
	return printFiles([]schema.File{*file})
}

func (cmd *StatCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	if len(cmd.Paths) == 1 {
		file, err := c.Files.Stat(ctx.ctx, cmd.Paths[0])
		if err != nil {
			return err
		}
		return prettyJSON(file)
	}
	files, err := c.Files.StatAll(ctx.ctx, cmd.Paths)
	if err != nil {
		return err
	}
	return prettyJSON(files)
}

func (cmd *StreamCommand) Run(ctx *Globals) error {
	c, err := ctx.Client()
	if err != nil {
		return err
	}
	fetch := func(ctx context.Context, fn func([]byte) error) (*schema.File, error) {
		return nil, fmt.Errorf("unknown stream kind %q", cmd.Kind)
	}
	switch cmd.Kind {
	case schema.StreamKindNonEmpty:
		fetch = c.Files.GetFile
	case schema.StreamKindVeryLarge:
		fetch = c.Files.GetFileLarge
	case schema.StreamKindEmpty:
		fetch = c.Files.GetEmptyFile
	}
	return writeOutput(cmd.Output, func(out io.Writer) error {
		_, err := fetch(ctx.ctx, func(chunk []byte) error {
			_, err := out.Write(chunk)
			return err
		})
		return err
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeOutput runs fn with either stdout or a freshly created file as the
// destination. The file is removed again when fn fails.
func writeOutput(output string, fn func(io.Writer) error) error {
	if output == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = fn(f)
	f.Close()
	if err != nil {
		os.Remove(output)
	}
	return err
}

func prettyJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printListing renders a schema.FileList in an ls-style table.
func printListing(resp *schema.FileList) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	writeFileRows(w, resp.Body)
	if len(resp.Body) < resp.Count {
		fmt.Fprintf(os.Stdout, "\n  %d of %d file(s)\n", len(resp.Body), resp.Count)
	} else {
		fmt.Fprintf(os.Stdout, "\n  %d file(s)\n", resp.Count)
	}
	return nil
}

// printFiles renders a slice of files in the same ls-style table used by
// printListing. It is used by RmCommand to display deleted files.
func printFiles(files []schema.File) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	writeFileRows(w, files)
	fmt.Fprintf(os.Stdout, "\n  %d file(s) deleted\n", len(files))
	return nil
}

// writeFileRows writes one tabwriter row per file and flushes the writer.
func writeFileRows(w *tabwriter.Writer, files []schema.File) {
	bold := isTerminal(os.Stdout)
	for _, file := range files {
		name := strings.TrimPrefix(file.Path, "/")
		if bold {
			name = "\x1b[1m" + name + "\x1b[0m"
		}
		fmt.Fprintf(w, "%8s\t%s\t%-30s\t%s\n",
			humanSize(file.Size),
			formatModTime(file.ModTime),
			shortContentType(file.ContentType, file.Path),
			name,
		)
	}
	w.Flush()
}

// shortContentType strips parameters from a MIME type. When ct is empty or
// generic (application/octet-stream) it falls back to inferring the type from
// the file extension of p. Returns "-" if neither source yields a useful type.
func shortContentType(ct, p string) string {
	if ct == "" || ct == "application/octet-stream" {
		if inferred := httpclient.MIMEByExt(path.Ext(p)); inferred != "" {
			ct = inferred
		}
	}
	if ct == "" {
		return "-"
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// humanSize formats a byte count as a human-readable string.
func humanSize(n int64) string {
	const (
		KB = int64(1024)
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)
	switch {
	case n >= 1000*GB:
		return fmt.Sprintf("%.1fT", float64(n)/float64(TB))
	case n >= 1000*MB:
		return fmt.Sprintf("%.1fG", float64(n)/float64(GB))
	case n >= 1000*KB:
		return fmt.Sprintf("%.1fM", float64(n)/float64(MB))
	case n >= KB:
		return fmt.Sprintf("%.1fK", float64(n)/float64(KB))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// formatModTime formats a time in ls-style: "Jan  2 15:04" for the current
// year, or "Jan  2  2006" for older entries. Zero times are rendered as blanks.
func formatModTime(t time.Time) string {
	if t.IsZero() {
		return "            "
	}
	if t.Year() == time.Now().Year() {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2  2006")
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
