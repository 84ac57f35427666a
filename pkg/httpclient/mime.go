package httpclient

import (
	"mime"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// wellKnownMIME maps file extensions that Go's mime package may not know about
// (especially on macOS) to their canonical MIME type.
var wellKnownMIME = map[string]string{
	".go":    "text/x-go",
	".mod":   "text/plain",
	".sum":   "text/plain",
	".md":    "text/markdown",
	".sh":    "text/x-shellscript",
	".py":    "text/x-python",
	".rb":    "text/x-ruby",
	".rs":    "text/x-rust",
	".ts":    "text/typescript",
	".tsx":   "text/typescript",
	".jsx":   "text/javascript",
	".yaml":  "application/yaml",
	".yml":   "application/yaml",
	".toml":  "application/toml",
	".proto": "text/plain",
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MIMEByExt returns the MIME type for a file extension, consulting wellKnownMIME
// first and then the system MIME database.
func MIMEByExt(ext string) string {
	if ct, ok := wellKnownMIME[ext]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}
