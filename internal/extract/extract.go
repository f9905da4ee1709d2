// Package extract turns uploaded document bytes into plain text.
package extract

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when no extractor handles the media type.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Result contains the extracted text.
type Result struct {
	Text string
}

// Extractor extracts text content from a document.
// The filename and mediaType help determine the appropriate extraction method.
type Extractor interface {
	Extract(ctx context.Context, data []byte, filename, mediaType string) (*Result, error)
}

// Format names a family of documents an extractor understands.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

var pdfMagic = []byte("%PDF-")

// Detect classifies a document from its declared media type, its extension and,
// as a last resort, its leading bytes. It returns "" for unknown formats.
func Detect(data []byte, filename, mediaType string) Format {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mediaType))
	}
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case mt == "application/pdf", ext == ".pdf", bytes.HasPrefix(data, pdfMagic):
		return FormatPDF
	case strings.HasPrefix(mt, "text/"), ext == ".txt", ext == ".md":
		return FormatText
	}

	if strings.HasPrefix(http.DetectContentType(data), "text/plain") {
		return FormatText
	}
	return ""
}

// Router dispatches to a per-format extractor.
type Router struct {
	byFormat map[Format]Extractor
}

var _ Extractor = (*Router)(nil)

// NewRouter returns a router over the given extractors.
func NewRouter(byFormat map[Format]Extractor) *Router {
	return &Router{byFormat: byFormat}
}

// Default returns a router handling PDF and plain text documents.
func Default() *Router {
	return NewRouter(map[Format]Extractor{
		FormatPDF:  PDF{},
		FormatText: PlainText{},
	})
}

// Extract detects the document format and delegates to its extractor.
func (r *Router) Extract(ctx context.Context, data []byte, filename, mediaType string) (*Result, error) {
	ex, ok := r.byFormat[Detect(data, filename, mediaType)]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return ex.Extract(ctx, data, filename, mediaType)
}
