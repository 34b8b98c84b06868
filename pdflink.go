// Package pdflink embeds clickable URI links into existing PDF documents
package pdflink

import (
	"os"

	"github.com/pyhub-apps/pdflink-golang/pkg/embed"
	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
	"github.com/pyhub-apps/pdflink-golang/pkg/units"
)

// Re-export types from the embed and pdf packages for the public API
type (
	Request    = embed.Request
	Result     = embed.Result
	Option     = embed.Option
	Error      = embed.Error
	Rect       = pdf.Rect
	Origin     = pdf.Origin
	Annotation = pdf.Annotation
	Document   = pdf.Document
	Page       = pdf.Page
)

// Re-export option functions
var (
	WithOrigin          = embed.WithOrigin
	WithBorder          = embed.WithBorder
	WithVerification    = embed.WithVerification
	WithoutVerification = embed.WithoutVerification
	WithXRefStreams     = embed.WithXRefStreams
)

// Error kinds
var (
	ErrMalformedDocument = embed.ErrMalformedDocument
	ErrEmptyDocument     = embed.ErrEmptyDocument
	ErrEmbedFailed       = embed.ErrEmbedFailed
)

const (
	OriginBottomLeft = pdf.OriginBottomLeft
	OriginTopLeft    = pdf.OriginTopLeft
)

// ToPoints converts millimetres to PDF points
func ToPoints(mm float64) float64 {
	return units.ToPoints(mm)
}

// EmbedLink adds a link to url over the rectangle (x1, y1)-(x2, y2), in
// millimetres, on the first page of the document in data.
func EmbedLink(data []byte, x1, y1, x2, y2 float64, url string, opts ...Option) ([]byte, error) {
	return embed.EmbedLink(data, x1, y1, x2, y2, url, opts...)
}

// EmbedLinkFile reads the PDF at in, embeds the link and writes the result to out
func EmbedLinkFile(in, out string, req Request, opts ...Option) (*Result, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return nil, err
	}
	res, err := embed.Embed(data, req, opts...)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
		return nil, err
	}
	return res, nil
}

// Open reads a PDF file for inspection. The ledongthuc backend is tried
// first, then dslipak, then pdfcpu.
func Open(filepath string) (Document, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return pdf.Open(data)
}
