package embed

import (
	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

// Option is a function that modifies embedding behavior
type Option func(*config)

type config struct {
	Origin      pdf.Origin
	Border      [3]float64
	Verify      []pdf.Backend
	XRefStreams bool
}

func newConfig(opts []Option) *config {
	c := &config{
		Origin: pdf.OriginBottomLeft,
		Verify: []pdf.Backend{pdf.BackendPDFCPU},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithOrigin selects the vertical convention of the input coordinates.
// The default, pdf.OriginBottomLeft, takes the converted values as PDF
// user space unchanged.
func WithOrigin(origin pdf.Origin) Option {
	return func(c *config) {
		c.Origin = origin
	}
}

// WithBorder sets the /Border array of the link: horizontal and vertical
// corner radius and border width. The default [0 0 0] draws no border.
func WithBorder(hRadius, vRadius, width float64) Option {
	return func(c *config) {
		c.Border = [3]float64{hRadius, vRadius, width}
	}
}

// WithVerification re-reads the serialized document with each of the given
// backends before returning it. The default verifies with pdfcpu only.
func WithVerification(backends ...pdf.Backend) Option {
	return func(c *config) {
		c.Verify = backends
	}
}

// WithoutVerification skips re-reading the serialized document
func WithoutVerification() Option {
	return func(c *config) {
		c.Verify = nil
	}
}

// WithXRefStreams writes a compressed cross-reference stream and object
// streams instead of a classic xref table.
func WithXRefStreams(enabled bool) Option {
	return func(c *config) {
		c.XRefStreams = enabled
	}
}
