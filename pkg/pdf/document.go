package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu otherwise reads (and creates) a config dir in the user's home
	// on every NewDefaultConfiguration call.
	api.DisableConfigDir()
}

// NewConfiguration returns the pdfcpu configuration used for reading and
// writing. With xrefStreams unset the writer emits a classic xref table and
// no object streams.
func NewConfiguration(xrefStreams bool) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = xrefStreams
	conf.WriteXRefStream = xrefStreams
	return conf
}

// ReadContext parses data into a pdfcpu context and makes sure the page
// count is known. Encrypted documents are rejected with ErrEncrypted.
func ReadContext(data []byte, conf *model.Configuration) (ctx *model.Context, err error) {
	if _, err := Sniff(data); err != nil {
		return nil, err
	}
	if conf == nil {
		conf = NewConfiguration(false)
	}

	defer func() {
		if r := recover(); r != nil {
			ctx = nil
			err = fmt.Errorf("failed to read PDF context: parser panic: %v", r)
		}
	}()

	ctx, err = api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if ctx.XRefTable.Encrypt != nil {
		return nil, ErrEncrypted
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to determine page count: %w", err)
	}
	return ctx, nil
}

// ValidateContext runs pdfcpu's relaxed validation on ctx
func ValidateContext(ctx *model.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid PDF: validator panic: %v", r)
		}
	}()
	if err := api.ValidateContext(ctx); err != nil {
		return fmt.Errorf("invalid PDF: %w", err)
	}
	return nil
}

// PDFDocument implements the Document interface using pdfcpu
type PDFDocument struct {
	ctx   *model.Context
	pages []Page
}

// OpenPDFCPU parses and validates data with pdfcpu
func OpenPDFCPU(data []byte) (Document, error) {
	ctx, err := ReadContext(data, nil)
	if err != nil {
		return nil, err
	}
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	return NewPDFDocument(ctx)
}

// NewPDFDocument wraps an already parsed context
func NewPDFDocument(ctx *model.Context) (*PDFDocument, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to determine page count: %w", err)
	}

	doc := &PDFDocument{ctx: ctx}
	if err := doc.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}
	return doc, nil
}

// initializePages initializes all pages in the document
func (d *PDFDocument) initializePages() error {
	pageCount := d.ctx.PageCount
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := NewPDFCPUPage(d.ctx, i)
		if err != nil {
			return fmt.Errorf("failed to create page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// Backend implements the Document interface
func (d *PDFDocument) Backend() Backend {
	return BackendPDFCPU
}

// GetPages returns all pages in the document
func (d *PDFDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *PDFDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *PDFDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *PDFDocument) Close() error {
	d.ctx = nil
	d.pages = nil
	return nil
}
