package pdf

import (
	"bytes"
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader *gopdf.Reader
	pages  []Page
}

// OpenDslipak parses data using the dslipak/pdf library
func OpenDslipak(data []byte) (doc Document, err error) {
	if _, err := Sniff(data); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to open PDF with dslipak: %v", r)
		}
	}()

	r, err := gopdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	d := &DsliPakDocument{reader: r}
	if err := d.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}
	return d, nil
}

// initializePages initializes all pages in the document
func (d *DsliPakDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := NewDsliPakPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// Backend implements the Document interface
func (d *DsliPakDocument) Backend() Backend {
	return BackendDslipak
}

// GetPages returns all pages in the document
func (d *DsliPakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DsliPakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DsliPakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DsliPakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// DsliPakPage implements the Page interface using dslipak/pdf.
// Unlike the ledongthuc page it does not follow inheritance for /Rotate;
// the media box is looked up on the page node and then its parents.
type DsliPakPage struct {
	pageNumber  int
	mediaBox    Rect
	rotation    int
	annotations []Annotation
}

// NewDsliPakPage creates a new page using dslipak/pdf
func NewDsliPakPage(reader *gopdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	p := &DsliPakPage{
		pageNumber: pageNumber,
		mediaBox:   DefaultMediaBox,
		rotation:   int(page.V.Key("Rotate").Int64()),
	}

	for node := page.V; !node.IsNull(); node = node.Key("Parent") {
		mb := node.Key("MediaBox")
		if mb.Kind() == gopdf.Array && mb.Len() == 4 {
			p.mediaBox = NewRect(
				mb.Index(0).Float64(),
				mb.Index(1).Float64(),
				mb.Index(2).Float64(),
				mb.Index(3).Float64(),
			)
			break
		}
	}

	annots := page.V.Key("Annots")
	for i := 0; i < annots.Len(); i++ {
		a := annots.Index(i)
		if a.Kind() != gopdf.Dict {
			return nil, fmt.Errorf("annotation %d does not resolve to a dictionary", i)
		}
		annot := Annotation{
			Subtype:  a.Key("Subtype").Name(),
			Contents: a.Key("Contents").RawString(),
		}
		rect := a.Key("Rect")
		if rect.Len() == 4 {
			annot.Rect = Rect{
				X0: rect.Index(0).Float64(),
				Y0: rect.Index(1).Float64(),
				X1: rect.Index(2).Float64(),
				Y1: rect.Index(3).Float64(),
			}
		}
		action := a.Key("A")
		if action.Key("S").Name() == "URI" {
			annot.URI = action.Key("URI").RawString()
		}
		p.annotations = append(p.annotations, annot)
	}

	return p, nil
}

// GetPageNumber returns the page number (1-based)
func (p *DsliPakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *DsliPakPage) GetWidth() float64 {
	return p.mediaBox.Width()
}

// GetHeight returns the page height
func (p *DsliPakPage) GetHeight() float64 {
	return p.mediaBox.Height()
}

// GetRotation returns the page rotation in degrees
func (p *DsliPakPage) GetRotation() int {
	return p.rotation
}

// GetMediaBox returns the page media box
func (p *DsliPakPage) GetMediaBox() Rect {
	return p.mediaBox
}

// Annotations returns the page annotations
func (p *DsliPakPage) Annotations() []Annotation {
	return p.annotations
}
