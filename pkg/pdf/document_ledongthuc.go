package pdf

import (
	"bytes"
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	reader *lpdf.Reader
	pages  []Page
}

// OpenLedongthuc parses data using the ledongthuc/pdf library
func OpenLedongthuc(data []byte) (doc Document, err error) {
	if _, err := Sniff(data); err != nil {
		return nil, err
	}

	// the reader panics on some malformed input instead of returning errors
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("failed to open PDF with ledongthuc: %v", r)
		}
	}()

	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	d := &LedongthucDocument{reader: r}
	if err := d.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}
	return d, nil
}

// initializePages initializes all pages in the document
func (d *LedongthucDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := NewLedongthucPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// Backend implements the Document interface
func (d *LedongthucDocument) Backend() Backend {
	return BackendLedongthuc
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	pageNumber  int
	mediaBox    Rect
	rotation    int
	annotations []Annotation
}

// NewLedongthucPage creates a new page using ledongthuc/pdf
func NewLedongthucPage(reader *lpdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	p := &LedongthucPage{
		pageNumber: pageNumber,
		mediaBox:   DefaultMediaBox,
	}

	// MediaBox and Rotate are inheritable from the page tree
	mediaBoxFound, rotateFound := false, false
	for node := page.V; !node.IsNull(); node = node.Key("Parent") {
		if mb := node.Key("MediaBox"); !mediaBoxFound && mb.Kind() == lpdf.Array && mb.Len() == 4 {
			p.mediaBox = NewRect(
				mb.Index(0).Float64(),
				mb.Index(1).Float64(),
				mb.Index(2).Float64(),
				mb.Index(3).Float64(),
			)
			mediaBoxFound = true
		}
		if rot := node.Key("Rotate"); !rotateFound && rot.Kind() == lpdf.Integer {
			p.rotation = int(rot.Int64())
			rotateFound = true
		}
		if mediaBoxFound && rotateFound {
			break
		}
	}

	annots := page.V.Key("Annots")
	for i := 0; i < annots.Len(); i++ {
		a := annots.Index(i)
		if a.Kind() != lpdf.Dict {
			return nil, fmt.Errorf("annotation %d does not resolve to a dictionary", i)
		}
		annot := Annotation{
			Subtype:  a.Key("Subtype").Name(),
			Contents: a.Key("Contents").RawString(),
		}
		if rect := a.Key("Rect"); rect.Len() == 4 {
			annot.Rect = Rect{
				X0: rect.Index(0).Float64(),
				Y0: rect.Index(1).Float64(),
				X1: rect.Index(2).Float64(),
				Y1: rect.Index(3).Float64(),
			}
		}
		if action := a.Key("A"); action.Key("S").Name() == "URI" {
			annot.URI = action.Key("URI").RawString()
		}
		p.annotations = append(p.annotations, annot)
	}

	return p, nil
}

// GetPageNumber returns the page number (1-based)
func (p *LedongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *LedongthucPage) GetWidth() float64 {
	return p.mediaBox.Width()
}

// GetHeight returns the page height
func (p *LedongthucPage) GetHeight() float64 {
	return p.mediaBox.Height()
}

// GetRotation returns the page rotation in degrees
func (p *LedongthucPage) GetRotation() int {
	return p.rotation
}

// GetMediaBox returns the page media box
func (p *LedongthucPage) GetMediaBox() Rect {
	return p.mediaBox
}

// Annotations returns the page annotations
func (p *LedongthucPage) Annotations() []Annotation {
	return p.annotations
}
