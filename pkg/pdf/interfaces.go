package pdf

// Document represents an opened PDF document, read-only
type Document interface {
	// Backend returns the name of the implementation reading the document
	Backend() Backend

	// GetPages returns all pages in the document
	GetPages() []Page

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// GetRotation returns the page rotation in degrees
	GetRotation() int

	// GetMediaBox returns the page media box in user space
	GetMediaBox() Rect

	// Annotations returns the page annotations in /Annots order
	Annotations() []Annotation
}
