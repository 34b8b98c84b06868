package pdf

import (
	"fmt"
	"math"
)

// Rect represents a rectangle in PDF user space (points).
// The origin is the bottom-left corner of the page, y increases upward.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Bottom
	X1 float64 // Right
	Y1 float64 // Top
}

// NewRect returns the normalized rectangle spanned by two corners
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X0: x1, Y0: y1, X1: x2, Y1: y2}.Normalize()
}

// Normalize returns a copy of r with X1 >= X0 and Y1 >= Y0
func (r Rect) Normalize() Rect {
	return Rect{
		X0: math.Min(r.X0, r.X1),
		Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1),
		Y1: math.Max(r.Y0, r.Y1),
	}
}

// Width returns the width of the rectangle
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rectangle has zero area
func (r Rect) IsEmpty() bool {
	n := r.Normalize()
	return n.Width() == 0 || n.Height() == 0
}

// Contains checks if a point is within the rectangle
func (r Rect) Contains(x, y float64) bool {
	n := r.Normalize()
	return x >= n.X0 && x <= n.X1 && y >= n.Y0 && y <= n.Y1
}

// ApproxEqual reports whether both rectangles agree on every
// coordinate within tol.
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return math.Abs(r.X0-other.X0) <= tol &&
		math.Abs(r.Y0-other.Y0) <= tol &&
		math.Abs(r.X1-other.X1) <= tol &&
		math.Abs(r.Y1-other.Y1) <= tol
}

// Array returns the coordinates in PDF /Rect order
func (r Rect) Array() [4]float64 {
	return [4]float64{r.X0, r.Y0, r.X1, r.Y1}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.X0, r.Y0, r.X1, r.Y1)
}

// Origin selects how caller-supplied coordinates map onto PDF user space.
type Origin int

const (
	// OriginBottomLeft treats coordinates as PDF user space:
	// origin at the bottom-left, y increasing upward.
	OriginBottomLeft Origin = iota

	// OriginTopLeft measures coordinates from the top-left corner of the
	// page media box with y increasing downward, like an on-screen preview.
	OriginTopLeft
)

func (o Origin) String() string {
	switch o {
	case OriginBottomLeft:
		return "bottom-left"
	case OriginTopLeft:
		return "top-left"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// ParseOrigin parses the names produced by Origin.String
func ParseOrigin(s string) (Origin, error) {
	switch s {
	case "", "bottom-left", "pdf":
		return OriginBottomLeft, nil
	case "top-left", "screen":
		return OriginTopLeft, nil
	}
	return 0, fmt.Errorf("unknown origin %q", s)
}

// ToUserSpace maps a rectangle given in the o convention onto PDF user
// space of a page with the given media box. The result is normalized.
func (o Origin) ToUserSpace(r Rect, mediaBox Rect) Rect {
	if o == OriginTopLeft {
		r = Rect{
			X0: mediaBox.X0 + r.X0,
			Y0: mediaBox.Y1 - r.Y0,
			X1: mediaBox.X0 + r.X1,
			Y1: mediaBox.Y1 - r.Y1,
		}
	}
	return r.Normalize()
}

// Annotation represents an annotation found on a page
type Annotation struct {
	Subtype  string
	Rect     Rect
	URI      string
	Contents string
}

// IsLink reports whether the annotation is a URI link
func (a Annotation) IsLink() bool {
	return a.Subtype == "Link" && a.URI != ""
}

// Backend names a PDF reading implementation.
type Backend string

const (
	BackendPDFCPU     Backend = "pdfcpu"
	BackendLedongthuc Backend = "ledongthuc"
	BackendDslipak    Backend = "dslipak"
)

// Backends lists all available backends in fallback order
var Backends = []Backend{BackendLedongthuc, BackendDslipak, BackendPDFCPU}

// DefaultMediaBox is used when a page carries no media box (US Letter)
var DefaultMediaBox = Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
