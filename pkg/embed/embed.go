// Package embed adds a clickable URI link annotation to the first page of
// an existing PDF document.
//
// The link and its URI action become new indirect objects in pdfcpu's
// object table. Apart from the /Annots array of page 1 no existing object
// is rewritten before the table is serialized into a fresh buffer.
//
// Each call owns its document from parse to serialization, so calls on
// independent inputs may run concurrently.
package embed

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
	"github.com/pyhub-apps/pdflink-golang/pkg/units"
)

// TargetPage is the page that receives the link (1-based)
const TargetPage = 1

// Request describes the link to embed. Coordinates are in millimetres;
// the corners may be given in any order.
type Request struct {
	X1, Y1 float64
	X2, Y2 float64
	URL    string
}

// Result is the outcome of a successful Embed call.
type Result struct {
	// PDF is the serialized document
	PDF []byte

	// Rect is the link rectangle in PDF user space
	Rect pdf.Rect

	// Page is the page number the link was attached to
	Page int

	// Annotation and Action are the object numbers of the new objects
	Annotation int
	Action     int

	// Annotations is the number of annotations on the page after embedding
	Annotations int
}

// EmbedLink returns a copy of the document in data with a link to url
// covering the rectangle (x1, y1)-(x2, y2), given in millimetres, on the
// first page.
func EmbedLink(data []byte, x1, y1, x2, y2 float64, url string, opts ...Option) ([]byte, error) {
	res, err := Embed(data, Request{X1: x1, Y1: y1, X2: x2, Y2: y2, URL: url}, opts...)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

// Embed adds the link described by req to the first page of the document
// in data. On failure the returned error is an *Error and no output is
// produced.
func Embed(data []byte, req Request, opts ...Option) (*Result, error) {
	c := newConfig(opts)

	ctx, err := pdf.ReadContext(data, pdf.NewConfiguration(c.XRefStreams))
	if err != nil {
		return nil, malformed("parse", err)
	}
	if ctx.PageCount == 0 {
		return nil, &Error{Kind: ErrEmptyDocument, Op: "select page"}
	}
	if err := pdf.ValidateContext(ctx); err != nil {
		return nil, malformed("validate", err)
	}
	pageCount := ctx.PageCount

	target, err := loadPage(ctx, TargetPage)
	if err != nil {
		return nil, malformed("select page", err)
	}

	rect := RectFor(req, c.Origin, target.mediaBox)

	annotRef, actionRef, err := attachLink(ctx, target, rect, req.URL, c.Border)
	if err != nil {
		return nil, failed("attach annotation", err)
	}

	out, err := write(ctx)
	if err != nil {
		return nil, failed("serialize", err)
	}

	want := expectation{
		pageCount: pageCount,
		annotations: append(target.annotations, pdf.Annotation{
			Subtype: "Link",
			Rect:    rect,
			URI:     req.URL,
		}),
	}
	if err := verify(out, c.Verify, want); err != nil {
		return nil, failed("verify", err)
	}

	return &Result{
		PDF:         out,
		Rect:        rect,
		Page:        TargetPage,
		Annotation:  int(annotRef.ObjectNumber),
		Action:      int(actionRef.ObjectNumber),
		Annotations: len(want.annotations),
	}, nil
}

// RectFor converts the millimetre corners of req into a normalized
// rectangle in the user space of a page with the given media box.
func RectFor(req Request, origin pdf.Origin, mediaBox pdf.Rect) pdf.Rect {
	r := pdf.Rect{
		X0: units.ToPoints(req.X1),
		Y0: units.ToPoints(req.Y1),
		X1: units.ToPoints(req.X2),
		Y1: units.ToPoints(req.Y2),
	}
	return origin.ToUserSpace(r, mediaBox)
}

// page is the target page as found before any mutation
type page struct {
	dict        types.Dict
	ref         types.IndirectRef
	mediaBox    pdf.Rect
	annotations []pdf.Annotation
}

func loadPage(ctx *model.Context, number int) (*page, error) {
	dict, ref, attrs, err := ctx.PageDict(number, false)
	if err != nil {
		return nil, errors.Wrapf(err, "page %d", number)
	}
	if dict == nil || ref == nil {
		return nil, errors.Errorf("page %d not found", number)
	}

	p := &page{
		dict:     dict,
		ref:      *ref,
		mediaBox: pdf.DefaultMediaBox,
	}
	if attrs != nil && attrs.MediaBox != nil {
		p.mediaBox = pdf.RectFromPDFCPU(attrs.MediaBox)
	}

	p.annotations, err = pdf.ReadAnnotations(ctx, dict)
	if err != nil {
		return nil, errors.Wrapf(err, "page %d", number)
	}
	return p, nil
}
