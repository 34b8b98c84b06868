package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUPage implements the Page interface using pdfcpu
type PDFCPUPage struct {
	ctx         *model.Context
	pageNumber  int
	pageDict    types.Dict
	mediaBox    Rect
	rotation    int
	annotations []Annotation
	content     []byte
}

// NewPDFCPUPage creates a new page using pdfcpu context
func NewPDFCPUPage(ctx *model.Context, pageNumber int) (*PDFCPUPage, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}

	if pageNumber < 1 || pageNumber > ctx.PageCount {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", pageNumber, ctx.PageCount)
	}

	// Get page dictionary and inherited attributes
	pageDict, _, attrs, err := ctx.PageDict(pageNumber, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	page := &PDFCPUPage{
		ctx:        ctx,
		pageNumber: pageNumber,
		pageDict:   pageDict,
		mediaBox:   DefaultMediaBox,
	}

	if attrs != nil {
		if attrs.MediaBox != nil {
			page.mediaBox = RectFromPDFCPU(attrs.MediaBox)
		}
		page.rotation = attrs.Rotate
	}
	if rot, ok := pageDict["Rotate"].(types.Integer); ok {
		page.rotation = int(rot)
	}

	annots, err := ReadAnnotations(ctx, pageDict)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations: %w", err)
	}
	page.annotations = annots

	if err := page.extractContent(); err != nil {
		return nil, fmt.Errorf("failed to extract content: %w", err)
	}

	return page, nil
}

// extractContent decodes and concatenates the page content streams
func (p *PDFCPUPage) extractContent() error {
	contents := p.pageDict["Contents"]
	if contents == nil {
		return nil
	}

	var refs []types.Object
	switch v := contents.(type) {
	case types.IndirectRef, *types.IndirectRef:
		refs = append(refs, v)
	case types.Array:
		refs = v
	default:
		return fmt.Errorf("unexpected /Contents type %T", contents)
	}

	var streams [][]byte
	for _, ref := range refs {
		if ir, ok := ref.(*types.IndirectRef); ok {
			ref = *ir
		}
		streamDict, _, err := p.ctx.DereferenceStreamDict(ref)
		if err != nil {
			return fmt.Errorf("failed to dereference stream: %w", err)
		}
		if streamDict == nil {
			continue
		}
		if err := streamDict.Decode(); err != nil {
			return fmt.Errorf("failed to decode stream: %w", err)
		}
		streams = append(streams, streamDict.Content)
	}

	p.content = bytes.Join(streams, []byte("\n"))
	return nil
}

// GetPageNumber returns the page number (1-based)
func (p *PDFCPUPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *PDFCPUPage) GetWidth() float64 {
	return p.mediaBox.Width()
}

// GetHeight returns the page height
func (p *PDFCPUPage) GetHeight() float64 {
	return p.mediaBox.Height()
}

// GetRotation returns the page rotation in degrees
func (p *PDFCPUPage) GetRotation() int {
	return p.rotation
}

// GetMediaBox returns the page media box
func (p *PDFCPUPage) GetMediaBox() Rect {
	return p.mediaBox
}

// Annotations returns the page annotations
func (p *PDFCPUPage) Annotations() []Annotation {
	return p.annotations
}

// Content returns the decoded content streams of the page, joined by newlines
func (p *PDFCPUPage) Content() []byte {
	return p.content
}

// ReadAnnotations resolves the /Annots entry of a page dictionary.
// Every entry must resolve to a dictionary.
func ReadAnnotations(ctx *model.Context, pageDict types.Dict) ([]Annotation, error) {
	obj, found := pageDict["Annots"]
	if !found || obj == nil {
		return nil, nil
	}

	arr, err := ctx.DereferenceArray(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference /Annots: %w", err)
	}

	res := make([]Annotation, 0, len(arr))
	for i, item := range arr {
		d, err := ctx.DereferenceDict(item)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		if d == nil {
			return nil, fmt.Errorf("annotation %d does not resolve to a dictionary", i)
		}
		annot, err := annotationFromDict(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("annotation %d: %w", i, err)
		}
		res = append(res, annot)
	}
	return res, nil
}

func annotationFromDict(ctx *model.Context, d types.Dict) (Annotation, error) {
	var annot Annotation

	if subtype, ok := d["Subtype"].(types.Name); ok {
		annot.Subtype = string(subtype)
	}

	rectArr, err := ctx.DereferenceArray(d["Rect"])
	if err != nil {
		return annot, fmt.Errorf("failed to dereference /Rect: %w", err)
	}
	if len(rectArr) == 4 {
		var c [4]float64
		for i, v := range rectArr {
			o, err := ctx.Dereference(v)
			if err != nil {
				return annot, err
			}
			f, ok := numberOf(o)
			if !ok {
				return annot, fmt.Errorf("non-numeric /Rect entry %v", o)
			}
			c[i] = f
		}
		annot.Rect = Rect{X0: c[0], Y0: c[1], X1: c[2], Y1: c[3]}
	}

	if contents, err := ctx.Dereference(d["Contents"]); err == nil && contents != nil {
		annot.Contents, _ = stringOf(contents)
	}

	if d["A"] != nil {
		action, err := ctx.DereferenceDict(d["A"])
		if err != nil {
			return annot, fmt.Errorf("failed to dereference /A: %w", err)
		}
		if s, ok := action["S"].(types.Name); ok && s == "URI" {
			uri, err := ctx.Dereference(action["URI"])
			if err != nil {
				return annot, err
			}
			if annot.URI, err = stringOf(uri); err != nil {
				return annot, fmt.Errorf("bad /URI: %w", err)
			}
		}
	}

	return annot, nil
}

// RectFromPDFCPU converts a pdfcpu rectangle, normalized
func RectFromPDFCPU(r *types.Rectangle) Rect {
	return NewRect(r.LL.X, r.LL.Y, r.UR.X, r.UR.Y)
}
