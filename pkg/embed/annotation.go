package embed

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

// attachLink registers a URI action and a link annotation pointing at it
// as new indirect objects and appends the annotation to the page.
func attachLink(ctx *model.Context, p *page, rect pdf.Rect, url string, border [3]float64) (annot, action *types.IndirectRef, err error) {
	actionDict, err := newURIAction(url)
	if err != nil {
		return nil, nil, err
	}
	action, err = ctx.IndRefForNewObject(actionDict)
	if err != nil {
		return nil, nil, errors.Wrap(err, "register action")
	}

	annot, err = ctx.IndRefForNewObject(newLinkAnnotation(rect, border, p.ref, *action))
	if err != nil {
		return nil, nil, errors.Wrap(err, "register annotation")
	}

	if err := appendAnnotation(ctx, p.dict, *annot); err != nil {
		return nil, nil, err
	}
	return annot, action, nil
}

// newURIAction returns a /URI action dictionary. The URI is stored as a
// literal string holding exactly the bytes of url.
func newURIAction(url string) (types.Dict, error) {
	escaped, err := types.Escape(url)
	if err != nil {
		return nil, errors.Wrapf(err, "escape URI %q", url)
	}
	return types.Dict{
		"Type": types.Name("Action"),
		"S":    types.Name("URI"),
		"URI":  types.StringLiteral(*escaped),
	}, nil
}

func newLinkAnnotation(rect pdf.Rect, border [3]float64, pageRef, actionRef types.IndirectRef) types.Dict {
	return types.Dict{
		"Type":    types.Name("Annot"),
		"Subtype": types.Name("Link"),
		"Rect":    floatArray(rect.X0, rect.Y0, rect.X1, rect.Y1),
		"Border":  floatArray(border[:]...),
		"P":       pageRef,
		"A":       actionRef,
	}
}

func floatArray(values ...float64) types.Array {
	a := make(types.Array, 0, len(values))
	for _, v := range values {
		a = append(a, types.Float(v))
	}
	return a
}

// appendAnnotation adds ref to the /Annots array of pageDict. The page
// always ends up with a new direct array; an indirect array may be shared
// with other pages and is left as it is.
func appendAnnotation(ctx *model.Context, pageDict types.Dict, ref types.IndirectRef) error {
	obj, found := pageDict["Annots"]
	if !found || obj == nil {
		pageDict["Annots"] = types.Array{ref}
		return nil
	}

	arr, err := ctx.DereferenceArray(obj)
	if err != nil {
		return errors.Wrap(err, "resolve /Annots")
	}
	if arr == nil {
		return errors.Errorf("unexpected /Annots type %T", obj)
	}

	annots := make(types.Array, 0, len(arr)+1)
	annots = append(annots, arr...)
	pageDict["Annots"] = append(annots, ref)
	return nil
}
