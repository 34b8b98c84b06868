package embed

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

// write serializes the full object table of ctx into a new buffer
func write(ctx *model.Context) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Errorf("pdfcpu panic: %v", r)
		}
	}()

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, errors.Wrap(err, "write context")
	}
	if buf.Len() == 0 {
		return nil, errors.New("writer produced no output")
	}
	return buf.Bytes(), nil
}

// expectation is what a re-read of the serialized document has to show
type expectation struct {
	pageCount   int
	annotations []pdf.Annotation
}

// verify re-reads out with every backend and compares page 1 against want
func verify(out []byte, backends []pdf.Backend, want expectation) error {
	for _, b := range backends {
		doc, err := pdf.OpenWith(b, out)
		if err != nil {
			return errors.Wrapf(err, "%s: re-read", b)
		}
		err = check(doc, want)
		doc.Close()
		if err != nil {
			return errors.Wrapf(err, "%s", b)
		}
	}
	return nil
}

func check(doc pdf.Document, want expectation) error {
	if n := doc.PageCount(); n != want.pageCount {
		return errors.Errorf("page count %d, expected %d", n, want.pageCount)
	}

	page, err := doc.GetPage(0)
	if err != nil {
		return errors.Wrap(err, "page 1")
	}

	got := page.Annotations()
	if len(got) != len(want.annotations) {
		return errors.Errorf("page 1 has %d annotations, expected %d", len(got), len(want.annotations))
	}
	for i := range got {
		if !sameAnnotation(got[i], want.annotations[i]) {
			return errors.Errorf("annotation %d is %s %s %q, expected %s %s %q", i,
				got[i].Subtype, got[i].Rect, got[i].URI,
				want.annotations[i].Subtype, want.annotations[i].Rect, want.annotations[i].URI)
		}
	}
	return nil
}

func sameAnnotation(a, b pdf.Annotation) bool {
	return a.Subtype == b.Subtype &&
		a.URI == b.URI &&
		a.Rect.ApproxEqual(b.Rect, pdf.FloatTolerance)
}
