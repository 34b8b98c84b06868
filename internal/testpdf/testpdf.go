// Package testpdf builds small, well-formed PDF files in memory for tests.
package testpdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Options describe the document to build.
type Options struct {
	// Pages is the number of pages. Zero builds a document with an empty
	// page tree.
	Pages int

	// Links is the number of pre-existing link annotations on page 1.
	Links int

	// IndirectAnnots stores the /Annots array of page 1 as its own object
	// instead of inline in the page dictionary.
	IndirectAnnots bool

	// SharedAnnots makes every other page refer to the indirect /Annots
	// object of page 1 as well. It implies IndirectAnnots.
	SharedAnnots bool

	// MediaBox is inherited by all pages from the page tree root.
	// The zero value selects A4 landscape.
	MediaBox [4]float64

	// Rotate is set on page 1 when non-zero.
	Rotate int
}

// A4Landscape is the default media box
var A4Landscape = [4]float64{0, 0, 842, 595}

// ExistingURI returns the URI of the i-th pre-existing link on page 1
func ExistingURI(i int) string {
	return fmt.Sprintf("https://existing.example/%d", i)
}

// ExistingRect returns the rectangle of the i-th pre-existing link on page 1
func ExistingRect(i int) [4]float64 {
	y := float64(40 + 30*i)
	return [4]float64{50, y, 250, y + 20}
}

// PageText returns the text drawn on page n (1-based)
func PageText(n int) string {
	return fmt.Sprintf("Page %d", n)
}

// Build returns a PDF 1.4 file with a classic xref table
func Build(opts Options) []byte {
	mediaBox := opts.MediaBox
	if mediaBox == [4]float64{} {
		mediaBox = A4Landscape
	}

	b := &builder{}

	// Fixed object numbers: 1 catalog, 2 page tree, 3 font.
	// Each page takes two numbers (page, contents), followed by the
	// annotation objects of page 1.
	const catalog, pages, font = 1, 2, 3
	pageObj := func(i int) int { return 4 + 2*i }
	next := 4 + 2*opts.Pages

	annotsRef := 0
	if (opts.IndirectAnnots || opts.SharedAnnots) && opts.Links > 0 {
		annotsRef = next
		next++
	}
	linkObj := func(i int) int { return next + 2*i }

	b.add(catalog, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := &bytes.Buffer{}
	for i := 0; i < opts.Pages; i++ {
		fmt.Fprintf(kids, " %d 0 R", pageObj(i))
	}
	b.add(pages, fmt.Sprintf("<< /Type /Pages /Kids [%s ] /Count %d /MediaBox [%g %g %g %g] >>",
		kids.String(), opts.Pages, mediaBox[0], mediaBox[1], mediaBox[2], mediaBox[3]))

	b.add(font, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var links []string
	for i := 0; i < opts.Links; i++ {
		links = append(links, fmt.Sprintf("%d 0 R", linkObj(i)))
	}
	annots := fmt.Sprintf("[%s]", strings.Join(links, " "))

	for i := 0; i < opts.Pages; i++ {
		page := &bytes.Buffer{}
		fmt.Fprintf(page, "<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R",
			pageObj(i)+1)
		if annotsRef != 0 && i > 0 && opts.SharedAnnots {
			fmt.Fprintf(page, " /Annots %d 0 R", annotsRef)
		}
		if i == 0 && opts.Links > 0 {
			if annotsRef != 0 {
				fmt.Fprintf(page, " /Annots %d 0 R", annotsRef)
			} else {
				fmt.Fprintf(page, " /Annots %s", annots)
			}
		}
		if i == 0 && opts.Rotate != 0 {
			fmt.Fprintf(page, " /Rotate %d", opts.Rotate)
		}
		page.WriteString(" >>")
		b.add(pageObj(i), page.String())

		content := fmt.Sprintf("BT /F1 24 Tf 72 %g Td (%s) Tj ET", mediaBox[3]-100, PageText(i+1))
		b.add(pageObj(i)+1, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	if annotsRef != 0 {
		b.add(annotsRef, annots)
	}
	for i := 0; i < opts.Links; i++ {
		r := ExistingRect(i)
		b.add(linkObj(i), fmt.Sprintf("<< /Type /Annot /Subtype /Link /Rect [%g %g %g %g] /Border [0 0 0] /A %d 0 R >>",
			r[0], r[1], r[2], r[3], linkObj(i)+1))
		b.add(linkObj(i)+1, fmt.Sprintf("<< /Type /Action /S /URI /URI (%s) >>", ExistingURI(i)))
	}

	return b.finish(catalog)
}

type builder struct {
	buf     bytes.Buffer
	offsets map[int]int
	max     int
}

func (b *builder) add(num int, body string) {
	if b.buf.Len() == 0 {
		b.buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	}
	if b.offsets == nil {
		b.offsets = make(map[int]int)
	}
	b.offsets[num] = b.buf.Len()
	if num > b.max {
		b.max = num
	}
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

func (b *builder) finish(root int) []byte {
	xref := b.buf.Len()
	size := b.max + 1
	fmt.Fprintf(&b.buf, "xref\n0 %d\n0000000000 65535 f\r\n", size)
	for i := 1; i < size; i++ {
		if off, ok := b.offsets[i]; ok {
			fmt.Fprintf(&b.buf, "%010d 00000 n\r\n", off)
		} else {
			b.buf.WriteString("0000000000 65535 f\r\n")
		}
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, root, xref)
	return b.buf.Bytes()
}
