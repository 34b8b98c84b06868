// Command inspect_links prints the annotations on page 1 of a PDF file as
// seen by every available parser backend.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
	"github.com/pyhub-apps/pdflink-golang/pkg/units"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect_links <pdf_file>")
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.WithError(err).Fatal("Failed to read PDF")
	}

	if failed := inspect(os.Stdout, logger, data); failed == len(pdf.Backends) {
		os.Exit(1)
	}
}

// inspect reports page 1 once per backend and returns how many backends
// could not open the document.
func inspect(w io.Writer, logger *logrus.Logger, data []byte) int {
	failed := 0
	for _, b := range pdf.Backends {
		doc, err := pdf.OpenWith(b, data)
		if err != nil {
			logger.WithError(err).WithField("backend", b).Warn("Failed to open PDF")
			failed++
			continue
		}
		report(w, doc)
		doc.Close()
	}
	return failed
}

func report(w io.Writer, doc pdf.Document) {
	fmt.Fprintf(w, "=== %s ===\n", doc.Backend())
	fmt.Fprintf(w, "Pages: %d\n", doc.PageCount())

	page, err := doc.GetPage(0)
	if err != nil {
		fmt.Fprintf(w, "No first page: %v\n\n", err)
		return
	}

	mb := page.GetMediaBox()
	fmt.Fprintf(w, "Page 1: %.2f x %.2f pt (%.1f x %.1f mm), rotation %d\n",
		page.GetWidth(), page.GetHeight(),
		units.ToMillimetres(page.GetWidth()), units.ToMillimetres(page.GetHeight()),
		page.GetRotation())
	fmt.Fprintf(w, "MediaBox: %s\n", mb)

	annots := page.Annotations()
	fmt.Fprintf(w, "Annotations: %d (%d links)\n", len(annots), pdf.LinkCount(annots))
	for i, a := range annots {
		r := a.Rect
		fmt.Fprintf(w, "  [%d] %s %s pt = [%.2f %.2f %.2f %.2f] mm",
			i, a.Subtype, r,
			units.ToMillimetres(r.X0), units.ToMillimetres(r.Y0),
			units.ToMillimetres(r.X1), units.ToMillimetres(r.Y1))
		if a.URI != "" {
			fmt.Fprintf(w, " -> %s", a.URI)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
