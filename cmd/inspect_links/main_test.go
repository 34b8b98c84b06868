package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdflink-golang/internal/testpdf"
	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

func TestInspect(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	data := testpdf.Build(testpdf.Options{Pages: 2, Links: 2})
	if failed := inspect(&out, logger, data); failed != 0 {
		t.Fatalf("inspect() failed with %d backends", failed)
	}

	text := out.String()
	for _, b := range pdf.Backends {
		if !strings.Contains(text, "=== "+string(b)+" ===") {
			t.Errorf("output lacks section for %s", b)
		}
	}
	for _, want := range []string{"Pages: 2", "Annotations: 2 (2 links)", testpdf.ExistingURI(1), "[50.00 70.00 250.00 90.00] pt"} {
		if got := strings.Count(text, want); got != len(pdf.Backends) {
			t.Errorf("%q appears %d times, want %d", want, got, len(pdf.Backends))
		}
	}
}

func TestInspectNotPDF(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	if failed := inspect(&out, logger, []byte("plain text")); failed != len(pdf.Backends) {
		t.Errorf("inspect() failed = %d, want %d", failed, len(pdf.Backends))
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
