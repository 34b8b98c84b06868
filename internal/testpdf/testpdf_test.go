package testpdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestBuildXRefOffsets(t *testing.T) {
	for _, opts := range []Options{
		{},
		{Pages: 1},
		{Pages: 3, Links: 2},
		{Pages: 2, Links: 2, IndirectAnnots: true, Rotate: 90},
		{Pages: 3, Links: 1, SharedAnnots: true},
	} {
		data := Build(opts)
		if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
			t.Fatalf("%+v: missing header", opts)
		}

		start := bytes.LastIndex(data, []byte("startxref\n"))
		if start < 0 {
			t.Fatalf("%+v: missing startxref", opts)
		}
		fields := strings.Fields(string(data[start:]))
		xref, err := strconv.Atoi(fields[1])
		if err != nil || !bytes.HasPrefix(data[xref:], []byte("xref\n")) {
			t.Fatalf("%+v: startxref %q does not point at the xref table", opts, fields[1])
		}

		lines := strings.Split(string(data[xref:]), "\n")
		var size int
		fmt.Sscanf(lines[1], "0 %d", &size)
		for num := 1; num < size; num++ {
			entry := lines[2+num]
			if strings.HasSuffix(entry, "f\r") {
				continue
			}
			off, _ := strconv.Atoi(entry[:10])
			if want := fmt.Sprintf("%d 0 obj\n", num); !bytes.HasPrefix(data[off:], []byte(want)) {
				t.Errorf("%+v: object %d offset %d points at %q", opts, num, off, data[off:off+10])
			}
		}
	}
}
