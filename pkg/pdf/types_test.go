package pdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRectNormalize(t *testing.T) {
	want := Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}

	tests := []struct {
		name string
		in   Rect
	}{
		{"ordered", Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}},
		{"x swapped", Rect{X0: 3, Y0: 2, X1: 1, Y1: 4}},
		{"y swapped", Rect{X0: 1, Y0: 4, X1: 3, Y1: 2}},
		{"both swapped", Rect{X0: 3, Y0: 4, X1: 1, Y1: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != want {
				t.Errorf("Normalize() = %v, want %v", got, want)
			}
			if got := NewRect(tt.in.X0, tt.in.Y0, tt.in.X1, tt.in.Y1); got != want {
				t.Errorf("NewRect() = %v, want %v", got, want)
			}
		})
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(10, 20, 40, 60)

	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if !NewRect(5, 5, 5, 9).IsEmpty() {
		t.Error("zero-width rect is not empty")
	}
	if !r.Contains(10, 60) || r.Contains(9.9, 30) {
		t.Error("Contains() gives wrong answer at the border")
	}
	if got := r.String(); got != "[10.00 20.00 40.00 60.00]" {
		t.Errorf("String() = %q", got)
	}
	if !r.ApproxEqual(Rect{X0: 10.004, Y0: 19.996, X1: 40, Y1: 60}, FloatTolerance) {
		t.Error("ApproxEqual() rejects values within tolerance")
	}
	if r.ApproxEqual(Rect{X0: 10.1, Y0: 20, X1: 40, Y1: 60}, FloatTolerance) {
		t.Error("ApproxEqual() accepts values outside tolerance")
	}
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in      string
		want    Origin
		wantErr bool
	}{
		{"", OriginBottomLeft, false},
		{"bottom-left", OriginBottomLeft, false},
		{"pdf", OriginBottomLeft, false},
		{"top-left", OriginTopLeft, false},
		{"screen", OriginTopLeft, false},
		{"middle", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOrigin(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrigin(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrigin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, o := range []Origin{OriginBottomLeft, OriginTopLeft} {
		if got, err := ParseOrigin(o.String()); err != nil || got != o {
			t.Errorf("ParseOrigin(%q) = %v, %v", o.String(), got, err)
		}
	}
}

func TestOriginToUserSpace(t *testing.T) {
	a4 := Rect{X0: 0, Y0: 0, X1: 595, Y1: 842}
	shifted := Rect{X0: 10, Y0: 20, X1: 605, Y1: 862}

	tests := []struct {
		name     string
		origin   Origin
		in       Rect
		mediaBox Rect
		want     Rect
	}{
		{
			name:     "bottom-left is identity",
			origin:   OriginBottomLeft,
			in:       Rect{X0: 10, Y0: 20, X1: 30, Y1: 40},
			mediaBox: a4,
			want:     Rect{X0: 10, Y0: 20, X1: 30, Y1: 40},
		},
		{
			name:     "bottom-left normalizes",
			origin:   OriginBottomLeft,
			in:       Rect{X0: 30, Y0: 40, X1: 10, Y1: 20},
			mediaBox: a4,
			want:     Rect{X0: 10, Y0: 20, X1: 30, Y1: 40},
		},
		{
			name:     "top-left flips y",
			origin:   OriginTopLeft,
			in:       Rect{X0: 10, Y0: 20, X1: 30, Y1: 40},
			mediaBox: a4,
			want:     Rect{X0: 10, Y0: 802, X1: 30, Y1: 822},
		},
		{
			name:     "top-left honours media box offset",
			origin:   OriginTopLeft,
			in:       Rect{X0: 10, Y0: 20, X1: 30, Y1: 40},
			mediaBox: shifted,
			want:     Rect{X0: 20, Y0: 822, X1: 40, Y1: 842},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.origin.ToUserSpace(tt.in, tt.mediaBox)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("ToUserSpace() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkCount(t *testing.T) {
	annots := []Annotation{
		{Subtype: "Link", URI: "https://a.example"},
		{Subtype: "Link"},
		{Subtype: "Text", URI: "https://b.example"},
		{Subtype: "Link", URI: "https://c.example"},
	}
	if got := LinkCount(annots); got != 2 {
		t.Errorf("LinkCount() = %d, want 2", got)
	}
}
