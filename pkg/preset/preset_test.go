package preset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.Name != DefaultName || d.URL != "https://example.com" {
		t.Errorf("Default() = %+v", d)
	}
	if d.X1 != 242.70 || d.Y1 != 191.00 || d.X2 != 266.30 || d.Y2 != 207.30 {
		t.Errorf("Default() coordinates = %v %v %v %v", d.X1, d.Y1, d.X2, d.Y2)
	}
}

func TestLoad(t *testing.T) {
	const doc = `
presets:
  - name: footer
    url: https://example.com/footer
    x1: 10
    y1: 10
    x2: 60
    y2: 20
  - name: banner
    url: https://example.com/banner
    x1: 0
    y1: 0
    x2: 297
    y2: 15.5
    origin: top-left
`
	set, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{"banner", "default", "footer"}, set.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	want := Preset{
		Name:   "banner",
		URL:    "https://example.com/banner",
		X2:     297,
		Y2:     15.5,
		Origin: pdf.OriginTopLeft,
	}
	got, err := set.Get("banner")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	if footer, _ := set.Get("footer"); footer.Origin != pdf.OriginBottomLeft {
		t.Errorf("footer origin = %v, want bottom-left", footer.Origin)
	}
}

func TestLoadOverridesDefault(t *testing.T) {
	set, err := Load(strings.NewReader("presets:\n  - name: default\n    url: https://other.example\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, _ := set.Get(DefaultName); got.URL != "https://other.example" {
		t.Errorf("default URL = %q", got.URL)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"duplicate", "presets:\n  - {name: a, url: u}\n  - {name: a, url: v}\n", "duplicate preset"},
		{"no name", "presets:\n  - {url: u}\n", "has no name"},
		{"no url", "presets:\n  - {name: a}\n", "has no url"},
		{"bad origin", "presets:\n  - {name: a, url: u, origin: center}\n", "unknown origin"},
		{"unknown field", "presets:\n  - {name: a, url: u, colour: red}\n", "failed to parse"},
		{"not yaml", "presets: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Defaults().Get("missing")
	if err == nil || !strings.Contains(err.Error(), DefaultName) {
		t.Errorf("Get() error = %v, want list of known presets", err)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		path, suffix, want string
	}{
		{"report.pdf", DefaultSuffix, "report_link.pdf"},
		{"dir/report.PDF", DefaultSuffix, "dir/report_link.PDF"},
		{"archive.v2/report", DefaultSuffix, "archive.v2/report_link"},
		{"a.b.pdf", "-x", "a.b-x.pdf"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.path, tt.suffix); got != tt.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tt.path, tt.suffix, got, tt.want)
		}
	}
}
