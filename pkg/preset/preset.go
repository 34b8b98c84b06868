// Package preset holds named link placements that can be reused across
// documents, loaded from YAML.
package preset

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
)

// DefaultName is the name of the built-in preset
const DefaultName = "default"

// DefaultSuffix is appended to the base name of the input file
const DefaultSuffix = "_link"

// Preset is a link target and placement. Coordinates are in millimetres.
type Preset struct {
	Name   string     `yaml:"name"`
	URL    string     `yaml:"url"`
	X1     float64    `yaml:"x1"`
	Y1     float64    `yaml:"y1"`
	X2     float64    `yaml:"x2"`
	Y2     float64    `yaml:"y2"`
	Origin pdf.Origin `yaml:"-"`
}

// Set maps preset names to presets
type Set map[string]Preset

// file is the on-disk layout
type file struct {
	Presets []struct {
		Preset `yaml:",inline"`
		Origin string `yaml:"origin"`
	} `yaml:"presets"`
}

// Default returns the built-in preset
func Default() Preset {
	return Preset{
		Name:   DefaultName,
		URL:    "https://example.com",
		X1:     242.70,
		Y1:     191.00,
		X2:     266.30,
		Y2:     207.30,
		Origin: pdf.OriginBottomLeft,
	}
}

// Defaults returns a set holding only the built-in preset
func Defaults() Set {
	d := Default()
	return Set{d.Name: d}
}

// Load parses a YAML preset file:
//
//	presets:
//	  - name: footer
//	    url: https://example.com/footer
//	    x1: 10
//	    y1: 10
//	    x2: 60
//	    y2: 20
//	    origin: top-left
//
// The built-in preset is included unless the file redefines it.
func Load(r io.Reader) (Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}

	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	set := Defaults()
	seen := make(map[string]bool)
	for i, entry := range f.Presets {
		p := entry.Preset
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("preset %d has no name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true

		if p.URL == "" {
			return nil, fmt.Errorf("preset %q has no url", p.Name)
		}
		if p.Origin, err = pdf.ParseOrigin(entry.Origin); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		set[p.Name] = p
	}
	return set, nil
}

// Names returns the preset names in sorted order
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named preset
func (s Set) Get(name string) (Preset, error) {
	p, ok := s[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (known: %s)", name, strings.Join(s.Names(), ", "))
	}
	return p, nil
}

// OutputName derives the output file name from the input path by appending
// suffix to the base name, keeping the extension:
// "dir/report.pdf" becomes "dir/report_link.pdf".
func OutputName(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
