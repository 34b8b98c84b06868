// Command pdflink adds a clickable link to the first page of a PDF file.
//
//	pdflink -in report.pdf -url https://example.com -x1 10 -y1 10 -x2 60 -y2 20
//
// Without -out the result is written next to the input as <name>_link.pdf.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdflink-golang/pkg/embed"
	"github.com/pyhub-apps/pdflink-golang/pkg/pdf"
	"github.com/pyhub-apps/pdflink-golang/pkg/preset"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stderr, logger); err != nil {
		if err != flag.ErrHelp {
			logger.WithError(err).Error("pdflink failed")
		}
		os.Exit(1)
	}
}

type options struct {
	in, out     string
	presetName  string
	presetsFile string
	url         string
	origin      string
	x1, y1      float64
	x2, y2      float64
	verbose     bool
	verifyAll   bool
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("pdflink", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.in, "in", "", "input PDF file (required)")
	fs.StringVar(&o.out, "out", "", "output PDF file (default: <in>"+preset.DefaultSuffix+".pdf)")
	fs.StringVar(&o.presetName, "preset", preset.DefaultName, "preset name")
	fs.StringVar(&o.presetsFile, "presets", "", "YAML file with additional presets")
	fs.StringVar(&o.url, "url", "", "link target, overrides the preset")
	fs.StringVar(&o.origin, "origin", "", "coordinate origin: bottom-left or top-left, overrides the preset")
	fs.Float64Var(&o.x1, "x1", 0, "first corner x in mm, overrides the preset")
	fs.Float64Var(&o.y1, "y1", 0, "first corner y in mm, overrides the preset")
	fs.Float64Var(&o.x2, "x2", 0, "second corner x in mm, overrides the preset")
	fs.Float64Var(&o.y2, "y2", 0, "second corner y in mm, overrides the preset")
	fs.BoolVar(&o.verifyAll, "verify-all", false, "re-read the result with every backend")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if o.in == "" {
		fs.Usage()
		return nil, nil, fmt.Errorf("-in is required")
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// resolve merges the selected preset with the flags given on the command line
func resolve(o *options, set map[string]bool) (preset.Preset, error) {
	presets := preset.Defaults()
	if o.presetsFile != "" {
		f, err := os.Open(o.presetsFile)
		if err != nil {
			return preset.Preset{}, err
		}
		defer f.Close()
		if presets, err = preset.Load(f); err != nil {
			return preset.Preset{}, err
		}
	}

	p, err := presets.Get(o.presetName)
	if err != nil {
		return preset.Preset{}, err
	}

	if set["url"] {
		p.URL = o.url
	}
	if set["origin"] {
		if p.Origin, err = pdf.ParseOrigin(o.origin); err != nil {
			return preset.Preset{}, err
		}
	}
	corners := []struct {
		flag string
		dst  *float64
		val  float64
	}{
		{"x1", &p.X1, o.x1},
		{"y1", &p.Y1, o.y1},
		{"x2", &p.X2, o.x2},
		{"y2", &p.Y2, o.y2},
	}
	for _, c := range corners {
		if set[c.flag] {
			*c.dst = c.val
		}
	}
	if p.URL == "" {
		return preset.Preset{}, fmt.Errorf("no link URL given")
	}
	return p, nil
}

func run(args []string, stderr io.Writer, logger *logrus.Logger) error {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	p, err := resolve(o, set)
	if err != nil {
		return err
	}

	out := o.out
	if out == "" {
		out = preset.OutputName(o.in, preset.DefaultSuffix)
	}

	logger.WithFields(logrus.Fields{
		"input":  o.in,
		"preset": p.Name,
		"url":    p.URL,
		"origin": p.Origin,
	}).Debug("Embedding link")

	data, err := os.ReadFile(o.in)
	if err != nil {
		return err
	}

	opts := []embed.Option{embed.WithOrigin(p.Origin)}
	if o.verifyAll {
		opts = append(opts, embed.WithVerification(pdf.Backends...))
	}

	res, err := embed.Embed(data, embed.Request{X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2, URL: p.URL}, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"output":      out,
		"rect":        res.Rect.String(),
		"annotations": res.Annotations,
		"bytes":       len(res.PDF),
	}).Info("Link embedded")
	return nil
}
