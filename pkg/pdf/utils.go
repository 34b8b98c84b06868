package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Tolerance for floating point comparisons of coordinates written to and
// read back from a file, in points.
const FloatTolerance = 0.01

func numberOf(o types.Object) (float64, bool) {
	switch v := o.(type) {
	case types.Float:
		return float64(v), true
	case types.Integer:
		return float64(v), true
	}
	return 0, false
}

// stringOf returns the bytes of a string object with escapes resolved
func stringOf(o types.Object) (string, error) {
	switch v := o.(type) {
	case types.StringLiteral:
		b, err := types.Unescape(string(v))
		if err != nil {
			return "", err
		}
		return string(b), nil
	case types.HexLiteral:
		b, err := v.Bytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("expected string, got %T", o)
}

// LinkCount returns the number of URI links among annots
func LinkCount(annots []Annotation) int {
	n := 0
	for _, a := range annots {
		if a.IsLink() {
			n++
		}
	}
	return n
}
