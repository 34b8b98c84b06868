// Package units converts physical lengths into PDF user space units.
package units

// PointsPerMM is the number of PDF points (1/72 inch) in one millimetre,
// rounded to six significant figures.
const PointsPerMM = 2.83465

// ToPoints converts a length in millimetres to points.
// Negative and zero lengths are converted arithmetically.
func ToPoints(mm float64) float64 {
	return mm * PointsPerMM
}

// ToMillimetres converts a length in points back to millimetres
func ToMillimetres(pt float64) float64 {
	return pt / PointsPerMM
}
