package loupe

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// scalePrecision is the number of decimal places kept by the rounding policy.
const scalePrecision = 2

// Transform is a uniform scale followed by a translation, in container-local
// pixels. Content point p is drawn at p*Scale + (TranslateX, TranslateY).
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// IdentityTransform is the native-size, unpanned view.
var IdentityTransform = Transform{Scale: 1}

// IsIdentity reports whether t is exactly (1, 0, 0).
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] for t.
//
//	| a  c  tx |   | S  0  Tx |
//	| b  d  ty | = | 0  S  Ty |
//	| 0  0   1 |   | 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	return [6]float64{t.Scale, 0, 0, t.Scale, t.TranslateX, t.TranslateY}
}

// ToContent maps a container-local point to content coordinates.
func (t Transform) ToContent(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix()), x, y)
}

// ToContainer maps a content point to container-local coordinates.
func (t Transform) ToContainer(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(), x, y)
}

// ZoomAt rescales t to newScale while keeping the content point under the
// focal point (fx, fy) in place. The focal point is container-local.
//
//	ratio = S' / S
//	T'    = F - ratio * (F - T)
//
// A non-positive current scale has no content point to preserve, so the
// translation is kept as is.
func ZoomAt(t Transform, newScale, fx, fy float64) Transform {
	if t.Scale <= 0 {
		return Transform{Scale: newScale, TranslateX: t.TranslateX, TranslateY: t.TranslateY}
	}
	ratio := newScale / t.Scale
	return Transform{
		Scale:      newScale,
		TranslateX: fx - ratio*(fx-t.TranslateX),
		TranslateY: fy - ratio*(fy-t.TranslateY),
	}
}

// Pan returns t translated by (dx, dy) from the origin translation (ox, oy).
func Pan(t Transform, ox, oy, dx, dy float64) Transform {
	return Transform{Scale: t.Scale, TranslateX: ox + dx, TranslateY: oy + dy}
}

// clampScale restricts s to [min, max].
func clampScale(s, min, max float64) float64 {
	return math.Max(min, math.Min(s, max))
}

// roundScale rounds s to two decimal places so repeated increments cannot
// accumulate drift.
func roundScale(s float64) float64 {
	return scalar.Round(s, scalePrecision)
}

// sign returns -1, 0 or 1.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// distance returns the Euclidean distance between two points.
func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
