package frames

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular is returned when inverting a transform whose determinant is
// (numerically) zero, e.g. one that scales by zero.
var ErrSingular = errors.New("frames: singular transform")

// singularEpsilon is the determinant magnitude below which a transform is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Affine is a 2D affine map stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Affine is a value type. Every operation returns a new transform.
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns T(x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Rotate returns R(theta). Positive angles turn +X towards +Y, which is
// clockwise on a y-down screen.
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Scale returns the uniform scale S(s).
func Scale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// ScaleXY returns the non-uniform scale S(sx, sy).
func ScaleXY(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// TRS returns T(pos)·R(theta)·S(s): scale first, then rotate, then translate.
func TRS(pos Vec2, theta, s float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{cos * s, sin * s, -sin * s, cos * s, pos.X, pos.Y}
}

// InverseTRS returns the inverse of TRS(pos, theta, s) built from the
// reciprocal primitives in reverse order: S(1/s)·R(-theta)·T(-pos).
func InverseTRS(pos Vec2, theta, s float64) (Affine, error) {
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Identity, fmt.Errorf("inverse of scale %v: %w", s, ErrSingular)
	}
	return Scale(1/s).Rotate(-theta).Translate(-pos.X, -pos.Y), nil
}

// Compose returns the transform that applies b first and then a, i.e. the
// matrix product a·b.
func Compose(a, b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// Mul is Compose(m, o).
func (m Affine) Mul(o Affine) Affine {
	return Compose(m, o)
}

// Translate returns m·T(x, y). Chained calls read in the same order as canvas
// cursor calls: Identity.Translate(400, 40).Rotate(a) translates the rotated frame.
func (m Affine) Translate(x, y float64) Affine {
	return Compose(m, Translate(x, y))
}

// Rotate returns m·R(theta).
func (m Affine) Rotate(theta float64) Affine {
	return Compose(m, Rotate(theta))
}

// Scale returns m·S(s).
func (m Affine) Scale(s float64) Affine {
	return Compose(m, Scale(s))
}

// ScaleXY returns m·S(sx, sy).
func (m Affine) ScaleXY(sx, sy float64) Affine {
	return Compose(m, ScaleXY(sx, sy))
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse transform such that Compose(m, inv) is the
// identity. Returns ErrSingular when the determinant is near zero.
func (m Affine) Invert() (Affine, error) {
	det := m.Det()
	if det > -singularEpsilon && det < singularEpsilon {
		return Identity, fmt.Errorf("invert %v: %w", m, ErrSingular)
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, nil
}

// Apply maps p through the transform.
func (m Affine) Apply(p Vec2) Vec2 {
	x, y := m.ApplyXY(p.X, p.Y)
	return Vec2{x, y}
}

// ApplyXY maps the point (x, y) through the transform.
func (m Affine) ApplyXY(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ApplyVector maps a direction, ignoring translation.
func (m Affine) ApplyVector(v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// Near reports whether every coefficient of m is within eps of o.
func (m Affine) Near(o Affine, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

// Decompose splits m into translation, rotation and per-axis scale assuming
// m = T·R·S(sx, sy) with no skew. A reflection shows up as a negative sy.
func (m Affine) Decompose() (pos Vec2, theta, sx, sy float64) {
	pos = Vec2{m[4], m[5]}
	theta = math.Atan2(m[1], m[0])
	sx = math.Hypot(m[0], m[1])
	sy = m.Det() / sx
	if sx == 0 {
		sy = math.Hypot(m[2], m[3])
	}
	return
}

// MaxScale returns the largest factor by which m stretches a unit vector.
// Backends use it to size tessellation of curves.
func (m Affine) MaxScale() float64 {
	return math.Max(math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3]))
}

func (m Affine) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m[0], m[2], m[4], m[1], m[3], m[5])
}
