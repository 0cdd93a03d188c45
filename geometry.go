package frames

import "math"

// DefaultEllipseSegments is the segment count used when a backend has no
// better estimate of an ellipse's on-screen size.
const DefaultEllipseSegments = 48

// ellipsePoints samples an axis-aligned ellipse centred at (cx, cy).
func ellipsePoints(cx, cy, rx, ry float64, segments int) []Vec2 {
	if segments < 8 {
		segments = 8
	}
	pts := make([]Vec2, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Vec2{cx + rx*cos, cy + ry*sin}
	}
	return pts
}

// EllipseSegments picks a segment count for an ellipse with the given local
// radii drawn under m, so that curves stay smooth when a frame is scaled up.
func EllipseSegments(m Affine, rx, ry float64) int {
	r := math.Max(math.Abs(rx), math.Abs(ry)) * m.MaxScale()
	n := int(math.Ceil(2 * math.Pi * r / 4))
	if n < 12 {
		return 12
	}
	if n > 256 {
		return 256
	}
	return n
}

// StrokeQuad returns the four corners of a thick segment from p0 to p1 with
// the given width. The quad is extended by half the width at both ends so
// that strokes meeting at a corner overlap instead of leaving a notch.
func StrokeQuad(p0, p1 Vec2, width float64) [4]Vec2 {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	l := math.Hypot(dx, dy)
	hw := width / 2
	if l == 0 {
		return [4]Vec2{
			{p0.X - hw, p0.Y - hw}, {p0.X + hw, p0.Y - hw},
			{p0.X + hw, p0.Y + hw}, {p0.X - hw, p0.Y + hw},
		}
	}
	ux, uy := dx/l*hw, dy/l*hw // along the segment
	nx, ny := -uy, ux          // left normal
	return [4]Vec2{
		{p0.X - ux + nx, p0.Y - uy + ny},
		{p1.X + ux + nx, p1.Y + uy + ny},
		{p1.X + ux - nx, p1.Y + uy - ny},
		{p0.X - ux - nx, p0.Y - uy - ny},
	}
}
