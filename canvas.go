package frames

import "fmt"

// Canvas is a drawing cursor over a Surface. It carries a current transform
// and paint style, both saved by Push and restored by Pop. Primitive calls
// are emitted to the surface as Ops in local coordinates with the
// accumulated transform attached.
type Canvas struct {
	surface Surface
	stack   *TransformStack
	style   Style
	styles  []Style

	ops      int
	maxDepth int
}

// NewCanvas returns a cursor drawing onto s with the identity transform and
// the default style.
func NewCanvas(s Surface) *Canvas {
	return &Canvas{
		surface: s,
		stack:   NewTransformStack(),
		style:   DefaultStyle,
	}
}

// Surface returns the surface this canvas draws onto.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Bounds returns the surface bounds.
func (c *Canvas) Bounds() Rect {
	return c.surface.Bounds()
}

// --- State stack ---

// Push saves the current transform and style.
func (c *Canvas) Push() {
	c.stack.Save()
	c.styles = append(c.styles, c.style)
	if d := c.stack.Depth(); d > c.maxDepth {
		c.maxDepth = d
	}
}

// PushFrame saves state and enters the child frame described by local.
func (c *Canvas) PushFrame(local Affine) {
	c.Push()
	c.stack.Concat(local)
}

// Pop restores the state saved by the matching Push. Without a matching
// Push it returns ErrUnbalancedPop and changes nothing.
func (c *Canvas) Pop() error {
	if err := c.stack.Pop(); err != nil {
		return err
	}
	n := len(c.styles)
	c.style = c.styles[n-1]
	c.styles = c.styles[:n-1]
	return nil
}

// Depth returns the number of outstanding pushes.
func (c *Canvas) Depth() int {
	return c.stack.Depth()
}

// Finish ends a drawing pass. It reports ErrUnbalanced if pushes are still
// outstanding and resets the cursor for the next pass either way.
func (c *Canvas) Finish() error {
	depth := c.stack.Depth()
	c.stack.Reset(Identity)
	c.styles = c.styles[:0]
	c.style = DefaultStyle
	if depth != 0 {
		return fmt.Errorf("%d push(es) left open: %w", depth, ErrUnbalanced)
	}
	return nil
}

// --- Transform ---

// Transform returns the accumulated transform.
func (c *Canvas) Transform() Affine {
	return c.stack.Current()
}

// Translate moves the origin by (dx, dy) in the current frame.
func (c *Canvas) Translate(dx, dy float64) {
	c.stack.Concat(Translate(dx, dy))
}

// Rotate turns the current frame by theta radians.
func (c *Canvas) Rotate(theta float64) {
	c.stack.Concat(Rotate(theta))
}

// Scale scales the current frame uniformly.
func (c *Canvas) Scale(s float64) {
	c.stack.Concat(Scale(s))
}

// ScaleXY scales the current frame per axis.
func (c *Canvas) ScaleXY(sx, sy float64) {
	c.stack.Concat(ScaleXY(sx, sy))
}

// ApplyTransform post-multiplies the current transform by m.
func (c *Canvas) ApplyTransform(m Affine) {
	c.stack.Concat(m)
}

// --- Style ---

// Style returns the current paint style.
func (c *Canvas) Style() Style {
	return c.style
}

// Fill sets the fill color and enables filling.
func (c *Canvas) Fill(col Color) {
	c.style.Fill = col
	c.style.HasFill = true
}

// NoFill disables filling.
func (c *Canvas) NoFill() {
	c.style.HasFill = false
}

// Stroke sets the stroke color and enables stroking.
func (c *Canvas) Stroke(col Color) {
	c.style.Stroke = col
	c.style.HasStroke = true
}

// NoStroke disables stroking.
func (c *Canvas) NoStroke() {
	c.style.HasStroke = false
}

// StrokeWeight sets the stroke width in local units.
func (c *Canvas) StrokeWeight(w float64) {
	c.style.StrokeWidth = w
}

// --- Primitives ---

// Background clears the whole surface, independent of the current transform.
func (c *Canvas) Background(col Color) {
	c.surface.Clear(col)
}

// Line draws a segment from (x0, y0) to (x1, y1).
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	c.emit(ShapeLine, [6]float64{x0, y0, x1, y1}, "")
}

// Rect draws a rectangle with its top-left corner at (x, y).
func (c *Canvas) Rect(x, y, w, h float64) {
	c.emit(ShapeRect, [6]float64{x, y, w, h}, "")
}

// Ellipse draws an ellipse centred at (cx, cy) with diameters w and h.
func (c *Canvas) Ellipse(cx, cy, w, h float64) {
	c.emit(ShapeEllipse, [6]float64{cx, cy, w, h}, "")
}

// Triangle draws the triangle through three points.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 float64) {
	c.emit(ShapeTriangle, [6]float64{x0, y0, x1, y1, x2, y2}, "")
}

// Point draws a dot at (x, y) whose diameter is the stroke weight.
func (c *Canvas) Point(x, y float64) {
	c.emit(ShapePoint, [6]float64{x, y}, "")
}

// Text draws s with its baseline starting at (x, y), in the fill color.
func (c *Canvas) Text(s string, x, y float64) {
	c.emit(ShapeText, [6]float64{x, y}, s)
}

func (c *Canvas) emit(kind ShapeKind, args [6]float64, text string) {
	op := Op{
		Shape:     kind,
		Args:      args,
		Text:      text,
		Transform: c.stack.Current(),
		Style:     c.style,
	}
	c.ops++
	c.surface.Draw(&op)
}

// stats returns and clears the per-pass counters.
func (c *Canvas) stats() (ops, maxDepth int) {
	ops, maxDepth = c.ops, c.maxDepth
	c.ops, c.maxDepth = 0, 0
	return
}
