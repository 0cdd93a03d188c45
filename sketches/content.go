package sketches

import (
	"github.com/visualcomputing/frames"
)

// Colors of the sketches.
var (
	ColorAxisX     = frames.RGB(255, 0, 0)
	ColorAxisY     = frames.RGB(0, 0, 255)
	ColorMagenta   = frames.RGB(255, 0, 255)
	ColorCyan      = frames.RGB(0, 255, 255)
	ColorYellow    = frames.RGB(255, 255, 0)
	ColorRobotEye  = frames.RGB(222, 222, 249)
	ColorViewport  = frames.RGB(0, 255, 0)
	ColorLShape    = frames.RGBA8(204, 102, 0, 150)
	ColorPivot     = frames.RGB(0, 255, 255)
	ColorMinimapBg = frames.Gray(0)
)

// Axes draws the frame's X axis in red and Y axis in blue, 100 units long
// and labelled.
type Axes struct{}

func (Axes) Draw(c *frames.Canvas) {
	c.Push()
	c.StrokeWeight(4)
	c.Stroke(ColorAxisX)
	c.Fill(ColorAxisX)
	c.Line(0, 0, 100, 0)
	c.Text("X", 100+5, 0)
	c.Stroke(ColorAxisY)
	c.Fill(ColorAxisY)
	c.Line(0, 0, 0, 100)
	c.Text("Y", 0, 100+15)
	_ = c.Pop()
}

// Robot draws a stick robot in the current fill color.
type Robot struct{}

func (Robot) Draw(c *frames.Canvas) {
	c.Push()
	c.NoStroke()
	c.Rect(20, 0, 38, 30)  // head
	c.Rect(14, 32, 50, 50) // body
	c.Rect(0, 32, 12, 37)  // left arm
	c.Rect(66, 32, 12, 37) // right arm
	c.Rect(22, 84, 16, 50) // left leg
	c.Rect(40, 84, 16, 50) // right leg
	c.Fill(ColorRobotEye)
	c.Ellipse(30, 12, 12, 12)
	c.Ellipse(47, 12, 12, 12)
	_ = c.Pop()
}

// House draws a roof over a box with a door in the current style.
type House struct{}

func (House) Draw(c *frames.Canvas) {
	c.Push()
	c.Triangle(15, 0, 0, 15, 30, 15)
	c.Rect(0, 15, 30, 30)
	c.Rect(12, 30, 10, 15)
	_ = c.Pop()
}

// LShape draws two overlapping translucent orange bars.
type LShape struct{}

func (LShape) Draw(c *frames.Canvas) {
	c.Push()
	c.Fill(ColorLShape)
	c.Rect(50, 50, 200, 100)
	c.Rect(50, 50, 100, 200)
	_ = c.Pop()
}

// PivotMarker draws a thick cyan point at *At. It reads through the pointer
// so the marker follows configuration changes.
type PivotMarker struct {
	At *frames.Vec2
}

func (m PivotMarker) Draw(c *frames.Canvas) {
	c.Push()
	c.Stroke(ColorPivot)
	c.StrokeWeight(6)
	c.Point(m.At.X, m.At.Y)
	_ = c.Pop()
}

// ViewportRect outlines a W x H rectangle at the origin in green, the
// footprint of the minimap in the eye's frame.
type ViewportRect struct {
	W, H float64
}

func (v ViewportRect) Draw(c *frames.Canvas) {
	c.Push()
	c.Stroke(ColorViewport)
	c.StrokeWeight(8)
	c.NoFill()
	c.Rect(0, 0, v.W, v.H)
	_ = c.Pop()
}

// Filled sets the fill color for the rest of the frame's content and its
// children, the way the sketches set a fill before drawing a figure.
func Filled(col frames.Color) frames.Content {
	return frames.ContentFunc(func(c *frames.Canvas) {
		c.Fill(col)
	})
}
