// Package snapshot renders frames sketches to image and vector files (PNG,
// SVG, PDF and the other formats canvas supports) without opening a window.
//
// One sketch pixel maps to one canvas millimetre and files are written at
// one dot per millimetre, so raster output has the sketch's pixel size.
package snapshot

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/visualcomputing/frames"
)

// TextSize is the height of Canvas.Text glyphs in sketch pixels.
const TextSize = 12

const ptPerMm = 72.0 / 25.4

// Resolution is the output resolution: one dot per sketch pixel.
var Resolution = canvas.DPMM(1)

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

func loadFont() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		family := canvas.NewFontFamily("latin-modern")
		if err := family.LoadFont(lmroman10regular.TTF, 0, canvas.FontRegular); err != nil {
			fontErr = fmt.Errorf("snapshot: load font: %w", err)
			return
		}
		fontFamily = family
	})
	return fontFamily, fontErr
}

// item is one entry of a surface's draw list: an op, or a composite of a
// named layer.
type item struct {
	op        frames.Op
	composite string
	x, y      float64
}

// Surface is a frames.Surface that keeps its draw list until Render.
type Surface struct {
	w, h  float64
	bg    frames.Color
	items []item
}

// NewSurface returns an empty w x h surface.
func NewSurface(w, h float64) *Surface {
	return &Surface{w: w, h: h}
}

// Bounds implements frames.Surface.
func (s *Surface) Bounds() frames.Rect {
	return frames.Rect{Width: s.w, Height: s.h}
}

// Clear implements frames.Surface. Earlier drawing is discarded.
func (s *Surface) Clear(bg frames.Color) {
	s.bg = bg
	s.items = s.items[:0]
}

// Draw implements frames.Surface.
func (s *Surface) Draw(op *frames.Op) {
	s.items = append(s.items, item{op: *op})
}

// Len returns the number of queued draw items.
func (s *Surface) Len() int {
	return len(s.items)
}

// Display is a frames.Display whose surfaces render through canvas.
type Display struct {
	screen *Surface
	layers map[string]*Surface
}

// NewDisplay returns a display with a w x h screen.
func NewDisplay(w, h int) *Display {
	return &Display{
		screen: NewSurface(float64(w), float64(h)),
		layers: make(map[string]*Surface),
	}
}

// Screen implements frames.Display.
func (d *Display) Screen() frames.Surface {
	return d.screen
}

// Layer implements frames.Display. A resized layer keeps its identity so
// canvases bound to it stay valid; its recorded items are dropped.
func (d *Display) Layer(name string, w, h int) frames.Surface {
	l, ok := d.layers[name]
	if !ok {
		l = NewSurface(float64(w), float64(h))
		d.layers[name] = l
	} else if l.w != float64(w) || l.h != float64(h) {
		l.w, l.h = float64(w), float64(h)
		l.items = l.items[:0]
	}
	return l
}

// Composite implements frames.Display.
func (d *Display) Composite(name string, x, y float64) {
	if _, ok := d.layers[name]; !ok {
		return
	}
	d.screen.items = append(d.screen.items, item{composite: name, x: x, y: y})
}

// Render draws the screen's current contents into a new canvas.
func (d *Display) Render() (*canvas.Canvas, error) {
	return d.render(d.screen)
}

func (d *Display) render(s *Surface) (*canvas.Canvas, error) {
	family, err := loadFont()
	if err != nil {
		return nil, err
	}
	c := canvas.New(s.w, s.h)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(colorRGBA(s.bg))
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(s.w, s.h))

	for i := range s.items {
		it := &s.items[i]
		if it.composite == "" {
			drawOp(ctx, family, s.h, &it.op)
			continue
		}
		l := d.layers[it.composite]
		lc, err := d.render(l)
		if err != nil {
			return nil, err
		}
		img := rasterizer.Draw(lc, Resolution)
		ctx.SetView(canvas.Identity)
		ctx.DrawImage(it.x, s.h-(it.y+l.h), img, Resolution)
	}
	return c, nil
}

// viewMatrix maps an op's local coordinates to canvas coordinates: the op
// transform followed by a flip from the sketch's y-down space to canvas's
// y-up space.
func viewMatrix(m frames.Affine, height float64) canvas.Matrix {
	flip := canvas.Matrix{
		{1, 0, 0},
		{0, -1, height},
	}
	return flip.Mul(canvas.Matrix{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
	})
}

func drawOp(ctx *canvas.Context, family *canvas.FontFamily, height float64, op *frames.Op) {
	st := &op.Style
	a := &op.Args
	view := viewMatrix(op.Transform, height)
	ctx.SetView(view)

	fill, stroke := canvas.Transparent, canvas.Transparent
	if st.HasFill {
		fill = colorRGBA(st.Fill)
	}
	if st.HasStroke {
		stroke = colorRGBA(st.Stroke)
	}
	ctx.SetFillColor(fill)
	ctx.SetStrokeColor(stroke)
	ctx.SetStrokeWidth(st.StrokeWidth)

	switch op.Shape {
	case frames.ShapeLine:
		ctx.SetFillColor(canvas.Transparent)
		ctx.DrawPath(a[0], a[1], canvas.Line(a[2]-a[0], a[3]-a[1]))
	case frames.ShapeRect:
		ctx.DrawPath(a[0], a[1], canvas.Rectangle(a[2], a[3]))
	case frames.ShapeEllipse:
		ctx.DrawPath(a[0], a[1], canvas.Ellipse(a[2]/2, a[3]/2))
	case frames.ShapeTriangle:
		p := &canvas.Path{}
		p.MoveTo(a[0], a[1])
		p.LineTo(a[2], a[3])
		p.LineTo(a[4], a[5])
		p.Close()
		ctx.DrawPath(0, 0, p)
	case frames.ShapePoint:
		if !st.HasStroke {
			return
		}
		ctx.SetFillColor(stroke)
		ctx.SetStrokeColor(canvas.Transparent)
		r := st.StrokeWidth / 2
		ctx.DrawPath(a[0], a[1], canvas.Ellipse(r, r))
	case frames.ShapeText:
		if !st.HasFill {
			return
		}
		// Glyphs are laid out y-up; undo the flip around the anchor.
		ctx.SetView(view.Mul(canvas.Matrix{
			{1, 0, a[0]},
			{0, -1, a[1]},
		}))
		face := family.Face(TextSize*ptPerMm, fill, canvas.FontRegular, canvas.FontNormal)
		ctx.DrawText(0, 0, canvas.NewTextLine(face, op.Text, canvas.Left))
	}
}

// colorRGBA converts to the premultiplied 8-bit color canvas stores.
func colorRGBA(c frames.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Render runs scene for ticks ticks of Update and Draw, or longer while an
// attached script is still playing, and returns the last frame. ticks below 1
// draws once.
func Render(scene *frames.Scene, ticks int) (*canvas.Canvas, error) {
	w, h := scene.Size()
	d := NewDisplay(w, h)
	dt := float32(1.0 / float64(scene.Config().FrameRate))
	for i := 0; i < max(ticks, 1) || scene.Scripted(); i++ {
		scene.Update(dt)
		if err := scene.Draw(d); err != nil {
			return nil, err
		}
	}
	return d.Render()
}

// Write renders scene as Render does and writes it to path. The format
// follows the file extension.
func Write(path string, scene *frames.Scene, ticks int) error {
	c, err := Render(scene, ticks)
	if err != nil {
		return err
	}
	if err := renderers.Write(path, c, Resolution); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}
