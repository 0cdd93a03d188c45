package window

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/visualcomputing/frames"
)

// TextSize is the font size of Canvas.Text in pixels.
const TextSize = 12

var (
	whitePixelImage *ebiten.Image
	defaultFace     *text.GoTextFace
)

// ensureWhitePixel lazily creates the 1x1 white source image that all
// untextured triangles sample from.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

func ensureFace() (*text.GoTextFace, error) {
	if defaultFace != nil {
		return defaultFace, nil
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	defaultFace = &text.GoTextFace{Source: source, Size: TextSize}
	return defaultFace, nil
}

// Surface draws frames ops onto an *ebiten.Image. Shapes are transformed to
// image space on the CPU and submitted as triangles, so any affine transform
// (rotation, non-uniform scale, shear) renders exactly.
type Surface struct {
	img   *ebiten.Image
	face  *text.GoTextFace
	verts []ebiten.Vertex
	inds  []uint16
}

// NewSurface wraps img. The image may be swapped later with SetImage.
func NewSurface(img *ebiten.Image) (*Surface, error) {
	face, err := ensureFace()
	if err != nil {
		return nil, err
	}
	return &Surface{img: img, face: face}, nil
}

// Image returns the target image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// SetImage retargets the surface.
func (s *Surface) SetImage(img *ebiten.Image) {
	s.img = img
}

// Bounds implements frames.Surface.
func (s *Surface) Bounds() frames.Rect {
	b := s.img.Bounds()
	return frames.Rect{
		X: float64(b.Min.X), Y: float64(b.Min.Y),
		Width: float64(b.Dx()), Height: float64(b.Dy()),
	}
}

// Clear implements frames.Surface.
func (s *Surface) Clear(bg frames.Color) {
	s.img.Fill(bg)
}

// Draw implements frames.Surface.
func (s *Surface) Draw(op *frames.Op) {
	m := op.Transform
	st := &op.Style
	a := &op.Args
	strokeW := st.StrokeWidth * m.MaxScale()

	switch op.Shape {
	case frames.ShapeLine:
		if st.HasStroke {
			p0 := m.Apply(frames.Vec2{X: a[0], Y: a[1]})
			p1 := m.Apply(frames.Vec2{X: a[2], Y: a[3]})
			q := frames.StrokeQuad(p0, p1, strokeW)
			s.fillPolygon(q[:], st.Stroke)
		}
	case frames.ShapePoint:
		if st.HasStroke {
			c := m.Apply(frames.Vec2{X: a[0], Y: a[1]})
			dot := frames.Op{Shape: frames.ShapeEllipse, Args: [6]float64{c.X, c.Y, strokeW, strokeW}}
			s.fillPolygon(dot.Outline(frames.EllipseSegments(frames.Identity, strokeW/2, strokeW/2)), st.Stroke)
		}
	case frames.ShapeText:
		if st.HasFill {
			s.drawText(op)
		}
	default:
		segments := frames.DefaultEllipseSegments
		if op.Shape == frames.ShapeEllipse {
			segments = frames.EllipseSegments(m, a[2]/2, a[3]/2)
		}
		outline := op.Outline(segments)
		for i := range outline {
			outline[i] = m.Apply(outline[i])
		}
		if st.HasFill {
			s.fillPolygon(outline, st.Fill)
		}
		if st.HasStroke && strokeW > 0 {
			for i := range outline {
				q := frames.StrokeQuad(outline[i], outline[(i+1)%len(outline)], strokeW)
				s.fillPolygon(q[:], st.Stroke)
			}
		}
	}
}

// fillPolygon fan-triangulates a convex polygon given in image space and
// fills it with col.
func (s *Surface) fillPolygon(points []frames.Vec2, col frames.Color) {
	n := len(points)
	if n < 3 {
		return
	}
	a := float32(col.A)
	r, g, b := float32(col.R)*a, float32(col.G)*a, float32(col.B)*a

	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range points {
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		s.inds = append(s.inds, 0, uint16(i+1), uint16(i+2))
	}
	opts := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	s.img.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), opts)
}

// drawText draws op.Text with its baseline origin at the op's anchor point.
func (s *Surface) drawText(op *frames.Op) {
	var geo ebiten.GeoM
	geo.Translate(op.Args[0], op.Args[1]-s.face.Metrics().HAscent)
	geo.Concat(affineGeoM(op.Transform))

	opts := &text.DrawOptions{}
	opts.GeoM = geo
	opts.ColorScale.ScaleWithColor(op.Style.Fill)
	text.Draw(s.img, op.Text, s.face, opts)
}

// affineGeoM converts a frames affine into an ebiten.GeoM.
func affineGeoM(m frames.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
