package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/visualcomputing/frames"
)

// Display is a frames.Display backed by the ebiten screen and persistent
// off-screen images. Surfaces keep their identity across ticks so a scene
// can reuse its canvases.
type Display struct {
	screen *Surface
	layers map[string]*Surface
}

// NewDisplay returns an empty display. Call SetScreen before every Draw.
func NewDisplay() (*Display, error) {
	screen, err := NewSurface(nil)
	if err != nil {
		return nil, err
	}
	return &Display{screen: screen, layers: make(map[string]*Surface)}, nil
}

// SetScreen retargets the screen surface at the image ebiten hands to Draw.
func (d *Display) SetScreen(img *ebiten.Image) {
	d.screen.SetImage(img)
}

// Screen implements frames.Display.
func (d *Display) Screen() frames.Surface {
	return d.screen
}

// Layer implements frames.Display. New layers share the screen's font face.
func (d *Display) Layer(name string, w, h int) frames.Surface {
	if l, ok := d.layers[name]; ok {
		b := l.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return l
		}
		l.img.Deallocate()
		l.SetImage(ebiten.NewImage(w, h))
		return l
	}
	l := &Surface{img: ebiten.NewImage(w, h), face: d.screen.face}
	d.layers[name] = l
	return l
}

// Composite implements frames.Display.
func (d *Display) Composite(name string, x, y float64) {
	l, ok := d.layers[name]
	if !ok {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	d.screen.img.DrawImage(l.img, opts)
}

// Dispose releases the layer images.
func (d *Display) Dispose() {
	for name, l := range d.layers {
		l.img.Deallocate()
		delete(d.layers, name)
	}
}
