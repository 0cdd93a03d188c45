package sketches

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/visualcomputing/frames"
)

// MinimapLayer names the off-screen layer the eye's view is rendered into.
const MinimapLayer = "minimap"

// Minimap draws the scene graph plus an eye frame. The eye's viewport is
// outlined in the world, and when the minimap is shown the world is drawn a
// second time through the eye's inverse into a half-size layer placed in the
// bottom-left corner.
//
// The pointer moves the eye, dragging with the zoom button scales it, the
// wheel turns it and clicking toggles the minimap. Space toggles too, the
// arrow keys zoom and R glides the eye home.
type Minimap struct {
	base
	world    *frames.Frame
	eyeFrame *frames.Frame
	eye      *frames.Eye
	w, h     int
	glide    float32
}

func NewMinimap() *Minimap {
	return &Minimap{base: base{"minimap", 700, 700}}
}

// Eye returns the sketch's eye. Valid after Setup.
func (m *Minimap) Eye() *frames.Eye { return m.eye }

func (m *Minimap) Root() *frames.Frame { return m.world }

func (m *Minimap) Setup(s *frames.Scene) error {
	cfg := s.Config()
	m.w, m.h = s.Size()
	m.glide = cfg.Eye.GlideSeconds
	m.eye = frames.NewEye(cfg.Eye)
	m.world = buildSceneGraph()
	m.eyeFrame = m.world.AddChild(frames.NewFrame("eye", m.eye.Forward(),
		ViewportRect{W: float64(m.w / 2), H: float64(m.h / 2)}))
	m.syncEyeFrame()

	s.OnPointerMove(m.eye.PointerMoved)
	s.OnDrag(m.eye.Dragged)
	s.OnWheel(m.eye.Wheeled)
	s.OnClick(m.eye.Clicked)
	s.OnKey(m.keyPressed)
	s.CheckTree(m.world)
	return nil
}

func (m *Minimap) keyPressed(ev frames.KeyEvent) bool {
	switch ev.Key {
	case frames.KeySpace:
		m.eye.Toggle()
	case frames.KeyUp:
		m.eye.ZoomIn()
	case frames.KeyDown:
		m.eye.ZoomOut()
	case frames.KeyR:
		m.eye.GlideHome(m.glide, ease.InOutCubic)
	default:
		return false
	}
	return true
}

func (m *Minimap) Update(s *frames.Scene, dt float32) {
	m.eye.Update(dt)
}

func (m *Minimap) syncEyeFrame() {
	m.eyeFrame.SetLocal(m.eye.Forward())
	m.eyeFrame.Hidden = !m.eye.Visible
}

func (m *Minimap) Draw(s *frames.Scene, d frames.Display) error {
	m.syncEyeFrame()
	if err := frames.RenderFrame(s.Canvas(d.Screen()), m.world); err != nil {
		return err
	}
	if !m.eye.Visible {
		return nil
	}

	inv, err := m.eye.Inverse()
	if err != nil {
		return fmt.Errorf("eye view: %w", err)
	}
	mc := s.Canvas(d.Layer(MinimapLayer, m.w/2, m.h/2))
	mc.Background(ColorMinimapBg)
	mc.Push()
	mc.ApplyTransform(inv)
	if err := frames.RenderFrameExcept(mc, m.world, m.eyeFrame); err != nil {
		return err
	}
	if err := mc.Pop(); err != nil {
		return err
	}
	d.Composite(MinimapLayer, 0, float64(m.h/2))
	return nil
}
