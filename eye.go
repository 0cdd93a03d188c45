package frames

import (
	"math"

	"github.com/tanema/gween/ease"
)

// eyeGlide is an active GlideTo animation and the exact values it ends on.
type eyeGlide struct {
	group  *TweenGroup
	target eyePose
}

type eyePose struct {
	pos         Vec2
	orientation float64
	scale       float64
}

// Eye is an independently controlled viewpoint. Its forward transform
// T(Position)·R(Orientation)·S(Scale) places a viewport marker in the world;
// its inverse maps the world into the eye's view for a secondary pass.
type Eye struct {
	// Position is the eye origin in world space.
	Position Vec2
	// Orientation is the eye rotation in radians.
	Orientation float64
	// Scale is the uniform eye scale, kept within [MinScale, MaxScale].
	Scale float64
	// Visible gates the secondary view and the viewport marker.
	Visible bool

	cfg   EyeConfig
	glide *eyeGlide
}

// NewEye creates an eye in its default state for cfg.
func NewEye(cfg EyeConfig) *Eye {
	e := &Eye{cfg: cfg}
	e.Reset()
	return e
}

// Config returns the eye's input parameters.
func (e *Eye) Config() EyeConfig {
	return e.cfg
}

// Reset restores the default state immediately and cancels any glide.
func (e *Eye) Reset() {
	e.Position = e.cfg.Position
	e.Orientation = e.cfg.Orientation
	e.Scale = e.clampScale(e.cfg.Scale)
	e.Visible = e.cfg.Visible
	e.glide = nil
}

// --- Input ---

// PointerMoved moves the eye to the pointer.
func (e *Eye) PointerMoved(ev PointerEvent) bool {
	e.glide = nil
	e.Position = Vec2{ev.X, ev.Y}
	return true
}

// Dragged zooms the eye while the zoom button is held: rightward motion
// multiplies Scale by ZoomFactor, anything else divides by it.
func (e *Eye) Dragged(ev PointerEvent) bool {
	if ev.Button != e.cfg.ZoomButton {
		return false
	}
	if ev.X > ev.PrevX {
		e.ZoomIn()
	} else {
		e.ZoomOut()
	}
	return true
}

// Wheeled turns the eye by the wheel delta times WheelScale.
func (e *Eye) Wheeled(ev WheelEvent) bool {
	e.glide = nil
	e.Orientation += ev.Delta * e.cfg.WheelScale
	return true
}

// Clicked toggles visibility when the toggle button is clicked.
func (e *Eye) Clicked(ev PointerEvent) bool {
	if ev.Button != e.cfg.ToggleButton {
		return false
	}
	e.Toggle()
	return true
}

// Toggle flips Visible.
func (e *Eye) Toggle() {
	e.Visible = !e.Visible
}

// Zoom multiplies Scale by f, clamped to the configured range.
func (e *Eye) Zoom(f float64) {
	e.glide = nil
	e.Scale = e.clampScale(e.Scale * f)
}

// ZoomIn multiplies Scale by ZoomFactor.
func (e *Eye) ZoomIn() {
	e.Zoom(e.cfg.ZoomFactor)
}

// ZoomOut divides Scale by ZoomFactor.
func (e *Eye) ZoomOut() {
	e.glide = nil
	e.Scale = e.clampScale(e.Scale / e.cfg.ZoomFactor)
}

func (e *Eye) clampScale(s float64) float64 {
	if math.IsNaN(s) {
		return e.cfg.Scale
	}
	return math.Max(e.cfg.MinScale, math.Min(s, e.cfg.MaxScale))
}

// --- Transforms ---

// Forward returns T(Position)·R(Orientation)·S(Scale).
func (e *Eye) Forward() Affine {
	return TRS(e.Position, e.Orientation, e.Scale)
}

// Inverse returns S(1/Scale)·R(-Orientation)·T(-Position), the transform a
// pass applies first to see the world through the eye.
func (e *Eye) Inverse() (Affine, error) {
	return InverseTRS(e.Position, e.Orientation, e.Scale)
}

// --- Animation ---

// GlideTo animates the eye to the given pose over duration seconds.
func (e *Eye) GlideTo(pos Vec2, orientation, scale float64, duration float32, fn ease.TweenFunc) {
	target := eyePose{pos: pos, orientation: orientation, scale: e.clampScale(scale)}
	g := &TweenGroup{}
	g.Add(&e.Position.X, target.pos.X, duration, fn).
		Add(&e.Position.Y, target.pos.Y, duration, fn).
		Add(&e.Orientation, target.orientation, duration, fn).
		Add(&e.Scale, target.scale, duration, fn)
	e.glide = &eyeGlide{group: g, target: target}
}

// GlideHome animates the eye back to its configured default pose.
func (e *Eye) GlideHome(duration float32, fn ease.TweenFunc) {
	e.GlideTo(e.cfg.Position, e.cfg.Orientation, e.cfg.Scale, duration, fn)
}

// Gliding reports whether a glide is in progress.
func (e *Eye) Gliding() bool {
	return e.glide != nil
}

// Update advances an active glide by dt seconds.
func (e *Eye) Update(dt float32) {
	if e.glide == nil {
		return
	}
	g := e.glide
	g.group.Update(dt)
	e.Scale = e.clampScale(e.Scale)
	if g.group.Done {
		e.Position = g.target.pos
		e.Orientation = g.target.orientation
		e.Scale = g.target.scale
		e.glide = nil
	}
}
