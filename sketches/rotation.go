package sketches

import (
	"math"

	"github.com/visualcomputing/frames"
)

// Rotation turns an L shape about an arbitrary pivot with the frame
// T(p)·R(β)·T(-p). The wheel adds to β and dragging maps the pointer's x
// across the canvas onto β in [0, -π/2].
type Rotation struct {
	base
	world *frames.Frame
	shape *frames.Frame
	pivot frames.Vec2
	beta  float64
	wheel float64
	w     int
}

func NewRotation() *Rotation {
	return &Rotation{base: base{"rotation", 700, 700}}
}

// Beta returns the current rotation angle in radians.
func (r *Rotation) Beta() float64 { return r.beta }

func (r *Rotation) Root() *frames.Frame { return r.world }

func (r *Rotation) Setup(s *frames.Scene) error {
	cfg := s.Config().Rotation
	r.pivot = cfg.Pivot
	r.beta = cfg.Beta
	r.wheel = cfg.WheelScale
	r.w, _ = s.Size()

	r.world = frames.NewFrame("world", frames.Identity)
	r.shape = r.world.AddChild(frames.NewFrame("pivoted", r.transform(),
		PivotMarker{At: &r.pivot}, LShape{}))

	s.OnWheel(func(ev frames.WheelEvent) bool {
		r.beta += ev.Delta * r.wheel
		return true
	})
	s.OnDrag(func(ev frames.PointerEvent) bool {
		r.beta = mapRange(ev.X, 0, float64(r.w), 0, -math.Pi/2)
		return true
	})
	return nil
}

// transform returns T(p)·R(β)·T(-p).
func (r *Rotation) transform() frames.Affine {
	return frames.Translate(r.pivot.X, r.pivot.Y).
		Rotate(r.beta).
		Translate(-r.pivot.X, -r.pivot.Y)
}

func (r *Rotation) Draw(s *frames.Scene, d frames.Display) error {
	r.shape.SetLocal(r.transform())
	return frames.RenderFrame(s.Canvas(d.Screen()), r.world)
}

// mapRange re-maps v from [lo1, hi1] to [lo2, hi2] without clamping.
func mapRange(v, lo1, hi1, lo2, hi2 float64) float64 {
	if hi1 == lo1 {
		return lo2
	}
	return lo2 + (v-lo1)*(hi2-lo2)/(hi1-lo1)
}
