// Package sketches holds the demo sketches: nested frames, a scene graph,
// a minimap seen through an eye frame and rotation about a pivot.
package sketches

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/visualcomputing/frames"
)

// ErrUnknownSketch is returned by Lookup for names that are not registered.
var ErrUnknownSketch = errors.New("unknown sketch")

// Rooted is implemented by sketches whose drawing is a single frame tree.
// Root is valid after Setup.
type Rooted interface {
	Root() *frames.Frame
}

var registry = map[string]func() frames.Sketch{
	"frames1":     func() frames.Sketch { return NewFrames1() },
	"frames2":     func() frames.Sketch { return NewFrames2() },
	"scene-graph": func() frames.Sketch { return NewSceneGraph() },
	"minimap":     func() frames.Sketch { return NewMinimap() },
	"rotation":    func() frames.Sketch { return NewRotation() },
}

// Lookup returns a fresh instance of the named sketch.
func Lookup(name string) (frames.Sketch, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSketch, name)
	}
	return ctor(), nil
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type base struct {
	name string
	w, h int
}

func (b base) Name() string     { return b.name }
func (b base) Size() (int, int) { return b.w, b.h }

// --- frames1 ---

// Frames1 draws the world axes.
type Frames1 struct {
	base
	world *frames.Frame
}

func NewFrames1() *Frames1 {
	return &Frames1{base: base{"frames1", 900, 300}}
}

func (f *Frames1) Setup(s *frames.Scene) error {
	f.world = frames.NewFrame("world", frames.Identity, Axes{})
	return nil
}

func (f *Frames1) Draw(s *frames.Scene, d frames.Display) error {
	return frames.RenderFrame(s.Canvas(d.Screen()), f.world)
}

func (f *Frames1) Root() *frames.Frame { return f.world }

// --- frames2 ---

// Frames2 draws the world axes and a translated child frame L1.
type Frames2 struct {
	base
	world *frames.Frame
}

func NewFrames2() *Frames2 {
	return &Frames2{base: base{"frames2", 900, 300}}
}

func (f *Frames2) Setup(s *frames.Scene) error {
	f.world = frames.NewFrame("world", frames.Identity, Axes{})
	f.world.AddChild(frames.NewFrame("L1", frames.Translate(300, 180), Axes{}))
	return nil
}

func (f *Frames2) Draw(s *frames.Scene, d frames.Display) error {
	return frames.RenderFrame(s.Canvas(d.Screen()), f.world)
}

func (f *Frames2) Root() *frames.Frame { return f.world }

// --- scene-graph ---

// buildSceneGraph returns the tree
//
//	World
//	  L1 = T(400,40) R(π/8)          magenta robot
//	    L2 = T(200,300) R(-π/4) S(2)  cyan house
//	    L3 = T(-80,160) R(π/2) S(1.5) yellow robot
func buildSceneGraph() *frames.Frame {
	world := frames.NewFrame("world", frames.Identity, Axes{})
	l1 := world.AddChild(frames.NewFrame("L1",
		frames.Translate(400, 40).Rotate(math.Pi/8),
		Axes{}, Filled(ColorMagenta), Robot{}))
	l1.AddChild(frames.NewFrame("L2",
		frames.Translate(200, 300).Rotate(-math.Pi/4).Scale(2),
		Axes{}, Filled(ColorCyan), House{}))
	l1.AddChild(frames.NewFrame("L3",
		frames.Translate(-80, 160).Rotate(math.Pi/2).Scale(1.5),
		Axes{}, Filled(ColorYellow), Robot{}))
	return world
}

// SceneGraph draws a robot, a house and a second robot in nested frames.
type SceneGraph struct {
	base
	world *frames.Frame
}

func NewSceneGraph() *SceneGraph {
	return &SceneGraph{base: base{"scene-graph", 700, 700}}
}

func (g *SceneGraph) Setup(s *frames.Scene) error {
	g.world = buildSceneGraph()
	s.CheckTree(g.world)
	return nil
}

func (g *SceneGraph) Draw(s *frames.Scene, d frames.Display) error {
	return frames.RenderFrame(s.Canvas(d.Screen()), g.world)
}

func (g *SceneGraph) Root() *frames.Frame { return g.world }
