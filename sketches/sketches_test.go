package sketches

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/visualcomputing/frames"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// drawn is the part of an Op the sketches tests care about.
type drawn struct {
	Shape frames.ShapeKind
	Fill  frames.Color
	M     frames.Affine
}

func summarize(ops []frames.Op, keep func(*frames.Op) bool) []drawn {
	var out []drawn
	for i := range ops {
		op := &ops[i]
		if keep == nil || keep(op) {
			out = append(out, drawn{op.Shape, op.Style.Fill, op.Transform})
		}
	}
	return out
}

func isRect(op *frames.Op) bool { return op.Shape == frames.ShapeRect }

func isViewport(op *frames.Op) bool {
	return op.Shape == frames.ShapeRect && op.Style.HasStroke && op.Style.Stroke == ColorViewport
}

func newScene(t *testing.T, name string) (*frames.Scene, frames.Sketch) {
	t.Helper()
	sk, err := Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	s, err := frames.NewScene(sk, frames.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s, sk
}

func drawOnce(t *testing.T, s *frames.Scene) *frames.RecordingDisplay {
	t.Helper()
	w, h := s.Size()
	d := frames.NewRecordingDisplay(float64(w), float64(h))
	if err := s.Draw(d); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRegistry(t *testing.T) {
	want := []string{"frames1", "frames2", "minimap", "rotation", "scene-graph"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	for _, name := range want {
		sk, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if sk.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, sk.Name())
		}
		if _, ok := sk.(Rooted); !ok {
			t.Errorf("%s has no Root", name)
		}
	}
	if _, err := Lookup("nope"); !errors.Is(err, ErrUnknownSketch) {
		t.Errorf("err = %v, want ErrUnknownSketch", err)
	}
}

func TestFrames1(t *testing.T) {
	s, _ := newScene(t, "frames1")
	if w, h := s.Size(); w != 900 || h != 300 {
		t.Errorf("size = %dx%d", w, h)
	}
	ops := drawOnce(t, s).ScreenRec.Ops
	want := []drawn{
		{frames.ShapeLine, ColorAxisX, frames.Identity},
		{frames.ShapeText, ColorAxisX, frames.Identity},
		{frames.ShapeLine, ColorAxisY, frames.Identity},
		{frames.ShapeText, ColorAxisY, frames.Identity},
	}
	if diff := cmp.Diff(want, summarize(ops, nil), approx); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if ops[0].Args != [6]float64{0, 0, 100, 0} || ops[0].Style.StrokeWidth != 4 {
		t.Errorf("x axis = %+v", ops[0])
	}
}

func TestFrames2(t *testing.T) {
	s, _ := newScene(t, "frames2")
	ops := drawOnce(t, s).ScreenRec.Ops
	if len(ops) != 8 {
		t.Fatalf("ops = %d, want 8", len(ops))
	}
	l1 := frames.Translate(300, 180)
	for _, op := range ops[4:] {
		if diff := cmp.Diff(l1, op.Transform, approx); diff != "" {
			t.Errorf("L1 op transform (-want +got):\n%s", diff)
		}
	}
}

func TestSceneGraphTransforms(t *testing.T) {
	s, _ := newScene(t, "scene-graph")
	ops := drawOnce(t, s).ScreenRec.Ops

	l1 := frames.Translate(400, 40).Rotate(math.Pi / 8)
	l2 := frames.Compose(l1, frames.Translate(200, 300).Rotate(-math.Pi/4).Scale(2))
	l3 := frames.Compose(l1, frames.Translate(-80, 160).Rotate(math.Pi/2).Scale(1.5))

	var want []drawn
	for i := 0; i < 6; i++ {
		want = append(want, drawn{frames.ShapeRect, ColorMagenta, l1})
	}
	want = append(want,
		drawn{frames.ShapeRect, ColorCyan, l2},
		drawn{frames.ShapeRect, ColorCyan, l2})
	for i := 0; i < 6; i++ {
		want = append(want, drawn{frames.ShapeRect, ColorYellow, l3})
	}
	if diff := cmp.Diff(want, summarize(ops, isRect), approx); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}

	// Robot origin lands at the L1 origin in world space.
	robot := summarize(ops, isRect)[0]
	if diff := cmp.Diff(frames.Vec2{X: 400, Y: 40}, robot.M.Apply(frames.Vec2{}), approx); diff != "" {
		t.Errorf("robot origin (-want +got):\n%s", diff)
	}
}

func TestSceneGraphTree(t *testing.T) {
	_, sk := newScene(t, "scene-graph")
	var sb strings.Builder
	if err := frames.DumpTree(&sb, sk.(Rooted).Root()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	var names []string
	for _, l := range lines {
		names = append(names, strings.Fields(l)[0])
	}
	if diff := cmp.Diff([]string{"world", "L1", "L2", "L3"}, names); diff != "" {
		t.Errorf("tree (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(lines[2], "    L2") {
		t.Errorf("L2 line = %q, want depth 2 indent", lines[2])
	}
}

func TestMinimapHiddenByDefault(t *testing.T) {
	s, sk := newScene(t, "minimap")
	m := sk.(*Minimap)
	d := drawOnce(t, s)

	if m.Eye().Visible {
		t.Error("minimap should start hidden")
	}
	if len(d.Layers) != 0 || len(d.Composites) != 0 {
		t.Errorf("hidden minimap used layers %v composites %v", d.Layers, d.Composites)
	}
	if n := len(summarize(d.ScreenRec.Ops, isViewport)); n != 0 {
		t.Errorf("viewport drawn %d times while hidden", n)
	}
}

func TestMinimapClickShowsSecondPass(t *testing.T) {
	s, sk := newScene(t, "minimap")
	m := sk.(*Minimap)
	s.InjectClick(10, 10, frames.MouseButtonLeft)
	s.Update(0)
	s.Update(0)
	if !m.Eye().Visible {
		t.Fatal("click should show the minimap")
	}

	d := drawOnce(t, s)
	if diff := cmp.Diff([]frames.Composite{{Layer: MinimapLayer, X: 0, Y: 350}}, d.Composites); diff != "" {
		t.Errorf("composites (-want +got):\n%s", diff)
	}

	// The eye's viewport is outlined in the world under the forward transform.
	vp := summarize(d.ScreenRec.Ops, isViewport)
	if len(vp) != 1 {
		t.Fatalf("viewport drawn %d times, want 1", len(vp))
	}
	if diff := cmp.Diff(frames.Scale(0.5), vp[0].M, approx); diff != "" {
		t.Errorf("viewport transform (-want +got):\n%s", diff)
	}

	layer := d.Layers[MinimapLayer]
	if layer.W != 350 || layer.H != 350 || layer.Background != ColorMinimapBg {
		t.Errorf("layer = %vx%v bg %v", layer.W, layer.H, layer.Background)
	}
	if n := len(summarize(layer.Ops, isViewport)); n != 0 {
		t.Errorf("viewport drawn %d times in the eye's own view", n)
	}
	// The world axes come first and are seen through the inverse eye.
	if diff := cmp.Diff(frames.Scale(2), layer.Ops[0].Transform, approx); diff != "" {
		t.Errorf("layer world transform (-want +got):\n%s", diff)
	}
	if len(layer.Ops) != len(d.ScreenRec.Ops)-1 {
		t.Errorf("layer ops = %d, screen ops = %d", len(layer.Ops), len(d.ScreenRec.Ops))
	}
}

func TestMinimapInput(t *testing.T) {
	s, sk := newScene(t, "minimap")
	eye := sk.(*Minimap).Eye()

	s.FeedPointer(frames.PointerSample{X: 120, Y: 80})
	if eye.Position != (frames.Vec2{X: 120, Y: 80}) {
		t.Errorf("position = %v", eye.Position)
	}

	s.InjectDrag(frames.Vec2{X: 100, Y: 100}, frames.Vec2{X: 120, Y: 100}, 3, frames.MouseButtonMiddle)
	for s.Pending() > 0 {
		s.Update(0)
	}
	want := 0.5
	want *= 1.03
	if eye.Scale != want {
		t.Errorf("scale = %v, want %v", eye.Scale, want)
	}

	s.FeedWheel(0.25)
	if eye.Orientation != 0.25 {
		t.Errorf("orientation = %v", eye.Orientation)
	}

	s.FeedKey(frames.KeySpace)
	if !eye.Visible {
		t.Error("space should toggle the minimap")
	}
	s.FeedKey(frames.KeyDown)
	if eye.Scale >= want {
		t.Errorf("down should zoom out, scale = %v", eye.Scale)
	}

	s.FeedKey(frames.KeyR)
	if !eye.Gliding() {
		t.Fatal("R should start a glide home")
	}
	for i := 0; i < 30 && eye.Gliding(); i++ {
		s.Update(1.0 / 15)
	}
	if eye.Position != (frames.Vec2{}) || eye.Orientation != 0 || eye.Scale != 0.5 {
		t.Errorf("eye after glide home = %+v", eye)
	}
}

func TestRotationKeepsPivotFixed(t *testing.T) {
	s, sk := newScene(t, "rotation")
	r := sk.(*Rotation)
	pivot := frames.Vec2{X: 500, Y: 250}

	check := func(wantBeta float64) {
		t.Helper()
		if math.Abs(r.Beta()-wantBeta) > 1e-9 {
			t.Errorf("beta = %v, want %v", r.Beta(), wantBeta)
		}
		ops := drawOnce(t, s).ScreenRec.Ops
		rects := summarize(ops, isRect)
		if len(rects) != 2 {
			t.Fatalf("rects = %d, want 2", len(rects))
		}
		if diff := cmp.Diff(pivot, rects[0].M.Apply(pivot), approx); diff != "" {
			t.Errorf("pivot moved (-want +got):\n%s", diff)
		}
		if rects[0].Fill != ColorLShape {
			t.Errorf("fill = %v", rects[0].Fill)
		}
	}

	check(-math.Pi / 4)

	s.FeedWheel(1)
	check(-math.Pi/4 + 0.5)

	s.FeedPointer(frames.PointerSample{X: 0, Y: 0, Pressed: true})
	s.FeedPointer(frames.PointerSample{X: 700, Y: 0, Pressed: true})
	check(-math.Pi / 2)
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{350, -math.Pi / 4},
		{700, -math.Pi / 2},
		{1400, -math.Pi},
	}
	for _, tt := range tests {
		if got := mapRange(tt.v, 0, 700, 0, -math.Pi/2); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("mapRange(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := mapRange(5, 1, 1, 3, 4); got != 3 {
		t.Errorf("empty range = %v, want 3", got)
	}
}
