package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectConsumedOnePerUpdate(t *testing.T) {
	s := newTestScene(t, &testSketch{})
	var moves int
	s.OnPointerMove(func(PointerEvent) bool { moves++; return true })

	s.InjectMove(1, 1)
	s.InjectMove(2, 2)
	assert.Equal(t, 2, s.Pending())
	assert.True(t, s.Scripted())

	s.Update(0)
	assert.Equal(t, 1, moves)
	assert.Equal(t, 1, s.Pending())
	s.Update(0)
	s.Update(0)
	assert.Equal(t, 2, moves)
	assert.False(t, s.Scripted())
}

func TestInjectClick(t *testing.T) {
	s := newTestScene(t, &testSketch{})
	var clicked []PointerEvent
	s.OnClick(func(ev PointerEvent) bool {
		clicked = append(clicked, ev)
		return true
	})
	s.InjectClick(30, 40, MouseButtonRight)
	s.Update(0)
	assert.Empty(t, clicked, "press alone is not a click")
	s.Update(0)
	require.Len(t, clicked, 1)
	assert.Equal(t, 30.0, clicked[0].X)
	assert.Equal(t, MouseButtonRight, clicked[0].Button)
}

func TestInjectDrag(t *testing.T) {
	s := newTestScene(t, &testSketch{})
	var xs []float64
	s.OnDrag(func(ev PointerEvent) bool {
		xs = append(xs, ev.X)
		return true
	})
	s.InjectDrag(Vec2{0, 0}, Vec2{30, 0}, 4, MouseButtonMiddle)
	assert.Equal(t, 4, s.Pending())
	for s.Pending() > 0 {
		s.Update(0)
	}
	require.Len(t, xs, 2)
	assert.InDelta(t, 10, xs[0], 1e-9)
	assert.InDelta(t, 20, xs[1], 1e-9)
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := newTestScene(t, &testSketch{})
	s.InjectDrag(Vec2{0, 0}, Vec2{30, 0}, 0, MouseButtonLeft)
	assert.Equal(t, 2, s.Pending())
}

func TestInjectWheelAndKey(t *testing.T) {
	s := newTestScene(t, &testSketch{})
	var delta float64
	var key Key
	s.OnWheel(func(ev WheelEvent) bool { delta = ev.Delta; return true })
	s.OnKey(func(ev KeyEvent) bool { key = ev.Key; return true })

	s.InjectWheel(-0.5)
	s.InjectKey(KeyR)
	s.Update(0)
	s.Update(0)
	assert.Equal(t, -0.5, delta)
	assert.Equal(t, KeyR, key)
}
