package frames

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTweenFields bounds how many fields a TweenGroup drives.
const maxTweenFields = 4

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each tick; after writing the fields it calls the group's OnUpdate hook, if
// any, so owners can rebuild derived transforms.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	fields [maxTweenFields]*float64
	count  int

	OnUpdate func()
	Done     bool
}

// Add animates *field from its current value to to over duration seconds.
// Panics when the group is full.
func (g *TweenGroup) Add(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if g.count == maxTweenFields {
		panic("frames: tween group is full")
	}
	if fn == nil {
		fn = ease.Linear
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
	return g
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.OnUpdate != nil {
		g.OnUpdate()
	}
}

// Len returns the number of animated fields.
func (g *TweenGroup) Len() int {
	return g.count
}
