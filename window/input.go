package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/visualcomputing/frames"
)

var keyMap = map[ebiten.Key]frames.Key{
	ebiten.KeySpace:      frames.KeySpace,
	ebiten.KeyArrowUp:    frames.KeyUp,
	ebiten.KeyArrowDown:  frames.KeyDown,
	ebiten.KeyArrowLeft:  frames.KeyLeft,
	ebiten.KeyArrowRight: frames.KeyRight,
	ebiten.KeyR:          frames.KeyR,
	ebiten.KeyEscape:     frames.KeyEscape,
}

// pointerSample reads the mouse. When several buttons are held, left takes
// priority over right and right over middle.
func pointerSample() frames.PointerSample {
	mx, my := ebiten.CursorPosition()
	sm := frames.PointerSample{X: float64(mx), Y: float64(my)}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		sm.Pressed = true
		if left {
			sm.Button = frames.MouseButtonLeft
		} else if right {
			sm.Button = frames.MouseButtonRight
		} else {
			sm.Button = frames.MouseButtonMiddle
		}
	}
	return sm
}

// pollInput feeds one tick of real input into the scene. Wheel notches are
// scaled by Input.WheelStep; ebiten reports upward scrolling as positive, so
// the sign is flipped to make positive deltas scroll down.
func pollInput(s *frames.Scene) {
	s.FeedPointer(pointerSample())

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		s.FeedWheel(-yoff * s.Config().Input.WheelStep)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if fk, ok := keyMap[k]; ok {
			s.FeedKey(fk)
		}
	}
}
