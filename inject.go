package frames

// injectedEvent is a single synthetic input event. Pointer events go through
// FeedPointer exactly like backend samples.
type injectedEvent struct {
	kind    EventType
	pointer PointerSample
	wheel   float64
	key     Key
}

// InjectMove queues a pointer move to (x, y) with no button held. Queued
// events are consumed one per Update.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{
		kind:    EventPointerMove,
		pointer: PointerSample{X: x, Y: y},
	})
}

// InjectPress queues a press of button at (x, y).
func (s *Scene) InjectPress(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, injectedEvent{
		kind:    EventDrag,
		pointer: PointerSample{X: x, Y: y, Pressed: true, Button: button},
	})
}

// InjectRelease queues a release at (x, y).
func (s *Scene) InjectRelease(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, injectedEvent{
		kind:    EventClick,
		pointer: PointerSample{X: x, Y: y, Button: button},
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (s *Scene) InjectClick(x, y float64, button MouseButton) {
	s.InjectPress(x, y, button)
	s.InjectRelease(x, y, button)
}

// InjectDrag queues a full drag: press at from, frames-2 linearly
// interpolated moves with the button held, and release at to. The sequence
// consumes frames ticks; the minimum is 2 (press and release).
func (s *Scene) InjectDrag(from, to Vec2, frames int, button MouseButton) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(from.X, from.Y, button)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.injectQueue = append(s.injectQueue, injectedEvent{
			kind: EventDrag,
			pointer: PointerSample{
				X:       from.X + (to.X-from.X)*t,
				Y:       from.Y + (to.Y-from.Y)*t,
				Pressed: true,
				Button:  button,
			},
		})
	}
	s.InjectRelease(to.X, to.Y, button)
}

// InjectWheel queues a wheel delta.
func (s *Scene) InjectWheel(delta float64) {
	s.injectQueue = append(s.injectQueue, injectedEvent{kind: EventWheel, wheel: delta})
}

// InjectKey queues a key press.
func (s *Scene) InjectKey(k Key) {
	s.injectQueue = append(s.injectQueue, injectedEvent{kind: EventKey, key: k})
}

// Pending returns the number of queued synthetic events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

// processInjected pops one queued event and dispatches it. It reports
// whether an event was consumed, in which case backends skip real pointer
// input for the tick.
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch ev.kind {
	case EventWheel:
		s.FeedWheel(ev.wheel)
	case EventKey:
		s.FeedKey(ev.key)
	default:
		s.FeedPointer(ev.pointer)
	}
	return true
}
