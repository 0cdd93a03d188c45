package frames

import "math"

// --- Events ---

// PointerEvent carries pointer data for move, drag and click handlers.
// PrevX/PrevY hold the pointer position of the previous sample.
type PointerEvent struct {
	X, Y         float64
	PrevX, PrevY float64
	Button       MouseButton
}

// WheelEvent carries a wheel delta. Positive values scroll down.
type WheelEvent struct {
	Delta float64
}

// KeyEvent carries a key press.
type KeyEvent struct {
	Key Key
}

// PointerSample is one raw reading of the pointer as a backend sees it each
// tick: position and whether a button is held.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	Button  MouseButton
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent) bool
}

type wheelHandler struct {
	id uint32
	fn func(WheelEvent) bool
}

type keyHandler struct {
	id uint32
	fn func(KeyEvent) bool
}

type handlerRegistry struct {
	pointerMove []pointerHandler
	drag        []pointerHandler
	click       []pointerHandler
	wheel       []wheelHandler
	key         []keyHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventWheel:
		h.reg.wheel = removeHandler(h.reg.wheel, h.id)
	case EventKey:
		h.reg.key = removeHandler(h.reg.key, h.id)
	}
}

func (h pointerHandler) handlerID() uint32 { return h.id }
func (h wheelHandler) handlerID() uint32   { return h.id }
func (h keyHandler) handlerID() uint32     { return h.id }

// removeHandler deletes the entry with the given id, keeping order.
func removeHandler[H interface{ handlerID() uint32 }](s []H, id uint32) []H {
	for i := range s {
		if s[i].handlerID() == id {
			var zero H
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) id() uint32 {
	r.nextID++
	return r.nextID
}

// OnPointerMove registers fn for pointer motion with no button held.
// Handlers run in registration order until one returns true.
func (s *Scene) OnPointerMove(fn func(PointerEvent) bool) CallbackHandle {
	id := s.handlers.id()
	s.handlers.pointerMove = append(s.handlers.pointerMove, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerMove}
}

// OnDrag registers fn for pointer motion with a button held.
func (s *Scene) OnDrag(fn func(PointerEvent) bool) CallbackHandle {
	id := s.handlers.id()
	s.handlers.drag = append(s.handlers.drag, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDrag}
}

// OnClick registers fn for clicks.
func (s *Scene) OnClick(fn func(PointerEvent) bool) CallbackHandle {
	id := s.handlers.id()
	s.handlers.click = append(s.handlers.click, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// OnWheel registers fn for wheel input.
func (s *Scene) OnWheel(fn func(WheelEvent) bool) CallbackHandle {
	id := s.handlers.id()
	s.handlers.wheel = append(s.handlers.wheel, wheelHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventWheel}
}

// OnKey registers fn for key presses.
func (s *Scene) OnKey(fn func(KeyEvent) bool) CallbackHandle {
	id := s.handlers.id()
	s.handlers.key = append(s.handlers.key, keyHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventKey}
}

// dispatchPointer runs handlers in order and reports whether one handled ev.
func dispatchPointer(hs []pointerHandler, ev PointerEvent) bool {
	for _, h := range hs {
		if h.fn(ev) {
			return true
		}
	}
	return false
}

// --- Pointer tracking ---

// pointerState turns successive samples into move, drag and click events.
type pointerState struct {
	seen     bool
	down     bool
	button   MouseButton
	lastX    float64
	lastY    float64
	startX   float64
	startY   float64
	traveled float64
}

// FeedPointer consumes one raw pointer sample and dispatches the resulting
// event, if any. It reports whether a handler handled it.
//
// Motion with no button held is a pointer move; motion with a button held is
// a drag carrying the previous position; a release whose pointer stayed
// within Input.ClickSlop of the press position is a click.
func (s *Scene) FeedPointer(sm PointerSample) bool {
	p := &s.pointer
	moved := !p.seen || sm.X != p.lastX || sm.Y != p.lastY
	prevX, prevY := p.lastX, p.lastY
	if !p.seen {
		prevX, prevY = sm.X, sm.Y
	}
	p.seen = true
	p.lastX, p.lastY = sm.X, sm.Y

	switch {
	case sm.Pressed && !p.down:
		p.down = true
		p.button = sm.Button
		p.startX, p.startY = sm.X, sm.Y
		p.traveled = 0
		return false
	case sm.Pressed && p.down:
		if !moved {
			return false
		}
		p.traveled = math.Max(p.traveled, math.Hypot(sm.X-p.startX, sm.Y-p.startY))
		return dispatchPointer(s.handlers.drag, PointerEvent{
			X: sm.X, Y: sm.Y, PrevX: prevX, PrevY: prevY, Button: p.button,
		})
	case !sm.Pressed && p.down:
		p.down = false
		p.traveled = math.Max(p.traveled, math.Hypot(sm.X-p.startX, sm.Y-p.startY))
		if p.traveled > s.cfg.Input.ClickSlop {
			return false
		}
		return dispatchPointer(s.handlers.click, PointerEvent{
			X: sm.X, Y: sm.Y, PrevX: prevX, PrevY: prevY, Button: p.button,
		})
	default:
		if !moved {
			return false
		}
		return dispatchPointer(s.handlers.pointerMove, PointerEvent{
			X: sm.X, Y: sm.Y, PrevX: prevX, PrevY: prevY, Button: sm.Button,
		})
	}
}

// FeedWheel dispatches a wheel delta.
func (s *Scene) FeedWheel(delta float64) bool {
	ev := WheelEvent{Delta: delta}
	for _, h := range s.handlers.wheel {
		if h.fn(ev) {
			return true
		}
	}
	return false
}

// FeedKey dispatches a key press.
func (s *Scene) FeedKey(k Key) bool {
	ev := KeyEvent{Key: k}
	for _, h := range s.handlers.key {
		if h.fn(ev) {
			return true
		}
	}
	return false
}
