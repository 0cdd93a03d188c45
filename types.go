package frames

import (
	"fmt"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color so it can be handed to any backend directly.
type Color struct {
	R, G, B, A float64
}

// Common colors used by the sketches.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB returns an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA8 returns a color from 8-bit channel values including alpha.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// Gray returns an opaque gray level from an 8-bit value.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// RGBA implements color.Color. Values are alpha-premultiplied, 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := clamp01(c.A)
	r = uint32(clamp01(c.R)*a8*0xffff + 0.5)
	g = uint32(clamp01(c.G)*a8*0xffff + 0.5)
	b = uint32(clamp01(c.B)*a8*0xffff + 0.5)
	a = uint32(a8*0xffff + 0.5)
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets and sizes throughout the API.
type Vec2 struct {
	X float64 `toml:"x" json:"x"`
	Y float64 `toml:"y" json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button, also accepted as "center"
)

var mouseButtonNames = [...]string{"left", "right", "middle"}

// String returns the lower-case button name.
func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b MouseButton) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "center" is accepted as
// an alias for the middle button.
func (b *MouseButton) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "center" {
		s = "middle"
	}
	for i, name := range mouseButtonNames {
		if s == name {
			*b = MouseButton(i)
			return nil
		}
	}
	return fmt.Errorf("frames: unknown mouse button %q", string(text))
}

// Key identifies a keyboard key the sketches react to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
	KeyEscape
)

var keyNames = [...]string{"unknown", "space", "up", "down", "left", "right", "r", "escape"}

// String returns the lower-case key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range keyNames {
		if s == name {
			*k = Key(i)
			return nil
		}
	}
	return fmt.Errorf("frames: unknown key %q", string(text))
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventPointerMove EventType = iota // pointer moved with no button held
	EventDrag                         // pointer moved with a button held
	EventClick                        // button pressed and released without travelling
	EventWheel                        // wheel turned
	EventKey                          // key pressed
)
