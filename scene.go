package frames

import (
	"fmt"
	"log/slog"
	"time"
)

// Sketch is one interactive demo. Setup builds its frames and registers
// input handlers; Draw renders one tick.
type Sketch interface {
	// Name identifies the sketch, e.g. "minimap".
	Name() string
	// Size returns the sketch's natural canvas size in pixels.
	Size() (w, h int)
	// Setup is called once by NewScene.
	Setup(s *Scene) error
	// Draw renders one tick. The screen has already been cleared to the
	// configured background.
	Draw(s *Scene, d Display) error
}

// Updater is implemented by sketches that advance state every tick
// (animations), independent of input.
type Updater interface {
	Update(s *Scene, dt float32)
}

// Scene runs a sketch: it owns the configuration, the input handlers and
// queue, and drives the per-tick update and draw passes.
type Scene struct {
	sketch Sketch
	cfg    Config
	log    *slog.Logger
	width  int
	height int

	handlers handlerRegistry
	pointer  pointerState

	injectQueue []injectedEvent
	runner      *ScriptRunner
	screenshot  func(label string)

	tick    uint64
	screens map[Surface]*Canvas
}

// NewScene configures a scene for sk and runs its Setup.
func NewScene(sk Sketch, cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := sk.Size()
	w, h = cfg.Size(w, h)
	s := &Scene{
		sketch:  sk,
		cfg:     cfg,
		log:     slog.Default(),
		width:   w,
		height:  h,
		screens: make(map[Surface]*Canvas),
	}
	if err := sk.Setup(s); err != nil {
		return nil, fmt.Errorf("setup %s: %w", sk.Name(), err)
	}
	return s, nil
}

// Sketch returns the sketch this scene runs.
func (s *Scene) Sketch() Sketch {
	return s.sketch
}

// Config returns the scene configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Size returns the canvas size in pixels.
func (s *Scene) Size() (w, h int) {
	return s.width, s.height
}

// Tick returns the number of completed Draw calls.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// SetLogger replaces the scene's logger. A nil logger restores slog.Default().
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.log = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *slog.Logger {
	return s.log
}

// SetScreenshotFunc installs the hook invoked for scripted screenshots.
// Backends that can capture frames set it; without one, screenshot steps
// are logged and skipped.
func (s *Scene) SetScreenshotFunc(fn func(label string)) {
	s.screenshot = fn
}

// Screenshot requests a labelled capture of the next rendered frame.
func (s *Scene) Screenshot(label string) {
	if s.screenshot == nil {
		s.log.Warn("screenshot requested but backend cannot capture", "label", label)
		return
	}
	s.screenshot(label)
}

// Update advances one tick of input and animation: the script runner steps,
// one injected event is consumed, and the sketch's Updater runs.
func (s *Scene) Update(dt float32) {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInjected()
	if u, ok := s.sketch.(Updater); ok {
		u.Update(s, dt)
	}
}

// Canvas returns a drawing cursor for surf that is reused across ticks.
func (s *Scene) Canvas(surf Surface) *Canvas {
	c, ok := s.screens[surf]
	if !ok {
		c = NewCanvas(surf)
		s.screens[surf] = c
	}
	return c
}

// Draw renders one tick onto d.
func (s *Scene) Draw(d Display) error {
	var t0 time.Time
	if s.cfg.Debug {
		t0 = time.Now()
	}

	screen := d.Screen()
	screen.Clear(s.cfg.Background)
	err := s.sketch.Draw(s, d)

	// Balance is checked on every cursor used this tick, even after an error,
	// so the next tick starts clean.
	var ops, depth int
	for _, c := range s.screens {
		n, md := c.stats()
		ops += n
		depth = max(depth, md)
		if ferr := c.Finish(); ferr != nil && err == nil {
			err = ferr
		}
	}
	s.tick++

	if s.cfg.Debug {
		s.debugLog(debugStats{
			drawTime: time.Since(t0),
			opCount:  ops,
			maxDepth: depth,
		})
	}
	if err != nil {
		return fmt.Errorf("%s tick %d: %w", s.sketch.Name(), s.tick, err)
	}
	return nil
}
