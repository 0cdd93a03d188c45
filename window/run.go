// Package window runs frames sketches in an Ebitengine window.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/visualcomputing/frames"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title. Defaults to the sketch name.
	Title string
	// Width and Height override the window size. Zero uses the scene size.
	Width, Height int
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives PNGs from scripted screenshot steps.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Script, when set, drives the sketch instead of the user.
	Script *frames.ScriptRunner
	// ExitAfterScript closes the window once Script has finished.
	ExitAfterScript bool
}

// Game adapts a frames.Scene to ebiten.Game. Use it directly to embed a
// scene in a larger ebiten program; Run wraps it in a window.
type Game struct {
	scene   *frames.Scene
	display *Display
	shots   *screenshotter
	fps     *fpsWidget
	cfg     RunConfig
	err     error
}

// NewGame prepares scene for ebiten.
func NewGame(scene *frames.Scene, rc RunConfig) (*Game, error) {
	d, err := NewDisplay()
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if rc.ScreenshotDir == "" {
		rc.ScreenshotDir = "screenshots"
	}
	g := &Game{
		scene:   scene,
		display: d,
		shots:   &screenshotter{dir: rc.ScreenshotDir},
		cfg:     rc,
	}
	if rc.ShowFPS {
		g.fps = newFPSWidget()
	}
	scene.SetScreenshotFunc(g.shots.request)
	if rc.Script != nil {
		scene.SetScriptRunner(rc.Script)
	}
	return g, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.shots.err != nil {
		return g.shots.err
	}
	dt := float32(1.0 / float64(ebiten.TPS()))

	if !g.scene.Scripted() {
		pollInput(g.scene)
	}
	g.scene.Update(dt)
	if g.fps != nil {
		g.fps.update(float64(dt))
	}
	if g.cfg.ExitAfterScript && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game. A draw error stops the game on the next
// Update.
func (g *Game) Draw(screen *ebiten.Image) {
	g.display.SetScreen(screen)
	if err := g.scene.Draw(g.display); err != nil && g.err == nil {
		g.err = err
	}
	g.shots.flush(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is the scene size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.scene.Size()
}

// Run creates a scene for sk, opens a window and runs until it is closed.
func Run(sk frames.Sketch, cfg frames.Config, rc RunConfig) error {
	scene, err := frames.NewScene(sk, cfg)
	if err != nil {
		return err
	}
	g, err := NewGame(scene, rc)
	if err != nil {
		return err
	}
	defer g.display.Dispose()

	w, h := scene.Size()
	if rc.Width > 0 && rc.Height > 0 {
		w, h = rc.Width, rc.Height
	}
	title := rc.Title
	if title == "" {
		title = sk.Name()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.FrameRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
