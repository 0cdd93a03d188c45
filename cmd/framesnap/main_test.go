package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/test"

	"github.com/visualcomputing/frames/sketches"
)

func TestNewSceneUnknown(t *testing.T) {
	_, err := newScene("nope", "", false)
	test.That(t, errors.Is(err, sketches.ErrUnknownSketch), "unknown sketch error")
	test.That(t, strings.Contains(err.Error(), "scene-graph"), "lists available sketches")
}

func TestNewSceneConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.toml")
	test.Error(t, os.WriteFile(path, []byte("width = 320\nheight = 240\n"), 0o644))
	scene, err := newScene("rotation", path, true)
	test.Error(t, err)
	w, h := scene.Size()
	test.T(t, w, 320)
	test.T(t, h, 240)
	test.That(t, scene.Config().Debug, "verbose enables debug")
}

func TestSnapRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames2.svg")
	cmd := &Snap{Output: out, Ticks: 1, Sketch: "frames2"}
	test.Error(t, cmd.Run())
	info, err := os.Stat(out)
	test.Error(t, err)
	test.That(t, info.Size() > 0, "svg written")
}

func TestSnapRunUsage(t *testing.T) {
	test.T(t, (&Snap{}).Run(), argp.ShowUsage)
	test.T(t, (&Tree{}).Run(), argp.ShowUsage)
}
