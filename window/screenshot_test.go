package window

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"minimap", "minimap"},
		{"eye zoomed", "eye_zoomed"},
		{"path/to\\file", "path_to_file"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"v1.2-final", "v1.2-final"},
		{"β=π/4", "____4"},
		{"Eye_2", "Eye_2"},
	}
	for _, tt := range tests {
		got := fileLabel(tt.in)
		if got != tt.want {
			t.Errorf("fileLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotterQueue(t *testing.T) {
	sc := &screenshotter{dir: t.TempDir()}
	sc.request("a")
	sc.request("b")
	if len(sc.queue) != 2 || sc.queue[0] != "a" || sc.queue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", sc.queue)
	}
	// Nothing queued means nothing to capture.
	empty := &screenshotter{dir: t.TempDir()}
	empty.flush(nil)
	if empty.err != nil {
		t.Errorf("flush err = %v", empty.err)
	}
}

func TestScreenshotterFilename(t *testing.T) {
	sc := &screenshotter{dir: "shots"}
	first := sc.filename("20260101_120000", "eye zoomed")
	second := sc.filename("20260101_120000", "eye zoomed")
	if want := filepath.Join("shots", "20260101_120000_001_eye_zoomed.png"); first != want {
		t.Errorf("filename = %q, want %q", first, want)
	}
	if first == second {
		t.Errorf("repeated label reused %q", first)
	}
}

func TestScreenshotterSave(t *testing.T) {
	// Half-transparent red, premultiplied as the screen stores it.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 128, A: 128})
	sc := &screenshotter{dir: t.TempDir()}
	path := filepath.Join(sc.dir, "shot.png")
	if err := sc.save(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	c := color.NRGBAModel.Convert(got.At(1, 1)).(color.NRGBA)
	if c.R != 255 || c.A != 128 {
		t.Errorf("pixel = %v, want straight-alpha red", c)
	}
}

func TestScreenshotterFailKeepsFirst(t *testing.T) {
	sc := &screenshotter{dir: t.TempDir()}
	sc.fail(nil)
	if sc.err != nil {
		t.Fatalf("err = %v after nil", sc.err)
	}
	path := filepath.Join(sc.dir, "missing", "shot.png")
	sc.fail(sc.save(path, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	first := sc.err
	if first == nil {
		t.Fatal("expected error for missing directory")
	}
	sc.fail(os.ErrClosed)
	if sc.err != first {
		t.Errorf("err = %v, want first error kept", sc.err)
	}
}
