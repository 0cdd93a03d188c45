package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenshotter captures labelled frames requested during Update and writes
// them as PNG files at the end of the next Draw.
type screenshotter struct {
	dir   string
	queue []string
	seq   int
	err   error
}

func (sc *screenshotter) request(label string) {
	sc.queue = append(sc.queue, label)
}

// flush captures screen once for every queued label. The first write error
// is kept and reported from the next Update.
func (sc *screenshotter) flush(screen *ebiten.Image) {
	if len(sc.queue) == 0 {
		return
	}
	defer func() { sc.queue = sc.queue[:0] }()

	if err := os.MkdirAll(sc.dir, 0o755); err != nil {
		sc.fail(err)
		return
	}
	img := capture(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range sc.queue {
		sc.fail(sc.save(sc.filename(stamp, label), img))
	}
}

func (sc *screenshotter) fail(err error) {
	if err != nil && sc.err == nil {
		sc.err = fmt.Errorf("screenshot: %w", err)
	}
}

// filename numbers captures so several labels in one second stay distinct.
func (sc *screenshotter) filename(stamp, label string) string {
	sc.seq++
	return filepath.Join(sc.dir, fmt.Sprintf("%s_%03d_%s.png", stamp, sc.seq, fileLabel(label)))
}

func (sc *screenshotter) save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// capture copies the screen's premultiplied pixels into an RGBA image; the
// PNG encoder takes care of un-premultiplying translucent pixels.
func capture(src *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	src.ReadPixels(img.Pix)
	return img
}

// fileLabel keeps letters, digits, '-' and '.' and turns everything else
// into '_'. Blank labels become "unlabeled".
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < 0x80 && (r == '-' || r == '.' || r >= '0' && r <= '9' || r|0x20 >= 'a' && r|0x20 <= 'z') {
			return r
		}
		return '_'
	}, label)
}
