package window

import "testing"

func TestDisplayLayer(t *testing.T) {
	d, err := NewDisplay()
	if err != nil {
		t.Fatal(err)
	}
	defer d.Dispose()

	l := d.Layer("minimap", 40, 30).(*Surface)
	if l.face == nil || l.face != d.screen.face {
		t.Errorf("layer face = %v, want the screen's", l.face)
	}
	if got := d.Layer("minimap", 40, 30); got != l {
		t.Error("layer not reused")
	}
	if got := d.Layer("minimap", 20, 10); got != l {
		t.Error("resize replaced the layer")
	}
	if b := l.Bounds(); b.Width != 20 || b.Height != 10 {
		t.Errorf("bounds = %v, want 20x10", b)
	}
}
