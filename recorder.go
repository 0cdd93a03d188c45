package frames

// Recorder is an in-memory Surface that keeps every Op it receives. It backs
// headless tests and lets one pass be replayed onto another surface.
type Recorder struct {
	W, H       float64
	Background Color
	Clears     int
	Ops        []Op
}

// NewRecorder returns a recorder with the given bounds.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Bounds implements Surface.
func (r *Recorder) Bounds() Rect {
	return Rect{Width: r.W, Height: r.H}
}

// Clear implements Surface. Previously recorded ops are discarded.
func (r *Recorder) Clear(bg Color) {
	r.Background = bg
	r.Clears++
	r.Ops = r.Ops[:0]
}

// Draw implements Surface.
func (r *Recorder) Draw(op *Op) {
	r.Ops = append(r.Ops, *op)
}

// Reset drops all recorded state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Clears = 0
	r.Background = Color{}
}

// Replay draws the recorded ops onto s, each pre-multiplied by base.
func (r *Recorder) Replay(s Surface, base Affine) {
	for i := range r.Ops {
		op := r.Ops[i]
		op.Transform = Compose(base, op.Transform)
		s.Draw(&op)
	}
}

// Composite records one Display.Composite call.
type Composite struct {
	Layer string
	X, Y  float64
}

// RecordingDisplay is a Display whose screen and layers are Recorders.
type RecordingDisplay struct {
	ScreenRec  *Recorder
	Layers     map[string]*Recorder
	Composites []Composite
}

// NewRecordingDisplay returns a display with a w x h screen.
func NewRecordingDisplay(w, h float64) *RecordingDisplay {
	return &RecordingDisplay{
		ScreenRec: NewRecorder(w, h),
		Layers:    make(map[string]*Recorder),
	}
}

// Screen implements Display.
func (d *RecordingDisplay) Screen() Surface {
	return d.ScreenRec
}

// Layer implements Display.
func (d *RecordingDisplay) Layer(name string, w, h int) Surface {
	l, ok := d.Layers[name]
	if !ok {
		l = NewRecorder(float64(w), float64(h))
		d.Layers[name] = l
	}
	return l
}

// Composite implements Display.
func (d *RecordingDisplay) Composite(name string, x, y float64) {
	if _, ok := d.Layers[name]; !ok {
		return
	}
	d.Composites = append(d.Composites, Composite{Layer: name, X: x, Y: y})
}

// BeginTick clears the composite log so each tick's calls can be inspected.
func (d *RecordingDisplay) BeginTick() {
	d.Composites = d.Composites[:0]
}
