package frames

// ShapeKind selects the primitive an Op draws.
type ShapeKind uint8

const (
	ShapeLine     ShapeKind = iota // Args: x0, y0, x1, y1
	ShapeRect                      // Args: x, y, w, h (corner mode)
	ShapeEllipse                   // Args: cx, cy, w, h (center mode, diameters)
	ShapeTriangle                  // Args: x0, y0, x1, y1, x2, y2
	ShapePoint                     // Args: x, y; diameter is the stroke weight
	ShapeText                      // Args: x, y (baseline start); Text holds the string
)

var shapeNames = [...]string{"line", "rect", "ellipse", "triangle", "point", "text"}

func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return "unknown"
}

// Style is the resolved paint state for one primitive.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	HasFill     bool
	HasStroke   bool
}

// DefaultStyle is the style of a fresh canvas: white fill, black 1px stroke.
var DefaultStyle = Style{
	Fill:        ColorWhite,
	Stroke:      ColorBlack,
	StrokeWidth: 1,
	HasFill:     true,
	HasStroke:   true,
}

// Op is a single drawing primitive in local coordinates, together with the
// accumulated transform and style it was issued under.
type Op struct {
	Shape     ShapeKind
	Args      [6]float64
	Text      string
	Transform Affine
	Style     Style
}

// Outline returns the op's closed outline in local coordinates. Ellipses are
// approximated with segments points. Lines, points and text have no outline.
func (op *Op) Outline(segments int) []Vec2 {
	a := &op.Args
	switch op.Shape {
	case ShapeRect:
		return []Vec2{{a[0], a[1]}, {a[0] + a[2], a[1]}, {a[0] + a[2], a[1] + a[3]}, {a[0], a[1] + a[3]}}
	case ShapeTriangle:
		return []Vec2{{a[0], a[1]}, {a[2], a[3]}, {a[4], a[5]}}
	case ShapeEllipse:
		return ellipsePoints(a[0], a[1], a[2]/2, a[3]/2, segments)
	}
	return nil
}

// Surface is a drawing backend. Implementations draw each Op by mapping its
// local coordinates through Op.Transform.
type Surface interface {
	// Bounds returns the drawable area in surface pixels.
	Bounds() Rect
	// Clear fills the whole surface with bg, ignoring any transform.
	Clear(bg Color)
	// Draw renders one primitive.
	Draw(op *Op)
}

// Display is what a sketch draws onto during one tick: the visible screen
// plus any number of persistent off-screen layers.
type Display interface {
	// Screen returns the visible surface.
	Screen() Surface
	// Layer returns the off-screen surface with the given name, creating it
	// with size w x h on first use.
	Layer(name string, w, h int) Surface
	// Composite copies the named layer onto the screen with its top-left
	// corner at (x, y). Unknown layers are ignored.
	Composite(name string, x, y float64)
}
