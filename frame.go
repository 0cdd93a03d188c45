package frames

import (
	"fmt"
	"io"
	"strings"
)

// Content is something drawable in a frame's local coordinate system.
type Content interface {
	Draw(c *Canvas)
}

// ContentFunc adapts a plain function to Content.
type ContentFunc func(c *Canvas)

// Draw calls f(c).
func (f ContentFunc) Draw(c *Canvas) { f(c) }

// Frame is a node of the scene graph: a local coordinate system defined by
// a transform relative to its parent, with attached content and children.
// Children are drawn after their parent's content, in insertion order.
type Frame struct {
	Name    string
	Local   Affine
	Content []Content
	// Hidden skips the frame and its whole subtree when rendering.
	Hidden bool

	parent   *Frame
	children []*Frame
}

// NewFrame creates a detached frame.
func NewFrame(name string, local Affine, content ...Content) *Frame {
	return &Frame{Name: name, Local: local, Content: content}
}

// SetLocal replaces the frame's local transform.
func (f *Frame) SetLocal(m Affine) {
	f.Local = m
}

// AddContent appends drawables to the frame.
func (f *Frame) AddContent(content ...Content) {
	f.Content = append(f.Content, content...)
}

// --- Tree manipulation ---

// AddChild appends child to this frame's children and returns child.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this frame (cycle).
func (f *Frame) AddChild(child *Frame) *Frame {
	if child == nil {
		panic("frames: cannot add nil child")
	}
	if isAncestor(child, f) {
		panic("frames: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = f
	f.children = append(f.children, child)
	return child
}

// AddChildAt inserts child at the given index. The index counts f's
// children without child, so moving a child within f accepts 0 through
// NumChildren()-1. Same reparenting and cycle-check behavior as AddChild;
// a bad index panics before anything is detached.
func (f *Frame) AddChildAt(child *Frame, index int) *Frame {
	if child == nil {
		panic("frames: cannot add nil child")
	}
	if isAncestor(child, f) {
		panic("frames: adding child would create a cycle")
	}
	limit := len(f.children)
	if child.parent == f {
		limit--
	}
	if index < 0 || index > limit {
		panic("frames: child index out of range")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = f
	f.children = append(f.children, nil)
	copy(f.children[index+1:], f.children[index:])
	f.children[index] = child
	return child
}

// RemoveChild detaches child from this frame.
// Panics if child's parent is not f.
func (f *Frame) RemoveChild(child *Frame) {
	if child.parent != f {
		panic("frames: child's parent is not this frame")
	}
	f.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this frame from its parent.
// No-op if this frame has no parent.
func (f *Frame) RemoveFromParent() {
	if f.parent == nil {
		return
	}
	f.parent.RemoveChild(f)
}

// Parent returns the parent frame, or nil for a root.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (f *Frame) Children() []*Frame {
	return f.children
}

// NumChildren returns the number of children.
func (f *Frame) NumChildren() int {
	return len(f.children)
}

// ChildAt returns the child at the given index.
func (f *Frame) ChildAt(index int) *Frame {
	return f.children[index]
}

// Find returns the first frame named name in depth-first order, starting
// with f itself, or nil.
func (f *Frame) Find(name string) *Frame {
	var found *Frame
	f.Walk(func(n *Frame, _ int) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits f and its descendants depth-first in draw order. depth is 0
// for f. Returning false from fn stops the walk.
func (f *Frame) Walk(fn func(n *Frame, depth int) bool) {
	f.walk(fn, 0)
}

func (f *Frame) walk(fn func(*Frame, int) bool, depth int) bool {
	if !fn(f, depth) {
		return false
	}
	for _, child := range f.children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Depth returns the number of ancestors of f.
func (f *Frame) Depth() int {
	d := 0
	for p := f.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Coordinate conversion ---

// WorldTransform composes the local transforms from the root down to f.
func (f *Frame) WorldTransform() Affine {
	m := f.Local
	for p := f.parent; p != nil; p = p.parent {
		m = Compose(p.Local, m)
	}
	return m
}

// LocalToWorld converts a point in f's coordinate system to world space.
func (f *Frame) LocalToWorld(p Vec2) Vec2 {
	return f.WorldTransform().Apply(p)
}

// WorldToLocal converts a world-space point to f's coordinate system.
func (f *Frame) WorldToLocal(p Vec2) (Vec2, error) {
	inv, err := f.WorldTransform().Invert()
	if err != nil {
		return Vec2{}, fmt.Errorf("frame %q: %w", f.Name, err)
	}
	return inv.Apply(p), nil
}

// --- Rendering ---

// RenderFrame draws f and its subtree onto c: it pushes f.Local, draws the
// content in the resulting coordinate system, renders the children in order
// and pops. Hidden frames are skipped.
func RenderFrame(c *Canvas, f *Frame) error {
	return renderFrame(c, f, nil)
}

// RenderFrameExcept is RenderFrame with the given subtrees left out.
func RenderFrameExcept(c *Canvas, f *Frame, skip ...*Frame) error {
	return renderFrame(c, f, skip)
}

func renderFrame(c *Canvas, f *Frame, skip []*Frame) error {
	if f.Hidden {
		return nil
	}
	for _, s := range skip {
		if s == f {
			return nil
		}
	}
	depth := c.Depth()
	c.PushFrame(f.Local)
	for _, content := range f.Content {
		content.Draw(c)
		if c.Depth() != depth+1 {
			err := fmt.Errorf("frame %q: content changed depth by %d: %w", f.Name, c.Depth()-depth-1, ErrUnbalanced)
			unwind(c, depth)
			return err
		}
	}
	for _, child := range f.children {
		if err := renderFrame(c, child, skip); err != nil {
			unwind(c, depth)
			return err
		}
	}
	return c.Pop()
}

// unwind pops c back down to depth after a failed pass.
func unwind(c *Canvas, depth int) {
	for c.Depth() > depth {
		if c.Pop() != nil {
			return
		}
	}
}

// DumpTree writes an indented outline of the tree rooted at f.
func DumpTree(w io.Writer, f *Frame) error {
	var err error
	f.Walk(func(n *Frame, depth int) bool {
		hidden := ""
		if n.Hidden {
			hidden = " (hidden)"
		}
		_, err = fmt.Fprintf(w, "%s%s %v%s\n", strings.Repeat("  ", depth), n.Name, n.Local, hidden)
		return err == nil
	})
	return err
}

// --- Helpers ---

// isAncestor reports whether candidate is f or an ancestor of f.
func isAncestor(candidate, f *Frame) bool {
	for p := f; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from f.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (f *Frame) removeChildByPtr(child *Frame) {
	for i, c := range f.children {
		if c == child {
			copy(f.children[i:], f.children[i+1:])
			f.children[len(f.children)-1] = nil
			f.children = f.children[:len(f.children)-1]
			return
		}
	}
}
