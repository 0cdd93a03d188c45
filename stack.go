package frames

import "errors"

var (
	// ErrUnbalancedPop is returned by Pop when there is no saved state to restore.
	ErrUnbalancedPop = errors.New("frames: pop without matching push")
	// ErrUnbalanced is returned when a drawing pass ends with pushes outstanding
	// or a drawable leaves the cursor at a different depth than it found it.
	ErrUnbalanced = errors.New("frames: unbalanced push/pop nesting")
)

// TransformStack tracks the accumulated transform while walking nested frames.
// The zero value is not ready for use; call NewTransformStack.
type TransformStack struct {
	current Affine
	saved   []Affine
}

// NewTransformStack returns an empty stack whose current transform is the identity.
func NewTransformStack() *TransformStack {
	return &TransformStack{current: Identity}
}

// Push saves the current transform and enters a child frame:
// current = Compose(current, local).
func (s *TransformStack) Push(local Affine) {
	s.Save()
	s.current = Compose(s.current, local)
}

// Save remembers the current transform without changing it. It pairs with
// Pop and is followed by Concat calls, the way a canvas push is followed by
// translate/rotate/scale.
func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.current)
}

// Concat post-multiplies the current transform by m in place.
func (s *TransformStack) Concat(m Affine) {
	s.current = Compose(s.current, m)
}

// Pop restores the most recently saved transform. Popping an empty stack
// returns ErrUnbalancedPop and leaves the stack untouched.
func (s *TransformStack) Pop() error {
	n := len(s.saved)
	if n == 0 {
		return ErrUnbalancedPop
	}
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return nil
}

// Current returns the accumulated transform at the current nesting depth.
func (s *TransformStack) Current() Affine {
	return s.current
}

// Depth returns the number of outstanding pushes.
func (s *TransformStack) Depth() int {
	return len(s.saved)
}

// Reset drops all saved state and sets the current transform to base.
func (s *TransformStack) Reset(base Affine) {
	s.current = base
	s.saved = s.saved[:0]
}
