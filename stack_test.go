package frames

import (
	"errors"
	"math"
	"testing"
)

func TestStackStartsAtIdentity(t *testing.T) {
	s := NewTransformStack()
	assertMatrix(t, "current", s.Current(), Identity)
	if s.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", s.Depth())
	}
}

func TestStackPushComposes(t *testing.T) {
	s := NewTransformStack()
	s.Push(Translate(400, 40))
	s.Push(Rotate(math.Pi / 8))
	assertMatrix(t, "current", s.Current(), Translate(400, 40).Rotate(math.Pi/8))
	if s.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", s.Depth())
	}
}

func TestStackBalancedSequenceRestores(t *testing.T) {
	bases := []Affine{Identity, Translate(3, 4), TRS(Vec2{-5, 2}, 1.2, 0.75)}
	locals := []Affine{
		Translate(400, 40).Rotate(math.Pi / 8),
		Translate(200, 300).Rotate(-math.Pi / 4).Scale(2),
		Scale(0.5),
	}
	for _, base := range bases {
		s := NewTransformStack()
		s.Reset(base)
		before := s.Current()

		// push a, push b, pop, push c, push a, pop, pop, pop
		s.Push(locals[0])
		s.Push(locals[1])
		if err := s.Pop(); err != nil {
			t.Fatal(err)
		}
		s.Push(locals[2])
		s.Save()
		s.Concat(locals[0])
		for i := 0; i < 3; i++ {
			if err := s.Pop(); err != nil {
				t.Fatal(err)
			}
		}
		assertMatrix(t, "after unwind", s.Current(), before)
		if s.Depth() != 0 {
			t.Errorf("Depth = %d, want 0", s.Depth())
		}
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := NewTransformStack()
	s.Concat(Translate(7, 9))
	before := s.Current()

	err := s.Pop()
	if !errors.Is(err, ErrUnbalancedPop) {
		t.Fatalf("Pop err = %v, want ErrUnbalancedPop", err)
	}
	assertMatrix(t, "unchanged", s.Current(), before)
	if s.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", s.Depth())
	}
}

func TestStackSaveConcat(t *testing.T) {
	s := NewTransformStack()
	s.Save()
	s.Concat(Translate(10, 0))
	s.Concat(Scale(2))
	assertVec(t, "point", s.Current().Apply(Vec2{1, 0}), Vec2{12, 0})
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	assertMatrix(t, "restored", s.Current(), Identity)
}

func TestStackReset(t *testing.T) {
	s := NewTransformStack()
	s.Push(Scale(3))
	s.Push(Scale(3))
	s.Reset(Translate(1, 1))
	assertMatrix(t, "current", s.Current(), Translate(1, 1))
	if s.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", s.Depth())
	}
}
