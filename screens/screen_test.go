package screens

import (
	"errors"
	"testing"
)

type stubScreen struct {
	BaseScreen
	err     error
	updates int
}

func (s *stubScreen) Update() error {
	s.updates++
	return s.err
}

func TestScreenStackUpdatesTopOnly(t *testing.T) {
	stack := NewScreenStack()
	bottom, top := &stubScreen{}, &stubScreen{}
	stack.Push(bottom)
	stack.Push(top)

	if err := stack.Update(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bottom.updates != 0 || top.updates != 1 {
		t.Errorf("expected only the top screen updated, got %d and %d", bottom.updates, top.updates)
	}
}

func TestScreenStackClose(t *testing.T) {
	stack := NewScreenStack()
	bottom := &stubScreen{}
	stack.Push(bottom)
	stack.Push(&stubScreen{err: ErrCloseScreen})

	if err := stack.Update(); err != nil {
		t.Fatalf("expected close to be handled by the stack, got %v", err)
	}
	if stack.Len() != 1 || stack.Peek() != Screen(bottom) {
		t.Errorf("expected the closing screen popped")
	}
}

func TestScreenStackPropagatesTransitions(t *testing.T) {
	stack := NewScreenStack()
	stack.Push(&stubScreen{err: ErrNewGame})

	if err := stack.Update(); !errors.Is(err, ErrNewGame) {
		t.Errorf("expected ErrNewGame, got %v", err)
	}
	if stack.Len() != 1 {
		t.Errorf("expected the screen kept")
	}
}

func TestScreenStackReplace(t *testing.T) {
	stack := NewScreenStack()
	stack.Push(&stubScreen{})
	stack.Push(&stubScreen{})
	next := &stubScreen{}

	stack.Replace(next)

	if stack.Len() != 1 || stack.Peek() != Screen(next) {
		t.Errorf("expected only the replacement left")
	}
	if stack.Pop() != Screen(next) || stack.Pop() != nil {
		t.Errorf("unexpected pop results")
	}
	if err := stack.Update(); err != nil {
		t.Errorf("expected empty stack update to be a no-op, got %v", err)
	}
}
