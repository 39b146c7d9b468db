package entity

import "github.com/Workiva/go-datastructures/list"

// StackFrame records one Normal-window open so it can be reversed exactly on close.
type StackFrame struct {
	WindowID WindowID
	// Affected lists the windows hidden as a side effect of the open, in hide order.
	Affected []WindowID
	Policy   OpenPolicy
}

// VisibilityStack is the LIFO history of Normal-window opens.
// It is backed by a persistent list, so a value copy of the stack is a
// snapshot that later pushes and pops never alter.
type VisibilityStack struct {
	frames list.PersistentList
}

// NewVisibilityStack returns an empty stack.
func NewVisibilityStack() VisibilityStack {
	return VisibilityStack{frames: list.Empty}
}

func (s *VisibilityStack) list() list.PersistentList {
	if s.frames == nil {
		s.frames = list.Empty
	}
	return s.frames
}

// Push adds a frame on top.
func (s *VisibilityStack) Push(f StackFrame) {
	s.frames = s.list().Add(f)
}

// Peek returns the top frame without removing it.
func (s *VisibilityStack) Peek() (StackFrame, bool) {
	head, ok := s.list().Head()
	if !ok {
		return StackFrame{}, false
	}
	return head.(StackFrame), true
}

// Pop removes and returns the top frame.
func (s *VisibilityStack) Pop() (StackFrame, bool) {
	top, ok := s.Peek()
	if !ok {
		return StackFrame{}, false
	}
	tail, _ := s.list().Tail()
	s.frames = tail
	return top, true
}

// InsertAt places f so that depth frames lie below it. A depth at or beyond
// the current size pushes f on top.
func (s *VisibilityStack) InsertAt(depth int, f StackFrame) {
	n := s.Len()
	if depth < 0 {
		depth = 0
	}
	if depth >= n {
		s.Push(f)
		return
	}
	frames, err := s.list().Insert(f, uint(n-depth))
	if err != nil {
		s.Push(f)
		return
	}
	s.frames = frames
}

// Len returns the number of frames.
func (s *VisibilityStack) Len() int {
	return int(s.list().Length())
}

// Clear drops every frame.
func (s *VisibilityStack) Clear() {
	s.frames = list.Empty
}

// Frames returns the frames from bottom to top.
func (s *VisibilityStack) Frames() []StackFrame {
	n := s.Len()
	frames := make([]StackFrame, n)
	i := n - 1
	for l := s.list(); !l.IsEmpty(); {
		head, _ := l.Head()
		frames[i] = head.(StackFrame)
		i--
		l, _ = l.Tail()
	}
	return frames
}

// Contains reports whether any frame belongs to id.
func (s *VisibilityStack) Contains(id WindowID) bool {
	_, found := s.list().Find(func(item interface{}) bool {
		return item.(StackFrame).WindowID == id
	})
	return found
}
