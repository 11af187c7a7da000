package push

import (
	"fmt"
	"strings"
)

// Stack is an ordered container with deep-indexed operations. The top is the
// most recently pushed element; depth d addresses the d-th element counting
// from the top, 0-based. Operations given an out-of-range depth do nothing.
type Stack[T any] struct {
	items []T

	// clone, when set, is applied by non-destructive reads so that callers
	// never share state with a stack slot.
	clone func(T) T
}

// NewStack returns an empty stack of plain values.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

func newItemStack() *Stack[Item] { return &Stack[Item]{clone: Item.Clone} }

// Size reports the number of elements.
func (s *Stack[T]) Size() int { return len(s.items) }

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// PushFront inserts v at the bottom of the stack.
func (s *Stack[T]) PushFront(v T) {
	s.items = append(s.items, v)
	copy(s.items[1:], s.items[:len(s.items)-1])
	s.items[0] = v
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	i := len(s.items) - 1
	v, s.items = s.items[i], s.items[:i]
	return v, true
}

// PopN removes and returns the top n elements in top-to-bottom order. If
// fewer than n elements exist nothing is removed and ok is false; every
// caller relies on this all-or-nothing contract to keep underflow from
// corrupting the stack.
func (s *Stack[T]) PopN(n int) (vs []T, ok bool) {
	if n <= 0 || len(s.items) < n {
		return nil, false
	}
	vs = make([]T, n)
	for i := 0; i < n; i++ {
		vs[i] = s.items[len(s.items)-1-i]
	}
	s.items = s.items[:len(s.items)-n]
	return vs, true
}

// Peek returns a non-destructive read of the element at depth.
func (s *Stack[T]) Peek(depth int) (v T, ok bool) {
	if depth < 0 || depth >= len(s.items) {
		return v, false
	}
	v = s.items[len(s.items)-1-depth]
	if s.clone != nil {
		v = s.clone(v)
	}
	return v, true
}

// PeekN returns non-destructive reads of the top n elements in top-to-bottom
// order.
func (s *Stack[T]) PeekN(n int) (vs []T, ok bool) {
	if n <= 0 || len(s.items) < n {
		return nil, false
	}
	vs = make([]T, n)
	for i := 0; i < n; i++ {
		v := s.items[len(s.items)-1-i]
		if s.clone != nil {
			v = s.clone(v)
		}
		vs[i] = v
	}
	return vs, true
}

// Bottom returns the bottom element without copying; the parser uses it to
// reach the list currently under construction.
func (s *Stack[T]) Bottom() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[0], true
}

// Yank removes the element at depth and pushes it on top. Yanking the top
// element or an out-of-range depth does nothing.
func (s *Stack[T]) Yank(depth int) {
	if depth <= 0 || depth >= len(s.items) {
		return
	}
	i := len(s.items) - 1 - depth
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items[len(s.items)-1] = v
}

// Shove removes the top element and reinserts it depth positions down.
func (s *Stack[T]) Shove(depth int) {
	if depth <= 0 || depth >= len(s.items) {
		return
	}
	i := len(s.items) - 1
	v := s.items[i]
	j := i - depth
	copy(s.items[j+1:], s.items[j:i])
	s.items[j] = v
}

// Replace overwrites the element at depth with v.
func (s *Stack[T]) Replace(depth int, v T) {
	if depth < 0 || depth >= len(s.items) {
		return
	}
	s.items[len(s.items)-1-depth] = v
}

// Flush removes every element.
func (s *Stack[T]) Flush() { s.items = s.items[:0] }

// String renders the stack top-down as "1:<top>; 2:<next>;". Lists render
// their elements the same way, giving a deterministic rendering used for
// equality checks and golden tests.
func (s *Stack[T]) String() string {
	var sb strings.Builder
	for i := len(s.items) - 1; i >= 0; i-- {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%v;", len(s.items)-i, s.items[i])
	}
	return sb.String()
}
