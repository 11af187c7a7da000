package push

import (
	"fmt"
	"strings"
)

// Vector values back the three vector stacks. They render as a
// comma-separated element list in brackets.
type (
	BoolVector  struct{ Values []bool }
	IntVector   struct{ Values []int }
	FloatVector struct{ Values []float64 }
)

func (v BoolVector) String() string  { return renderVector(v.Values) }
func (v IntVector) String() string   { return renderVector(v.Values) }
func (v FloatVector) String() string { return renderVector(v.Values) }

func renderVector[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (v BoolVector) clone() BoolVector {
	return BoolVector{Values: append([]bool(nil), v.Values...)}
}

func (v IntVector) clone() IntVector {
	return IntVector{Values: append([]int(nil), v.Values...)}
}

func (v FloatVector) clone() FloatVector {
	return FloatVector{Values: append([]float64(nil), v.Values...)}
}

func loadBoolVectorInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "BOOLVECTOR", boolVectorStack, func(v BoolVector) Item {
		return BoolVectorLiteral{Vector: v}
	})

	set.Register("BOOLVECTOR.AND", boolVectorAnd)
	set.Register("BOOLVECTOR.OR", boolVectorOr)
	set.Register("BOOLVECTOR.NOT", boolVectorNot)
	set.Register("BOOLVECTOR.GET", boolVectorGet)
	set.Register("BOOLVECTOR.SET", boolVectorSet)
}

func loadIntVectorInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "INTVECTOR", intVectorStack, func(v IntVector) Item {
		return IntVectorLiteral{Vector: v}
	})

	set.Register("INTVECTOR.+", intVectorAdd)
	set.Register("INTVECTOR.-", intVectorSub)
	set.Register("INTVECTOR.GET", intVectorGet)
	set.Register("INTVECTOR.SET", intVectorSet)
}

func loadFloatVectorInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "FLOATVECTOR", floatVectorStack, func(v FloatVector) Item {
		return FloatVectorLiteral{Vector: v}
	})

	set.Register("FLOATVECTOR.+", floatVectorAdd)
	set.Register("FLOATVECTOR.-", floatVectorSub)
	set.Register("FLOATVECTOR.GET", floatVectorGet)
	set.Register("FLOATVECTOR.SET", floatVectorSet)
}

func boolVectorStack(s *State) *Stack[BoolVector] { return s.BoolVector }
func intVectorStack(s *State) *Stack[IntVector] { return s.IntVector }
func floatVectorStack(s *State) *Stack[FloatVector] { return s.FloatVector }

// BOOLVECTOR.AND: element-wise conjunction of the top two vectors. A length
// mismatch leaves the stack unchanged.
func boolVectorAnd(s *State, _ InstructionCache) {
	boolVectorZip(s, func(a, b bool) bool { return a && b })
}

// BOOLVECTOR.OR: element-wise disjunction of the top two vectors.
func boolVectorOr(s *State, _ InstructionCache) {
	boolVectorZip(s, func(a, b bool) bool { return a || b })
}

// BOOLVECTOR.NOT: element-wise negation of the top vector.
func boolVectorNot(s *State, _ InstructionCache) {
	if v, ok := s.BoolVector.Pop(); ok {
		out := make([]bool, len(v.Values))
		for i, b := range v.Values {
			out[i] = !b
		}
		s.BoolVector.Push(BoolVector{Values: out})
	}
}

func boolVectorZip(s *State, f func(a, b bool) bool) {
	vs, ok := s.BoolVector.PeekN(2)
	if !ok || len(vs[0].Values) != len(vs[1].Values) {
		return
	}
	s.BoolVector.PopN(2)
	out := make([]bool, len(vs[0].Values))
	for i := range out {
		out[i] = f(vs[1].Values[i], vs[0].Values[i])
	}
	s.BoolVector.Push(BoolVector{Values: out})
}

// INTVECTOR.+ / INTVECTOR.-: element-wise sum and difference (second minus
// top) of the top two vectors.
func intVectorAdd(s *State, _ InstructionCache) {
	intVectorZip(s, func(a, b int) int { return a + b })
}

func intVectorSub(s *State, _ InstructionCache) {
	intVectorZip(s, func(a, b int) int { return a - b })
}

func intVectorZip(s *State, f func(a, b int) int) {
	vs, ok := s.IntVector.PeekN(2)
	if !ok || len(vs[0].Values) != len(vs[1].Values) {
		return
	}
	s.IntVector.PopN(2)
	out := make([]int, len(vs[0].Values))
	for i := range out {
		out[i] = f(vs[1].Values[i], vs[0].Values[i])
	}
	s.IntVector.Push(IntVector{Values: out})
}

func floatVectorAdd(s *State, _ InstructionCache) {
	floatVectorZip(s, func(a, b float64) float64 { return a + b })
}

func floatVectorSub(s *State, _ InstructionCache) {
	floatVectorZip(s, func(a, b float64) float64 { return a - b })
}

func floatVectorZip(s *State, f func(a, b float64) float64) {
	vs, ok := s.FloatVector.PeekN(2)
	if !ok || len(vs[0].Values) != len(vs[1].Values) {
		return
	}
	s.FloatVector.PopN(2)
	out := make([]float64, len(vs[0].Values))
	for i := range out {
		out[i] = f(vs[1].Values[i], vs[0].Values[i])
	}
	s.FloatVector.Push(FloatVector{Values: out})
}

// *VECTOR.GET: pushes the element at the index taken from the INTEGER stack
// onto the matching scalar stack. The vector stays in place; an out-of-range
// index consumes nothing.
func boolVectorGet(s *State, _ InstructionCache) {
	if i, v, ok := vectorIndex(s, s.BoolVector); ok {
		s.Bool.Push(v.Values[i])
	}
}

func intVectorGet(s *State, _ InstructionCache) {
	if i, v, ok := vectorIndex(s, s.IntVector); ok {
		s.Int.Push(v.Values[i])
	}
}

func floatVectorGet(s *State, _ InstructionCache) {
	if i, v, ok := vectorIndex(s, s.FloatVector); ok {
		s.Float.Push(v.Values[i])
	}
}

// *VECTOR.SET: overwrites the element at the index taken from the INTEGER
// stack with the top of the matching scalar stack.
func boolVectorSet(s *State, _ InstructionCache) {
	if s.Bool.Size() == 0 {
		return
	}
	if i, v, ok := vectorIndex(s, s.BoolVector); ok {
		b, _ := s.Bool.Pop()
		v.Values[i] = b
		s.BoolVector.Replace(0, v)
	}
}

func intVectorSet(s *State, _ InstructionCache) {
	if s.Int.Size() < 2 {
		return
	}
	if i, v, ok := vectorIndex(s, s.IntVector); ok {
		n, _ := s.Int.Pop()
		v.Values[i] = n
		s.IntVector.Replace(0, v)
	}
}

func floatVectorSet(s *State, _ InstructionCache) {
	if s.Float.Size() == 0 {
		return
	}
	if i, v, ok := vectorIndex(s, s.FloatVector); ok {
		f, _ := s.Float.Pop()
		v.Values[i] = f
		s.FloatVector.Replace(0, v)
	}
}

type vectorValue interface {
	BoolVector | IntVector | FloatVector
}

func vectorIndex[T vectorValue](s *State, stack *Stack[T]) (int, T, bool) {
	var zero T
	if s.Int.Size() == 0 || stack.Size() == 0 {
		return 0, zero, false
	}
	v, _ := stack.Peek(0)
	n := vectorLen(v)
	idx, _ := s.Int.Peek(0)
	if idx < 0 || idx >= n {
		return 0, zero, false
	}
	s.Int.Pop()
	return idx, v, true
}

func vectorLen[T vectorValue](v T) int {
	switch v := any(v).(type) {
	case BoolVector:
		return len(v.Values)
	case IntVector:
		return len(v.Values)
	case FloatVector:
		return len(v.Values)
	}
	return 0
}
