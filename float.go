package push

import "math"

func loadFloatInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "FLOAT", floatStack, func(v float64) Item { return NewFloat(v) })

	set.Register("FLOAT.+", floatAdd)
	set.Register("FLOAT.-", floatSub)
	set.Register("FLOAT.*", floatMul)
	set.Register("FLOAT./", floatDiv)
	set.Register("FLOAT.%", floatMod)
	set.Register("FLOAT.<", floatLess)
	set.Register("FLOAT.>", floatGreater)
	set.Register("FLOAT.MAX", floatMax)
	set.Register("FLOAT.MIN", floatMin)
	set.Register("FLOAT.SIN", floatSin)
	set.Register("FLOAT.COS", floatCos)
	set.Register("FLOAT.TAN", floatTan)
	set.Register("FLOAT.SQRT", floatSqrt)
	set.Register("FLOAT.FROMBOOLEAN", floatFromBoolean)
	set.Register("FLOAT.FROMINTEGER", floatFromInteger)
	set.Register("FLOAT.RAND", floatRand)
}

func floatStack(s *State) *Stack[float64] { return s.Float }

func floatBinop(s *State, f func(a, b float64) float64) {
	if vs, ok := s.Float.PopN(2); ok {
		s.Float.Push(f(vs[1], vs[0]))
	}
}

func floatCompare(s *State, f func(a, b float64) bool) {
	if vs, ok := s.Float.PopN(2); ok {
		s.Bool.Push(f(vs[1], vs[0]))
	}
}

func floatUnop(s *State, f func(v float64) float64) {
	if v, ok := s.Float.Pop(); ok {
		s.Float.Push(f(v))
	}
}

func floatAdd(s *State, _ InstructionCache) {
	floatBinop(s, func(a, b float64) float64 { return a + b })
}

func floatSub(s *State, _ InstructionCache) {
	floatBinop(s, func(a, b float64) float64 { return a - b })
}

func floatMul(s *State, _ InstructionCache) {
	floatBinop(s, func(a, b float64) float64 { return a * b })
}

// FLOAT./ and FLOAT.% act as NOOPs when the divisor on top is zero.
func floatDiv(s *State, _ InstructionCache) {
	if d, ok := s.Float.Peek(0); !ok || d == 0 {
		return
	}
	floatBinop(s, func(a, b float64) float64 { return a / b })
}

func floatMod(s *State, _ InstructionCache) {
	if d, ok := s.Float.Peek(0); !ok || d == 0 {
		return
	}
	floatBinop(s, math.Mod)
}

func floatLess(s *State, _ InstructionCache) {
	floatCompare(s, func(a, b float64) bool { return a < b })
}

func floatGreater(s *State, _ InstructionCache) {
	floatCompare(s, func(a, b float64) bool { return a > b })
}

func floatMax(s *State, _ InstructionCache) { floatBinop(s, math.Max) }
func floatMin(s *State, _ InstructionCache) { floatBinop(s, math.Min) }

func floatSin(s *State, _ InstructionCache) { floatUnop(s, math.Sin) }
func floatCos(s *State, _ InstructionCache) { floatUnop(s, math.Cos) }
func floatTan(s *State, _ InstructionCache) { floatUnop(s, math.Tan) }

// FLOAT.SQRT acts as a NOOP on a negative operand.
func floatSqrt(s *State, _ InstructionCache) {
	if v, ok := s.Float.Peek(0); !ok || v < 0 {
		return
	}
	floatUnop(s, math.Sqrt)
}

// FLOAT.FROMBOOLEAN: pops the top boolean and pushes 1.0 for TRUE, 0.0 for
// FALSE.
func floatFromBoolean(s *State, _ InstructionCache) {
	if v, ok := s.Bool.Pop(); ok {
		if v {
			s.Float.Push(1)
		} else {
			s.Float.Push(0)
		}
	}
}

// FLOAT.FROMINTEGER: pops the top integer and pushes it as a float.
func floatFromInteger(s *State, _ InstructionCache) {
	if v, ok := s.Int.Pop(); ok {
		s.Float.Push(float64(v))
	}
}

// FLOAT.RAND: pushes a random float within the configured bounds.
func floatRand(s *State, _ InstructionCache) {
	lo, hi := s.Config.MinRandomFloat, s.Config.MaxRandomFloat
	if hi < lo {
		return
	}
	s.Float.Push(lo + s.Rand.Float64()*(hi-lo))
}
