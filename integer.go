package push

// Integer numbers, that is numbers without decimal points.
func loadIntegerInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "INTEGER", intStack, func(v int) Item { return NewInt(v) })

	set.Register("INTEGER.+", integerAdd)
	set.Register("INTEGER.-", integerSub)
	set.Register("INTEGER.*", integerMul)
	set.Register("INTEGER./", integerDiv)
	set.Register("INTEGER.%", integerMod)
	set.Register("INTEGER.<", integerLess)
	set.Register("INTEGER.>", integerGreater)
	set.Register("INTEGER.MAX", integerMax)
	set.Register("INTEGER.MIN", integerMin)
	set.Register("INTEGER.FROMBOOLEAN", integerFromBoolean)
	set.Register("INTEGER.FROMFLOAT", integerFromFloat)
	set.Register("INTEGER.RAND", integerRand)
}

func intStack(s *State) *Stack[int] { return s.Int }

// Binary operations pop the top two integers and push f(second, top).
func integerBinop(s *State, f func(a, b int) int) {
	if vs, ok := s.Int.PopN(2); ok {
		s.Int.Push(f(vs[1], vs[0]))
	}
}

func integerCompare(s *State, f func(a, b int) bool) {
	if vs, ok := s.Int.PopN(2); ok {
		s.Bool.Push(f(vs[1], vs[0]))
	}
}

func integerAdd(s *State, _ InstructionCache) {
	integerBinop(s, func(a, b int) int { return a + b })
}

func integerSub(s *State, _ InstructionCache) {
	integerBinop(s, func(a, b int) int { return a - b })
}

func integerMul(s *State, _ InstructionCache) {
	integerBinop(s, func(a, b int) int { return a * b })
}

// INTEGER./ and INTEGER.% act as NOOPs when the divisor on top is zero,
// leaving both operands in place.
func integerDiv(s *State, _ InstructionCache) {
	if d, ok := s.Int.Peek(0); !ok || d == 0 {
		return
	}
	integerBinop(s, func(a, b int) int { return a / b })
}

func integerMod(s *State, _ InstructionCache) {
	if d, ok := s.Int.Peek(0); !ok || d == 0 {
		return
	}
	integerBinop(s, func(a, b int) int { return a % b })
}

// INTEGER.< / INTEGER.>: pop the top two integers and push the comparison
// of the second against the top onto the BOOLEAN stack.
func integerLess(s *State, _ InstructionCache) {
	integerCompare(s, func(a, b int) bool { return a < b })
}

func integerGreater(s *State, _ InstructionCache) {
	integerCompare(s, func(a, b int) bool { return a > b })
}

func integerMax(s *State, _ InstructionCache) {
	integerBinop(s, func(a, b int) int {
		if a > b {
			return a
		}
		return b
	})
}

func integerMin(s *State, _ InstructionCache) {
	integerBinop(s, func(a, b int) int {
		if a < b {
			return a
		}
		return b
	})
}

// INTEGER.FROMBOOLEAN: pops the top boolean and pushes 1 for TRUE, 0 for
// FALSE.
func integerFromBoolean(s *State, _ InstructionCache) {
	if v, ok := s.Bool.Pop(); ok {
		if v {
			s.Int.Push(1)
		} else {
			s.Int.Push(0)
		}
	}
}

// INTEGER.FROMFLOAT: pops the top float and pushes its truncation.
func integerFromFloat(s *State, _ InstructionCache) {
	if v, ok := s.Float.Pop(); ok {
		s.Int.Push(int(v))
	}
}

// INTEGER.RAND: pushes a random integer within the configured bounds.
func integerRand(s *State, _ InstructionCache) {
	lo, hi := s.Config.MinRandomInteger, s.Config.MaxRandomInteger
	if hi < lo {
		return
	}
	s.Int.Push(lo + s.Rand.Intn(hi-lo+1))
}
