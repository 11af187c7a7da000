package push

func loadBooleanInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "BOOLEAN", boolStack, func(v bool) Item { return NewBool(v) })

	set.Register("BOOLEAN.AND", booleanAnd)
	set.Register("BOOLEAN.OR", booleanOr)
	set.Register("BOOLEAN.NOT", booleanNot)
	set.Register("BOOLEAN.FROMINTEGER", booleanFromInteger)
	set.Register("BOOLEAN.FROMFLOAT", booleanFromFloat)
	set.Register("BOOLEAN.RAND", booleanRand)
}

func boolStack(s *State) *Stack[bool] { return s.Bool }

// BOOLEAN.AND: pops the top two booleans and pushes their conjunction.
func booleanAnd(s *State, _ InstructionCache) {
	if vs, ok := s.Bool.PopN(2); ok {
		s.Bool.Push(vs[0] && vs[1])
	}
}

// BOOLEAN.OR: pops the top two booleans and pushes their disjunction.
func booleanOr(s *State, _ InstructionCache) {
	if vs, ok := s.Bool.PopN(2); ok {
		s.Bool.Push(vs[0] || vs[1])
	}
}

// BOOLEAN.NOT: negates the top boolean.
func booleanNot(s *State, _ InstructionCache) {
	if v, ok := s.Bool.Pop(); ok {
		s.Bool.Push(!v)
	}
}

// BOOLEAN.FROMINTEGER: pops the top integer and pushes FALSE for zero, TRUE
// otherwise.
func booleanFromInteger(s *State, _ InstructionCache) {
	if v, ok := s.Int.Pop(); ok {
		s.Bool.Push(v != 0)
	}
}

// BOOLEAN.FROMFLOAT: pops the top float and pushes FALSE for zero, TRUE
// otherwise.
func booleanFromFloat(s *State, _ InstructionCache) {
	if v, ok := s.Float.Pop(); ok {
		s.Bool.Push(v != 0)
	}
}

// BOOLEAN.RAND: pushes a random boolean.
func booleanRand(s *State, _ InstructionCache) {
	s.Bool.Push(s.Rand.Intn(2) == 1)
}
