package push

// The EXEC stack holds the live program. Instructions in this group rewrite
// it directly, which is how Push expresses control flow: loops and recursion
// are macro expansions into ordinary items rather than engine special cases.
func loadExecInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "EXEC", execStack, func(it Item) Item { return it })

	set.Register("EXEC.DO*COUNT", execDoCount)
	set.Register("EXEC.DO*RANGE", execDoRange)
	set.Register("EXEC.DO*TIMES", execDoTimes)
	set.Register("EXEC.IF", execIf)
	set.Register("EXEC.K", execK)
	set.Register("EXEC.S", execS)
	set.Register("EXEC.Y", execY)
}

func execStack(s *State) *Stack[Item] { return s.Exec }

// EXEC.DO*COUNT: runs the top EXEC item n times, where n is the top
// INTEGER, pushing the loop counter 0..n-1 before each iteration. Expands
// into ( n-1 0 EXEC.DO*RANGE body ). A non-positive n consumes both
// operands and schedules nothing.
func execDoCount(s *State, _ InstructionCache) {
	if s.Int.Size() == 0 || s.Exec.Size() == 0 {
		return
	}
	n, _ := s.Int.Pop()
	body, _ := s.Exec.Pop()
	if n <= 0 {
		return
	}
	s.Exec.Push(NewList(
		NewInt(n-1),
		NewInt(0),
		NewInstruction("EXEC.DO*RANGE"),
		body,
	))
}

// EXEC.DO*RANGE: pops the body from EXEC and the current (top) and
// destination indices from INTEGER. The current index is pushed back onto
// INTEGER for the body to read. When current equals destination the body is
// scheduled once; otherwise current steps by one toward destination and a
// recursive continuation ( destination current±1 EXEC.DO*RANGE body ) is
// scheduled beneath a fresh copy of the body. The range is inclusive of
// both endpoints and the direction follows which bound is larger.
func execDoRange(s *State, _ InstructionCache) {
	if s.Int.Size() < 2 || s.Exec.Size() == 0 {
		return
	}
	body, _ := s.Exec.Pop()
	indices, _ := s.Int.PopN(2)
	current, destination := indices[0], indices[1]

	s.Int.Push(current)
	if current == destination {
		s.Exec.Push(body)
		return
	}
	if current < destination {
		current++
	} else {
		current--
	}
	s.Exec.Push(NewList(
		NewInt(destination),
		NewInt(current),
		NewInstruction("EXEC.DO*RANGE"),
		body.Clone(),
	))
	s.Exec.Push(body)
}

// EXEC.DO*TIMES: like EXEC.DO*RANGE, but an INTEGER.POP is prepended to the
// body so the loop counter is discarded before each iteration.
func execDoTimes(s *State, _ InstructionCache) {
	if s.Int.Size() < 2 || s.Exec.Size() == 0 {
		return
	}
	body, _ := s.Exec.Pop()
	indices, _ := s.Int.PopN(2)
	s.Exec.Push(NewList(
		NewInt(indices[1]),
		NewInt(indices[0]),
		NewInstruction("EXEC.DO*RANGE"),
		NewList(NewInstruction("INTEGER.POP"), body),
	))
}

// EXEC.IF: pops the top two EXEC items and the top BOOLEAN. TRUE re-pushes
// the item that was second from the top (the first-pushed branch), FALSE
// the former top.
func execIf(s *State, _ InstructionCache) {
	if s.Exec.Size() < 2 || s.Bool.Size() == 0 {
		return
	}
	branches, _ := s.Exec.PopN(2)
	first, _ := s.Bool.Pop()
	if first {
		s.Exec.Push(branches[1])
	} else {
		s.Exec.Push(branches[0])
	}
}

// EXEC.K: the K combinator; discards the second EXEC item.
func execK(s *State, _ InstructionCache) {
	if branches, ok := s.Exec.PopN(2); ok {
		s.Exec.Push(branches[0])
	}
}

// EXEC.S: the S combinator; pops A, B and C (A the former top) and pushes
// the list ( C B ), then C, then A.
func execS(s *State, _ InstructionCache) {
	if vs, ok := s.Exec.PopN(3); ok {
		a, b, c := vs[0], vs[1], vs[2]
		s.Exec.Push(NewList(c.Clone(), b))
		s.Exec.Push(c)
		s.Exec.Push(a)
	}
}

// EXEC.Y: the Y combinator; inserts the list ( top EXEC.Y ) beneath the top
// EXEC item, so the body recurses until it stops executing EXEC.Y.
func execY(s *State, _ InstructionCache) {
	if top, ok := s.Exec.Peek(0); ok {
		s.Exec.Push(NewList(top, NewInstruction("EXEC.Y")))
		s.Exec.Shove(1)
	}
}
