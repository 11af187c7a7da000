package push

// The CODE stack holds items as inert data. Unlike EXEC manipulations,
// rewriting CODE changes nothing until a CODE.DO or CODE.IF schedules the
// result for execution.
func loadCodeInstructions(set *InstructionSet) {
	loadCommonInstructions(set, "CODE", codeStack, func(it Item) Item { return it })

	set.Register("CODE.QUOTE", codeQuote)
	set.Register("CODE.DO", codeDo)
	set.Register("CODE.IF", codeIf)
	set.Register("CODE.CAR", codeCar)
	set.Register("CODE.CDR", codeCdr)
	set.Register("CODE.CONS", codeCons)
	set.Register("CODE.APPEND", codeAppend)
	set.Register("CODE.LIST", codeList)
	set.Register("CODE.LENGTH", codeLength)
	set.Register("CODE.NTH", codeNth)
}

func codeStack(s *State) *Stack[Item] { return s.Code }

// asList coerces an item to a list; a non-list becomes a singleton.
func asList(it Item) List {
	if l, ok := it.(List); ok {
		return l
	}
	return NewList(it).(List)
}

// elements returns the list's items in execution order, first to run first.
func (l List) elements() []Item {
	out := make([]Item, l.items.Size())
	for i, it := range l.items.items {
		out[len(out)-1-i] = it
	}
	return out
}

// CODE.QUOTE: moves the top EXEC item onto the CODE stack unexecuted.
func codeQuote(s *State, _ InstructionCache) {
	if it, ok := s.Exec.Pop(); ok {
		s.Code.Push(it)
	}
}

// CODE.DO: moves the top CODE item onto the EXEC stack for execution.
func codeDo(s *State, _ InstructionCache) {
	if it, ok := s.Code.Pop(); ok {
		s.Exec.Push(it)
	}
}

// CODE.IF: pops the top two CODE items and the top BOOLEAN, scheduling the
// first-pushed item on TRUE and the former top on FALSE. Branch selection
// mirrors EXEC.IF.
func codeIf(s *State, _ InstructionCache) {
	if s.Code.Size() < 2 || s.Bool.Size() == 0 {
		return
	}
	branches, _ := s.Code.PopN(2)
	first, _ := s.Bool.Pop()
	if first {
		s.Exec.Push(branches[1])
	} else {
		s.Exec.Push(branches[0])
	}
}

// CODE.CAR: replaces the top CODE list with its first element. A non-list
// or empty list is left as is.
func codeCar(s *State, _ InstructionCache) {
	it, ok := s.Code.Pop()
	if !ok {
		return
	}
	if l, isList := it.(List); isList {
		if head, ok := l.items.Peek(0); ok {
			s.Code.Push(head)
			return
		}
	}
	s.Code.Push(it)
}

// CODE.CDR: replaces the top CODE item with the list missing its first
// element; a non-list becomes the empty list.
func codeCdr(s *State, _ InstructionCache) {
	it, ok := s.Code.Pop()
	if !ok {
		return
	}
	if l, isList := it.(List); isList {
		rest := l.Clone().(List)
		rest.items.Pop()
		s.Code.Push(rest)
		return
	}
	s.Code.Push(NewList())
}

// CODE.CONS: pops two CODE items and pushes the second consed onto the top
// one, coercing the top to a list when needed.
func codeCons(s *State, _ InstructionCache) {
	if vs, ok := s.Code.PopN(2); ok {
		l := asList(vs[0])
		l.items.Push(vs[1])
		s.Code.Push(l)
	}
}

// CODE.APPEND: pops two CODE items and pushes their concatenation, second
// item's elements first.
func codeAppend(s *State, _ InstructionCache) {
	if vs, ok := s.Code.PopN(2); ok {
		elems := append(asList(vs[1]).elements(), asList(vs[0]).elements()...)
		s.Code.Push(NewList(elems...))
	}
}

// CODE.LIST: pops two CODE items and pushes a list of them, second item
// first.
func codeList(s *State, _ InstructionCache) {
	if vs, ok := s.Code.PopN(2); ok {
		s.Code.Push(NewList(vs[1], vs[0]))
	}
}

// CODE.LENGTH: pops the top CODE item and pushes its element count onto the
// INTEGER stack; a non-list counts as 1.
func codeLength(s *State, _ InstructionCache) {
	if it, ok := s.Code.Pop(); ok {
		if l, isList := it.(List); isList {
			s.Int.Push(l.items.Size())
		} else {
			s.Int.Push(1)
		}
	}
}

// CODE.NTH: pushes the n-th element of the top CODE list, with n taken from
// the INTEGER stack modulo the list length. The list stays in place.
func codeNth(s *State, _ InstructionCache) {
	if s.Int.Size() == 0 || s.Code.Size() == 0 {
		return
	}
	n, _ := s.Int.Pop()
	it, _ := s.Code.Peek(0)
	l := asList(it)
	size := l.items.Size()
	if size == 0 {
		return
	}
	n = ((n % size) + size) % size
	elem, _ := l.items.Peek(n)
	s.Code.Push(elem)
}
