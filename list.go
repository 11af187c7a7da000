package push

// Stack ids used by LIST.ADD and LIST.SET to name the stack an element is
// drawn from.
const (
	BooleanStackID = iota + 1
	BoolVectorStackID
	CodeStackID
	ExecStackID
	FloatStackID
	FloatVectorStackID
	IntegerStackID
	IntVectorStackID
	NameStackID
)

func loadListInstructions(set *InstructionSet) {
	set.Register("LIST.ADD", listAdd)
	set.Register("LIST.GET", listGet)
	set.Register("LIST.SET", listSet)
	set.Register("LIST.NEIGHBORS", listNeighbors)
}

// generateList pops the top INTVECTOR element and drains one element per
// stack id from the stack it names, returning the collected items in
// execution order (the last element drained executes first). Unknown ids
// and underflowing stacks contribute nothing.
func generateList(s *State) ([]Item, bool) {
	ids, ok := s.IntVector.Pop()
	if !ok {
		return nil, false
	}
	var items []Item
	for _, id := range ids.Values {
		var it Item
		switch id {
		case BooleanStackID:
			if v, ok := s.Bool.Pop(); ok {
				it = NewBool(v)
			}
		case BoolVectorStackID:
			if v, ok := s.BoolVector.Pop(); ok {
				it = BoolVectorLiteral{Vector: v}
			}
		case CodeStackID:
			if v, ok := s.Code.Pop(); ok {
				it = v
			}
		case ExecStackID:
			if v, ok := s.Exec.Pop(); ok {
				it = v
			}
		case FloatStackID:
			if v, ok := s.Float.Pop(); ok {
				it = NewFloat(v)
			}
		case FloatVectorStackID:
			if v, ok := s.FloatVector.Pop(); ok {
				it = FloatVectorLiteral{Vector: v}
			}
		case IntegerStackID:
			if v, ok := s.Int.Pop(); ok {
				it = NewInt(v)
			}
		case IntVectorStackID:
			if v, ok := s.IntVector.Pop(); ok {
				it = IntVectorLiteral{Vector: v}
			}
		case NameStackID:
			if v, ok := s.Name.Pop(); ok {
				it = NewName(v)
			}
		}
		if it != nil {
			items = append(items, it)
		}
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, true
}

// LIST.ADD: pushes a new list onto the CODE stack with the content named by
// the top INTVECTOR element; each entry is the stack id of an item to
// include.
func listAdd(s *State, _ InstructionCache) {
	if items, ok := generateList(s); ok {
		s.Code.Push(NewList(items...))
	}
}

// LIST.GET: pushes a copy of the CODE item at the index taken from the
// INTEGER stack onto the EXEC stack. The index is min-max corrected.
func listGet(s *State, _ InstructionCache) {
	if s.Int.Size() == 0 || s.Code.Size() == 0 {
		return
	}
	index, _ := s.Int.Pop()
	index = clampInt(index, 0, s.Code.Size()-1)
	if it, ok := s.Code.Peek(index); ok {
		s.Exec.Push(it)
	}
}

// LIST.SET: replaces the CODE item at the min-max corrected index from the
// INTEGER stack with a list generated per the top INTVECTOR element.
func listSet(s *State, _ InstructionCache) {
	if s.Int.Size() == 0 || s.IntVector.Size() == 0 || s.Code.Size() == 0 {
		return
	}
	index, _ := s.Int.Pop()
	index = clampInt(index, 0, s.Code.Size()-1)
	if items, ok := generateList(s); ok {
		s.Code.Replace(index, NewList(items...))
	}
}

// LIST.NEIGHBORS: pops size, index and dimensions from the INTEGER stack
// (size on top) and the radius from the FLOAT stack, then pushes every
// linear index within the Euclidean radius of the given index onto the
// INTEGER stack, largest index ending on top.
func listNeighbors(s *State, _ InstructionCache) {
	if s.Int.Size() < 3 || s.Float.Size() == 0 {
		return
	}
	topology, _ := s.Int.PopN(3)
	radius, _ := s.Float.Pop()
	for _, n := range Neighbors(topology[0], topology[2], topology[1], radius) {
		s.Int.Push(n)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
