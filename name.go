package push

// Names are identifier strings. They reach the NAME stack through
// NAME.QUOTE and become executable through the *.DEFINE instructions.
func loadNameInstructions(set *InstructionSet) {
	loadCommonInstructions[string](set, "NAME", nameStack, nil)

	set.Register("NAME.QUOTE", nameQuote)
	set.Register("NAME.RAND", nameRand)
}

func nameStack(s *State) *Stack[string] { return s.Name }

// NAME.QUOTE: arms the quote flag so that the next identifier the engine
// pops is pushed onto the NAME stack instead of being resolved, even when a
// binding for it exists.
func nameQuote(s *State, _ InstructionCache) {
	s.QuoteName = true
}

// NAME.RAND: pushes a random known instruction name, drawn from the
// instruction cache.
func nameRand(s *State, cache InstructionCache) {
	if len(cache.Names) == 0 {
		return
	}
	s.Name.Push(cache.Names[s.Rand.Intn(len(cache.Names))])
}
