package push

import "sort"

// An Instruction is the executable behavior behind an instruction name. It
// pops its operands from the state's typed stacks and pushes its results;
// on underflow it must leave the state unchanged. It receives the immutable
// instruction cache, never the live registry.
type Instruction func(s *State, cache InstructionCache)

// InstructionCache is a frozen snapshot of all instruction names known at
// the start of a run, handed to every behavior so that name introspection
// never touches the mutable registry during dispatch.
type InstructionCache struct {
	Names []string
}

// InstructionSet maps instruction names to behaviors. Re-registering a name
// overwrites the previous behavior.
type InstructionSet struct {
	m map[string]Instruction
}

// NewInstructionSet returns an empty registry.
func NewInstructionSet() *InstructionSet {
	return &InstructionSet{m: make(map[string]Instruction)}
}

// Register binds name to fn, replacing any previous binding.
func (set *InstructionSet) Register(name string, fn Instruction) {
	set.m[name] = fn
}

// IsInstruction reports whether name is registered; the parser uses it to
// classify tokens.
func (set *InstructionSet) IsInstruction(name string) bool {
	_, ok := set.m[name]
	return ok
}

// Lookup returns the behavior registered under name.
func (set *InstructionSet) Lookup(name string) (Instruction, bool) {
	fn, ok := set.m[name]
	return fn, ok
}

// Cache snapshots the currently known instruction names in sorted order.
func (set *InstructionSet) Cache() InstructionCache {
	names := make([]string, 0, len(set.m))
	for name := range set.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return InstructionCache{Names: names}
}

// Load registers the default instruction set for the boolean, integer,
// float, name, code, exec, list and vector stacks.
func (set *InstructionSet) Load() {
	set.Register("NOOP", noop)
	loadBooleanInstructions(set)
	loadIntegerInstructions(set)
	loadFloatInstructions(set)
	loadNameInstructions(set)
	loadCodeInstructions(set)
	loadExecInstructions(set)
	loadListInstructions(set)
	loadBoolVectorInstructions(set)
	loadIntVectorInstructions(set)
	loadFloatVectorInstructions(set)
}

// NOOP: no operation.
func noop(_ *State, _ InstructionCache) {}
