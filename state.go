package push

import "math/rand"

// Configuration carries the process-wide knobs supplied at construction.
// Nothing in the engine hard-codes these.
type Configuration struct {
	// StepLimit bounds the number of engine transitions per run; zero means
	// unbounded.
	StepLimit int

	// SizeLimit bounds the total item count across all stacks; zero means
	// unbounded.
	SizeLimit int

	// Bounds for the *.RAND sampling instructions.
	MinRandomInteger int
	MaxRandomInteger int
	MinRandomFloat   float64
	MaxRandomFloat   float64
}

func defaultConfiguration() Configuration {
	return Configuration{
		MinRandomInteger: -100,
		MaxRandomInteger: 100,
		MinRandomFloat:   0,
		MaxRandomFloat:   1,
	}
}

// State aggregates every typed stack, the name binding table and the
// configuration of one interpreter run. A State has exactly one owner;
// instruction behaviors mutate it between steps and never retain a
// reference.
type State struct {
	Exec *Stack[Item]
	Code *Stack[Item]

	Bool  *Stack[bool]
	Int   *Stack[int]
	Float *Stack[float64]
	Name  *Stack[string]

	BoolVector  *Stack[BoolVector]
	IntVector   *Stack[IntVector]
	FloatVector *Stack[FloatVector]

	// Bindings maps names to items; *.DEFINE writes it, identifier dispatch
	// reads it.
	Bindings map[string]Item

	// QuoteName routes the next identifier the engine pops onto the NAME
	// stack instead of resolving it. NAME.QUOTE arms it for one identifier.
	QuoteName bool

	Config Configuration
	Rand   *rand.Rand
}

// NewState returns an empty state with default configuration and a
// deterministically seeded RNG.
func NewState() *State {
	return &State{
		Exec:        newItemStack(),
		Code:        newItemStack(),
		Bool:        NewStack[bool](),
		Int:         NewStack[int](),
		Float:       NewStack[float64](),
		Name:        NewStack[string](),
		BoolVector:  &Stack[BoolVector]{clone: BoolVector.clone},
		IntVector:   &Stack[IntVector]{clone: IntVector.clone},
		FloatVector: &Stack[FloatVector]{clone: FloatVector.clone},
		Bindings:    make(map[string]Item),
		Config:      defaultConfiguration(),
		Rand:        rand.New(rand.NewSource(1)),
	}
}

// Size reports the total item count across all stacks, counting list nodes
// recursively. The engine compares it against the configured growth cap.
func (s *State) Size() int {
	n := s.Bool.Size() + s.Int.Size() + s.Float.Size() + s.Name.Size() +
		s.BoolVector.Size() + s.IntVector.Size() + s.FloatVector.Size()
	for _, it := range s.Exec.items {
		n += it.count()
	}
	for _, it := range s.Code.items {
		n += it.count()
	}
	return n
}
