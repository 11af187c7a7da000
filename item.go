package push

import "fmt"

// An Item is a node of a Push program: a scalar literal, a reference to a
// registered instruction, an unbound name, or an ordered list of items.
// Items are values; Clone duplicates the full subtree, and no two stack
// slots ever share a sublist.
type Item interface {
	fmt.Stringer

	// Clone returns an independent deep copy of the item.
	Clone() Item

	// count reports the number of nodes in the subtree, used by the
	// interpreter's growth cap.
	count() int
}

type (
	// BoolLiteral, IntLiteral and FloatLiteral are immutable scalar items.
	BoolLiteral  bool
	IntLiteral   int
	FloatLiteral float64

	// InstructionRef names an instruction-set entry; it carries no behavior
	// itself and is resolved at dispatch time.
	InstructionRef string

	// Identifier is a name token, consulted against the state's bindings
	// when executed.
	Identifier string

	// List owns an ordered sequence of child items. The top of the backing
	// stack is the element that executes first when the list is expanded.
	List struct {
		items *Stack[Item]
	}

	// Vector literals push onto the vector stacks when executed.
	BoolVectorLiteral  struct{ Vector BoolVector }
	IntVectorLiteral   struct{ Vector IntVector }
	FloatVectorLiteral struct{ Vector FloatVector }
)

// NewBool returns a boolean literal item.
func NewBool(v bool) Item { return BoolLiteral(v) }

// NewInt returns an integer literal item.
func NewInt(v int) Item { return IntLiteral(v) }

// NewFloat returns a float literal item.
func NewFloat(v float64) Item { return FloatLiteral(v) }

// NewInstruction returns a reference to the named instruction.
func NewInstruction(name string) Item { return InstructionRef(name) }

// NewName returns an identifier item.
func NewName(name string) Item { return Identifier(name) }

// NewList returns a list of the given items. The first argument is the
// element that executes first, which is also the element rendered at
// position 1.
func NewList(items ...Item) Item {
	s := newItemStack()
	for i := len(items) - 1; i >= 0; i-- {
		s.Push(items[i])
	}
	return List{items: s}
}

// NewBoolVector returns a boolean vector literal item.
func NewBoolVector(values ...bool) Item {
	return BoolVectorLiteral{Vector: BoolVector{Values: values}}
}

// NewIntVector returns an integer vector literal item.
func NewIntVector(values ...int) Item {
	return IntVectorLiteral{Vector: IntVector{Values: values}}
}

// NewFloatVector returns a float vector literal item.
func NewFloatVector(values ...float64) Item {
	return FloatVectorLiteral{Vector: FloatVector{Values: values}}
}

func (v BoolLiteral) String() string  { return fmt.Sprintf("Literal(%t)", bool(v)) }
func (v IntLiteral) String() string   { return fmt.Sprintf("Literal(%d)", int(v)) }
func (v FloatLiteral) String() string { return fmt.Sprintf("Literal(%vf)", float64(v)) }

func (r InstructionRef) String() string { return fmt.Sprintf("InstructionMeta(%s)", string(r)) }
func (n Identifier) String() string     { return fmt.Sprintf("Identifier(%s)", string(n)) }

func (l List) String() string { return "List: " + l.items.String() }

func (v BoolVectorLiteral) String() string  { return fmt.Sprintf("Literal(%v)", v.Vector) }
func (v IntVectorLiteral) String() string   { return fmt.Sprintf("Literal(%v)", v.Vector) }
func (v FloatVectorLiteral) String() string { return fmt.Sprintf("Literal(%v)", v.Vector) }

func (v BoolLiteral) Clone() Item    { return v }
func (v IntLiteral) Clone() Item     { return v }
func (v FloatLiteral) Clone() Item   { return v }
func (r InstructionRef) Clone() Item { return r }
func (n Identifier) Clone() Item     { return n }

func (l List) Clone() Item {
	s := newItemStack()
	s.items = make([]Item, len(l.items.items))
	for i, it := range l.items.items {
		s.items[i] = it.Clone()
	}
	return List{items: s}
}

func (v BoolVectorLiteral) Clone() Item {
	return BoolVectorLiteral{Vector: v.Vector.clone()}
}
func (v IntVectorLiteral) Clone() Item {
	return IntVectorLiteral{Vector: v.Vector.clone()}
}
func (v FloatVectorLiteral) Clone() Item {
	return FloatVectorLiteral{Vector: v.Vector.clone()}
}

func (v BoolLiteral) count() int    { return 1 }
func (v IntLiteral) count() int     { return 1 }
func (v FloatLiteral) count() int   { return 1 }
func (r InstructionRef) count() int { return 1 }
func (n Identifier) count() int     { return 1 }

func (l List) count() int {
	n := 1
	for _, it := range l.items.items {
		n += it.count()
	}
	return n
}

func (v BoolVectorLiteral) count() int  { return 1 }
func (v IntVectorLiteral) count() int   { return 1 }
func (v FloatVectorLiteral) count() int { return 1 }

// Equal reports structural equality of two items, defined by their
// deterministic rendering.
func Equal(a, b Item) bool { return a.String() == b.String() }
