package push

import "fmt"

// loadCommonInstructions registers the stack-shuffling instructions shared
// by every typed stack under the given prefix: =, DUP, POP, FLUSH, ROT,
// SWAP, SHOVE, YANK, YANKDUP, STACKDEPTH and, when lift is non-nil, DEFINE.
// Deep indices come from the INTEGER stack, which for the INTEGER prefix
// means the index is consumed from the stack being shuffled.
func loadCommonInstructions[T any](set *InstructionSet, prefix string, sel func(*State) *Stack[T], lift func(T) Item) {
	set.Register(prefix+".=", func(s *State, _ InstructionCache) {
		if vs, ok := sel(s).PeekN(2); ok {
			s.Bool.Push(fmt.Sprint(vs[0]) == fmt.Sprint(vs[1]))
		}
	})
	set.Register(prefix+".DUP", func(s *State, _ InstructionCache) {
		if v, ok := sel(s).Peek(0); ok {
			sel(s).Push(v)
		}
	})
	set.Register(prefix+".POP", func(s *State, _ InstructionCache) {
		sel(s).Pop()
	})
	set.Register(prefix+".FLUSH", func(s *State, _ InstructionCache) {
		sel(s).Flush()
	})
	set.Register(prefix+".ROT", func(s *State, _ InstructionCache) {
		sel(s).Yank(2)
	})
	set.Register(prefix+".SWAP", func(s *State, _ InstructionCache) {
		sel(s).Shove(1)
	})
	set.Register(prefix+".SHOVE", func(s *State, _ InstructionCache) {
		if depth, ok := s.Int.Pop(); ok {
			sel(s).Shove(depth)
		}
	})
	set.Register(prefix+".YANK", func(s *State, _ InstructionCache) {
		if depth, ok := s.Int.Pop(); ok {
			sel(s).Yank(depth)
		}
	})
	set.Register(prefix+".YANKDUP", func(s *State, _ InstructionCache) {
		if depth, ok := s.Int.Pop(); ok {
			if v, ok := sel(s).Peek(depth); ok {
				sel(s).Push(v)
			}
		}
	})
	set.Register(prefix+".STACKDEPTH", func(s *State, _ InstructionCache) {
		s.Int.Push(sel(s).Size())
	})

	if lift != nil {
		set.Register(prefix+".DEFINE", func(s *State, _ InstructionCache) {
			if s.Name.Size() == 0 || sel(s).Size() == 0 {
				return
			}
			name, _ := s.Name.Pop()
			v, _ := sel(s).Pop()
			s.Bindings[name] = lift(v)
		})
	}
}
