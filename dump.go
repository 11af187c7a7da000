package push

import (
	"fmt"
	"io"
	"sort"
)

// Dump writes every non-empty stack's rendering and the name bindings,
// one per line, in a fixed order suitable for golden-output tests and the
// REPL's result display.
func (s *State) Dump(w io.Writer) error {
	sections := []struct {
		name string
		body string
	}{
		{"EXEC", s.Exec.String()},
		{"CODE", s.Code.String()},
		{"BOOLEAN", s.Bool.String()},
		{"INTEGER", s.Int.String()},
		{"FLOAT", s.Float.String()},
		{"NAME", s.Name.String()},
		{"BOOLVECTOR", s.BoolVector.String()},
		{"INTVECTOR", s.IntVector.String()},
		{"FLOATVECTOR", s.FloatVector.String()},
	}
	for _, sec := range sections {
		if sec.body == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-12s %s\n", sec.name, sec.body); err != nil {
			return err
		}
	}

	if len(s.Bindings) > 0 {
		names := make([]string, 0, len(s.Bindings))
		for name := range s.Bindings {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "%-12s %s = %s\n", "BINDING", name, s.Bindings[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
