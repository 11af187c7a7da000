package push

import (
	"context"
	"errors"
)

// Budget exhaustion outcomes, distinct from normal completion so that
// callers can tell a finished program from one that was cut off.
var (
	ErrStepLimit = errors.New("step limit exhausted")
	ErrSizeLimit = errors.New("growth limit exceeded")
)

// Interpreter owns one State and one InstructionSet and drives the
// pop/classify/dispatch loop over the execution stack. It is
// single-threaded; run concurrent programs on independent interpreters.
type Interpreter struct {
	set   *InstructionSet
	state *State

	logfn func(mess string, args ...interface{})
}

// State exposes the interpreter's stacks for seeding initial contents and
// inspecting results.
func (ip *Interpreter) State() *State { return ip.state }

// Instructions exposes the registry for registering additional instruction
// groups before a run.
func (ip *Interpreter) Instructions() *InstructionSet { return ip.set }

// Load parses source text onto the execution stack.
func (ip *Interpreter) Load(code string) error {
	return ParseProgram(ip.state, ip.set, code)
}

func (ip *Interpreter) logf(mess string, args ...interface{}) {
	if ip.logfn != nil {
		ip.logfn(mess, args...)
	}
}

// Step performs one transition: pop the execution stack, classify the item
// and dispatch it. It reports false once the execution stack is empty.
func (ip *Interpreter) Step(cache InstructionCache) bool {
	it, ok := ip.state.Exec.Pop()
	if !ok {
		return false
	}
	switch v := it.(type) {
	case BoolLiteral:
		ip.state.Bool.Push(bool(v))
	case IntLiteral:
		ip.state.Int.Push(int(v))
	case FloatLiteral:
		ip.state.Float.Push(float64(v))
	case BoolVectorLiteral:
		ip.state.BoolVector.Push(v.Vector)
	case IntVectorLiteral:
		ip.state.IntVector.Push(v.Vector)
	case FloatVectorLiteral:
		ip.state.FloatVector.Push(v.Vector)
	case InstructionRef:
		if fn, ok := ip.set.Lookup(string(v)); ok {
			ip.logf("exec %v", v)
			fn(ip.state, cache)
		} else {
			// unknown instructions are dropped, not fatal
			ip.logf("skip %v", v)
		}
	case List:
		// re-expand in reverse so the first element lands on top and the
		// list executes left to right
		for _, elem := range v.items.items {
			ip.state.Exec.Push(elem)
		}
	case Identifier:
		name := string(v)
		switch {
		case ip.state.QuoteName:
			ip.state.Name.Push(name)
			ip.state.QuoteName = false
		default:
			if bound, ok := ip.state.Bindings[name]; ok {
				ip.state.Exec.Push(bound.Clone())
			} else {
				ip.logf("skip unbound %v", v)
			}
		}
	}
	return true
}

// run loops until the execution stack empties or a budget runs out,
// checking ctx between steps so a caller can abort cleanly with whatever
// partial state exists. Instructions are never interrupted mid-flight.
func (ip *Interpreter) run(ctx context.Context) error {
	cache := ip.set.Cache()
	limit := ip.state.Config.StepLimit
	sizeCap := ip.state.Config.SizeLimit
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 && steps >= limit {
			ip.logf("stop after %v steps", steps)
			return ErrStepLimit
		}
		if !ip.Step(cache) {
			ip.logf("done after %v steps", steps)
			return nil
		}
		if sizeCap > 0 && ip.state.Size() > sizeCap {
			ip.logf("stop at size %v", ip.state.Size())
			return ErrSizeLimit
		}
	}
}
