package push

import (
	"context"
	"errors"
	"math/rand"

	"github.com/pushlang/push/internal/panicerr"
)

// New builds an interpreter with the default instruction set loaded and the
// given options applied.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{
		set:   NewInstructionSet(),
		state: NewState(),
	}
	ip.set.Load()
	Options(opts...).apply(ip)
	return ip
}

// Run drives the execution stack to completion or budget exhaustion.
// A nil error means the program ran the execution stack empty; ErrStepLimit
// and ErrSizeLimit report a cut-off run, and context errors pass through.
// Panics out of misbehaving externally registered instructions surface as
// errors rather than crashing the caller.
func (ip *Interpreter) Run(ctx context.Context) error {
	err := panicerr.Recover("push", func() error {
		return ip.run(ctx)
	})
	return err
}

// RunProgram parses code on a fresh interpreter and runs it, returning the
// final state for inspection alongside the run outcome.
func RunProgram(ctx context.Context, code string, opts ...Option) (*State, error) {
	ip := New(opts...)
	if err := ip.Load(code); err != nil {
		return ip.State(), err
	}
	err := ip.Run(ctx)
	return ip.State(), err
}

// IsBudget reports whether err is one of the budget exhaustion outcomes.
func IsBudget(err error) bool {
	return errors.Is(err, ErrStepLimit) || errors.Is(err, ErrSizeLimit)
}

// WithStepLimit bounds the number of engine transitions per run.
func WithStepLimit(limit int) Option { return withStepLimit(limit) }

// WithSizeLimit bounds the total item count across all stacks.
func WithSizeLimit(limit int) Option { return withSizeLimit(limit) }

// WithConfiguration replaces the whole configuration.
func WithConfiguration(cfg Configuration) Option { return configOption(cfg) }

// WithSeed seeds the RNG used by the *.RAND instructions.
func WithSeed(seed int64) Option { return withSeed(seed) }

// WithRand supplies the RNG used by the *.RAND instructions.
func WithRand(rng *rand.Rand) Option { return withRand(rng) }

// WithInstructions runs fn against the registry, registering or overriding
// instruction groups.
func WithInstructions(fn func(set *InstructionSet)) Option { return instructionsOption(fn) }

// WithLogf directs per-step trace logging to logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
