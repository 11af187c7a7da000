package push

import "math/rand"

// Option configures an Interpreter at construction.
type Option interface{ apply(ip *Interpreter) }

// Options aggregates options into one.
func Options(opts ...Option) Option { return optionList(opts) }

type optionList []Option

func (opts optionList) apply(ip *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ip)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ip *Interpreter) {
	ip.logfn = logfn
}

type stepLimitOption int
type sizeLimitOption int
type seedOption int64
type randOption struct{ rng *rand.Rand }
type configOption Configuration
type instructionsOption func(set *InstructionSet)

func withStepLimit(limit int) stepLimitOption { return stepLimitOption(limit) }
func withSizeLimit(limit int) sizeLimitOption { return sizeLimitOption(limit) }
func withSeed(seed int64) seedOption          { return seedOption(seed) }
func withRand(rng *rand.Rand) randOption      { return randOption{rng} }

func (lim stepLimitOption) apply(ip *Interpreter) {
	ip.state.Config.StepLimit = int(lim)
}

func (lim sizeLimitOption) apply(ip *Interpreter) {
	ip.state.Config.SizeLimit = int(lim)
}

func (seed seedOption) apply(ip *Interpreter) {
	ip.state.Rand = rand.New(rand.NewSource(int64(seed)))
}

func (o randOption) apply(ip *Interpreter) {
	ip.state.Rand = o.rng
}

func (cfg configOption) apply(ip *Interpreter) {
	ip.state.Config = Configuration(cfg)
}

func (load instructionsOption) apply(ip *Interpreter) {
	load(ip.set)
}
