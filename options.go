package cubemoves

// DefaultScrambleLength is the number of moves Scramble draws by default.
const DefaultScrambleLength = 20

// Option configures Scramble.
type Option func(*config)

type config struct {
	length int
	rng    RandomSource
}

func defaultConfig() *config {
	return &config{
		length: DefaultScrambleLength,
	}
}

// WithLength sets the number of moves in the scramble.
func WithLength(n int) Option {
	return func(c *config) {
		c.length = n
	}
}

// WithSource sets the random source used for drawing moves.
// By default a new StandardSource is used.
func WithSource(rng RandomSource) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed uses a deterministic SeededSource, so the same seed always
// produces the same scramble.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = NewSeededSource(seed)
	}
}

// Scramble draws a random move sequence.
func Scramble(opts ...Option) (MoveSequence, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewStandardSource()
	}
	return RandomSequence(cfg.rng, cfg.length)
}
