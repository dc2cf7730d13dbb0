package drill

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// DefaultMaxAttempts bounds the rejection sampling used by difficulty
// targeted generators.
const DefaultMaxAttempts = 300

// Option configures a Generator.
type Option func(*config)

type config struct {
	rand        cubedojo.Rand
	log         logrus.FieldLogger
	maxAttempts int
}

func defaultConfig() *config {
	return &config{
		rand:        globalRand{},
		log:         logrus.StandardLogger(),
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithRand sets the source of randomness. Pass a seeded
// *math/rand/v2.Rand for reproducible rounds.
func WithRand(r cubedojo.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithLogger sets where search diagnostics are written.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMaxAttempts bounds the number of scrambles tried when searching for
// a state in a difficulty range. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// globalRand draws from the math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
