// Package drill generates and grades rounds for the cube recognition drills.
//
// Every generator is a method on Generator, which carries the random source,
// a logger and the search budget. Rounds are plain values holding the cube
// state to show, the quiz target and the expected answer; the matching
// Check functions grade a player's response without any hidden state.
//
//	g := drill.New(drill.WithRand(rand.New(rand.NewPCG(1, 2))))
//	round, err := g.InnerEyeRound(drill.InnerEyeSettings{
//	    Bottom: cubedojo.Fixed(cubedojo.Yellow),
//	    Level:  drill.Level2,
//	})
//	...
//	res := drill.CheckInnerEyeAnswer(round, []cubedojo.Color{cubedojo.Red, cubedojo.Blue})
package drill

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// Sentinel errors for the drill package.
var (
	ErrNoQuestionTypes = errors.New("drill: at least one question type must be enabled")
	ErrInvalidLevel    = errors.New("drill: level must be between 1 and 4")
	ErrUnknownKind     = errors.New("drill: unknown drill")
)

// Kind identifies a drill.
type Kind string

const (
	KindOrientation Kind = "orientation"
	KindEdgeKata    Kind = "edge"
	KindInnerEye    Kind = "innereye"
	KindZanshin     Kind = "zanshin"
	KindF2LNinja    Kind = "f2l"
)

// Kinds lists every drill.
var Kinds = []Kind{KindOrientation, KindEdgeKata, KindInnerEye, KindZanshin, KindF2LNinja}

// String returns the drill identifier.
func (k Kind) String() string {
	return string(k)
}

// DisplayName returns a human-readable name for the drill.
func (k Kind) DisplayName() string {
	switch k {
	case KindOrientation:
		return "Color Orientation"
	case KindEdgeKata:
		return "Edge Kata"
	case KindInnerEye:
		return "Inner Eye Deduction"
	case KindZanshin:
		return "Zanshin Recall"
	case KindF2LNinja:
		return "F2L Pair Ninja"
	default:
		return "Unknown"
	}
}

// ParseKind parses a drill identifier.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generator builds drill rounds.
//
// A Generator is not safe for concurrent use when its random source is not.
type Generator struct {
	rand        cubedojo.Rand
	log         logrus.FieldLogger
	maxAttempts int
}

// New creates a Generator with the given options.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{
		rand:        cfg.rand,
		log:         cfg.log,
		maxAttempts: cfg.maxAttempts,
	}
}

// Rand returns the generator's random source.
func (g *Generator) Rand() cubedojo.Rand {
	return g.rand
}
