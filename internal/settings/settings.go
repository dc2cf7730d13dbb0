// Package settings manages the drill settings file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubedojo"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

// ErrUnknownKey is returned by Set for a key that names no setting.
var ErrUnknownKey = errors.New("settings: unknown key")

// Settings is the persistent configuration of every drill.
type Settings struct {
	Orientation Orientation `yaml:"orientation"`
	Edge        Edge        `yaml:"edge"`
	InnerEye    InnerEye    `yaml:"innereye"`
	Zanshin     Zanshin     `yaml:"zanshin"`
	F2L         F2L         `yaml:"f2l"`
}

// Orientation configures the orientation drill.
type Orientation struct {
	Bottom cubedojo.ColorChoice `yaml:"bottom"`
}

// Edge configures Edge Kata.
type Edge struct {
	Bottom             cubedojo.ColorChoice `yaml:"bottom"`
	Front              cubedojo.ColorChoice `yaml:"front"`
	RandomizeEachRound bool                 `yaml:"randomize_each_round"`
	ScrambleMoves      int                  `yaml:"scramble_moves"`
	Rule               string               `yaml:"rule"`
}

// InnerEye configures Inner Eye.
type InnerEye struct {
	Bottom cubedojo.ColorChoice `yaml:"bottom"`
	Level  int                  `yaml:"level"`
}

// Zanshin configures Zanshin Recall.
type Zanshin struct {
	Bottom              cubedojo.ColorChoice `yaml:"bottom"`
	EnabledTypes        []string             `yaml:"enabled_types"`
	Flash               string               `yaml:"flash"`
	OnlyVisibleStickers bool                 `yaml:"only_visible_stickers"`
	ScrambleMoves       int                  `yaml:"scramble_moves"`
}

// F2L configures F2L Pair Ninja.
type F2L struct {
	Bottom         cubedojo.ColorChoice `yaml:"bottom"`
	Mode           string               `yaml:"mode"`
	ScrambleMoves  int                  `yaml:"scramble_moves"`
	MinSolvedPairs int                  `yaml:"min_solved_pairs"`
	MaxSolvedPairs int                  `yaml:"max_solved_pairs"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	white := cubedojo.Fixed(cubedojo.White)
	return Settings{
		Orientation: Orientation{Bottom: white},
		Edge: Edge{
			Bottom:        white,
			Front:         cubedojo.Fixed(cubedojo.Red),
			ScrambleMoves: 22,
			Rule:          cubedojo.EdgeRuleImportantSticker.String(),
		},
		InnerEye: InnerEye{Bottom: white, Level: 1},
		Zanshin: Zanshin{
			Bottom: white,
			EnabledTypes: []string{
				string(drill.PieceRecall),
				string(drill.StickerSetRecall),
				string(drill.SingleStickerRecall),
			},
			Flash:         "2s",
			ScrambleMoves: drill.DefaultZanshinScrambleMoves,
		},
		F2L: F2L{
			Bottom:         white,
			Mode:           string(drill.ScrambleConjugate),
			ScrambleMoves:  3,
			MinSolvedPairs: 0,
			MaxSolvedPairs: 2,
		},
	}
}

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".cubedojo", "settings.yaml"), nil
}

// Load reads settings from path. Fields missing from the file keep their
// default values, and a missing file yields Default().
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return s, nil
}

// Save writes settings to path, creating its directory.
func Save(path string, s Settings) error {
	data, err := s.YAML()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// YAML returns the settings document.
func (s Settings) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Keys returns every key accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns a value given as text to the setting named by a dotted key
// such as "edge.rule" or "zanshin.flash".
func (s *Settings) Set(key, value string) error {
	set, ok := setters[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := set(s, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("settings: %s: %w", key, err)
	}
	return nil
}

var setters = map[string]func(*Settings, string) error{
	"orientation.bottom": func(s *Settings, v string) error { return setChoice(&s.Orientation.Bottom, v) },

	"edge.bottom":               func(s *Settings, v string) error { return setChoice(&s.Edge.Bottom, v) },
	"edge.front":                func(s *Settings, v string) error { return setChoice(&s.Edge.Front, v) },
	"edge.randomize_each_round": func(s *Settings, v string) error { return setBool(&s.Edge.RandomizeEachRound, v) },
	"edge.scramble_moves":       func(s *Settings, v string) error { return setInt(&s.Edge.ScrambleMoves, v, 0) },
	"edge.rule": func(s *Settings, v string) error {
		r, err := cubedojo.ParseEdgeRule(v)
		if err != nil {
			return err
		}
		s.Edge.Rule = r.String()
		return nil
	},

	"innereye.bottom": func(s *Settings, v string) error { return setChoice(&s.InnerEye.Bottom, v) },
	"innereye.level": func(s *Settings, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid number %q", v)
		}
		if !drill.Level(n).Valid() {
			return drill.ErrInvalidLevel
		}
		s.InnerEye.Level = n
		return nil
	},

	"zanshin.bottom": func(s *Settings, v string) error { return setChoice(&s.Zanshin.Bottom, v) },
	"zanshin.enabled_types": func(s *Settings, v string) error {
		var types []string
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			qt, err := drill.ParseQuestionType(part)
			if err != nil {
				return err
			}
			types = append(types, string(qt))
		}
		if len(types) == 0 {
			return drill.ErrNoQuestionTypes
		}
		s.Zanshin.EnabledTypes = types
		return nil
	},
	"zanshin.flash": func(s *Settings, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		if d <= 0 {
			return fmt.Errorf("flash must be positive, got %s", d)
		}
		s.Zanshin.Flash = d.String()
		return nil
	},
	"zanshin.only_visible_stickers": func(s *Settings, v string) error { return setBool(&s.Zanshin.OnlyVisibleStickers, v) },
	"zanshin.scramble_moves":        func(s *Settings, v string) error { return setInt(&s.Zanshin.ScrambleMoves, v, 1) },

	"f2l.bottom": func(s *Settings, v string) error { return setChoice(&s.F2L.Bottom, v) },
	"f2l.mode": func(s *Settings, v string) error {
		m, err := drill.ParseScrambleMode(v)
		if err != nil {
			return err
		}
		s.F2L.Mode = string(m)
		return nil
	},
	"f2l.scramble_moves":   func(s *Settings, v string) error { return setInt(&s.F2L.ScrambleMoves, v, 1) },
	"f2l.min_solved_pairs": func(s *Settings, v string) error { return setPairs(&s.F2L.MinSolvedPairs, v) },
	"f2l.max_solved_pairs": func(s *Settings, v string) error { return setPairs(&s.F2L.MaxSolvedPairs, v) },
}

func setChoice(dst *cubedojo.ColorChoice, v string) error {
	c, err := cubedojo.ParseColorChoice(v)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", v)
	}
	*dst = b
	return nil
}

func setInt(dst *int, v string, lo int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid number %q", v)
	}
	if n < lo {
		return fmt.Errorf("must be at least %d, got %d", lo, n)
	}
	*dst = n
	return nil
}

func setPairs(dst *int, v string) error {
	var n int
	if err := setInt(&n, v, 0); err != nil {
		return err
	}
	if n > 4 {
		return fmt.Errorf("must be at most 4, got %d", n)
	}
	*dst = n
	return nil
}
