package settings

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubedojo"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

// OrientationSettings returns the generator settings for the orientation drill.
func (s Settings) OrientationSettings() drill.OrientationSettings {
	return drill.OrientationSettings{Bottom: s.Orientation.Bottom}
}

// EdgeKataSettings returns the generator settings for Edge Kata.
func (s Settings) EdgeKataSettings() (drill.EdgeKataSettings, error) {
	rule, err := cubedojo.ParseEdgeRule(s.Edge.Rule)
	if err != nil {
		return drill.EdgeKataSettings{}, err
	}
	return drill.EdgeKataSettings{
		Bottom:             s.Edge.Bottom,
		Front:              s.Edge.Front,
		RandomizeEachRound: s.Edge.RandomizeEachRound,
		ScrambleMoves:      s.Edge.ScrambleMoves,
		Rule:               rule,
	}, nil
}

// InnerEyeSettings returns the generator settings for Inner Eye.
func (s Settings) InnerEyeSettings() (drill.InnerEyeSettings, error) {
	level := drill.Level(s.InnerEye.Level)
	if !level.Valid() {
		return drill.InnerEyeSettings{}, drill.ErrInvalidLevel
	}
	return drill.InnerEyeSettings{Bottom: s.InnerEye.Bottom, Level: level}, nil
}

// ZanshinSettings returns the generator settings for Zanshin Recall.
func (s Settings) ZanshinSettings() (drill.ZanshinSettings, error) {
	flash, err := time.ParseDuration(s.Zanshin.Flash)
	if err != nil {
		return drill.ZanshinSettings{}, fmt.Errorf("settings: zanshin.flash: %w", err)
	}

	var types []drill.QuestionType
	for _, t := range s.Zanshin.EnabledTypes {
		qt, err := drill.ParseQuestionType(t)
		if err != nil {
			return drill.ZanshinSettings{}, err
		}
		types = append(types, qt)
	}
	if len(types) == 0 {
		return drill.ZanshinSettings{}, drill.ErrNoQuestionTypes
	}

	return drill.ZanshinSettings{
		EnabledTypes:        types,
		FlashDuration:       flash,
		OnlyVisibleStickers: s.Zanshin.OnlyVisibleStickers,
		Bottom:              s.Zanshin.Bottom,
		ScrambleMoves:       s.Zanshin.ScrambleMoves,
	}, nil
}

// F2LNinjaSettings returns the generator settings for F2L Pair Ninja.
func (s Settings) F2LNinjaSettings() (drill.F2LNinjaSettings, error) {
	mode, err := drill.ParseScrambleMode(s.F2L.Mode)
	if err != nil {
		return drill.F2LNinjaSettings{}, err
	}
	return drill.F2LNinjaSettings{
		Bottom:         s.F2L.Bottom,
		ScrambleMoves:  s.F2L.ScrambleMoves,
		Mode:           mode,
		MinSolvedPairs: s.F2L.MinSolvedPairs,
		MaxSolvedPairs: s.F2L.MaxSolvedPairs,
	}, nil
}

// Section returns the YAML of one drill's settings, used as the session
// snapshot in the statistics store.
func (s Settings) Section(kind drill.Kind) (string, error) {
	var v interface{}
	switch kind {
	case drill.KindOrientation:
		v = s.Orientation
	case drill.KindEdgeKata:
		v = s.Edge
	case drill.KindInnerEye:
		v = s.InnerEye
	case drill.KindZanshin:
		v = s.Zanshin
	case drill.KindF2LNinja:
		v = s.F2L
	default:
		return "", fmt.Errorf("%w: %s", drill.ErrUnknownKind, kind)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
