package drill

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubedojo"
)

// QuestionType is a Zanshin Recall question kind.
type QuestionType string

const (
	// PieceRecall: "Where is the Red-Green edge?"
	PieceRecall QuestionType = "pieceRecall"
	// StickerSetRecall: "Select every yellow sticker."
	StickerSetRecall QuestionType = "stickerSetRecall"
	// SingleStickerRecall: "What color was the hidden sticker?"
	SingleStickerRecall QuestionType = "singleStickerRecall"
)

// QuestionTypes lists every Zanshin question type.
var QuestionTypes = []QuestionType{PieceRecall, StickerSetRecall, SingleStickerRecall}

// DisplayName returns a human-readable name for the question type.
func (q QuestionType) DisplayName() string {
	switch q {
	case PieceRecall:
		return "Piece Recall"
	case StickerSetRecall:
		return "Sticker Set Recall"
	case SingleStickerRecall:
		return "Single Sticker Recall"
	default:
		return "Unknown"
	}
}

// ParseQuestionType parses a question type identifier.
func ParseQuestionType(s string) (QuestionType, error) {
	for _, q := range QuestionTypes {
		if strings.EqualFold(string(q), s) {
			return q, nil
		}
	}
	return "", fmt.Errorf("drill: unknown question type %q", s)
}

// DefaultZanshinScrambleMoves is the scramble length used by Zanshin rounds.
const DefaultZanshinScrambleMoves = 20

// ZanshinSettings configures Zanshin Recall rounds.
type ZanshinSettings struct {
	EnabledTypes        []QuestionType
	FlashDuration       time.Duration // how long the cube is shown before the question
	OnlyVisibleStickers bool
	Bottom              cubedojo.ColorChoice
	ScrambleMoves       int
}

// ZanshinRound is one of PieceRecallRound, StickerSetRecallRound or
// SingleStickerRecallRound.
type ZanshinRound interface {
	// Type reports which question the round asks.
	Type() QuestionType
	// CubeState returns the scrambled cube shown during the flash.
	CubeState() cubedojo.CubeState
	// Prompt returns the question text. It never names the answer.
	Prompt() string
}

type zanshinBase struct {
	State         cubedojo.CubeState
	Bottom        cubedojo.Color
	Scramble      []cubedojo.Move
	FlashDuration time.Duration
}

func (b zanshinBase) CubeState() cubedojo.CubeState { return b.State }

// PieceRecallRound asks where a piece was.
type PieceRecallRound struct {
	zanshinBase
	TargetPieceID          string
	TargetPieceDescription string // e.g. "Red-Green edge"
}

// Type returns PieceRecall.
func (PieceRecallRound) Type() QuestionType { return PieceRecall }

// Prompt asks for the position of the target piece.
func (r PieceRecallRound) Prompt() string {
	return fmt.Sprintf("Where is the %s?", r.TargetPieceDescription)
}

// StickerSetRecallRound asks for every sticker of one color.
type StickerSetRecallRound struct {
	zanshinBase
	TargetColor      cubedojo.Color
	TargetStickerIDs []cubedojo.StickerID
}

// Type returns StickerSetRecall.
func (StickerSetRecallRound) Type() QuestionType { return StickerSetRecall }

// Prompt asks for every sticker of the target color.
func (r StickerSetRecallRound) Prompt() string {
	return fmt.Sprintf("Select every %s sticker.", r.TargetColor)
}

// SingleStickerRecallRound hides one sticker and asks for its color.
type SingleStickerRecallRound struct {
	zanshinBase
	HiddenStickerID    cubedojo.StickerID
	HiddenLocation     string // where the sticker sits now, e.g. "UFR-U"
	HiddenStickerColor cubedojo.Color
}

// Type returns SingleStickerRecall.
func (SingleStickerRecallRound) Type() QuestionType { return SingleStickerRecall }

// Prompt names the hidden sticker by its current location. The identity
// would give the color away, since its face fixes the sticker color.
func (r SingleStickerRecallRound) Prompt() string {
	return fmt.Sprintf("What color was the sticker at %s?", r.HiddenLocation)
}

// ZanshinRound scrambles a cube and builds a question of a randomly chosen
// enabled type.
func (g *Generator) ZanshinRound(s ZanshinSettings) (ZanshinRound, error) {
	if len(s.EnabledTypes) == 0 {
		return nil, ErrNoQuestionTypes
	}
	bottom := s.Bottom.Resolve(g.rand)
	state, err := cubedojo.NewCubeState(bottom)
	if err != nil {
		return nil, err
	}
	n := s.ScrambleMoves
	if n <= 0 {
		n = DefaultZanshinScrambleMoves
	}
	scramble := cubedojo.RandomMoves(g.rand, n)
	base := zanshinBase{
		State:         cubedojo.ApplyMoves(state, scramble...),
		Bottom:        bottom,
		Scramble:      scramble,
		FlashDuration: s.FlashDuration,
	}

	qt := s.EnabledTypes[g.rand.IntN(len(s.EnabledTypes))]
	g.log.WithFields(logrus.Fields{
		"drill":    KindZanshin,
		"question": qt,
		"bottom":   bottom,
	}).Debug("generated round")

	switch qt {
	case PieceRecall:
		return g.pieceRecall(base, s.OnlyVisibleStickers), nil
	case StickerSetRecall:
		return g.stickerSetRecall(base, s.OnlyVisibleStickers), nil
	case SingleStickerRecall:
		return g.singleStickerRecall(base, s.OnlyVisibleStickers), nil
	default:
		return nil, fmt.Errorf("drill: unknown question type %q", qt)
	}
}

func (g *Generator) pieceRecall(base zanshinBase, onlyVisible bool) PieceRecallRound {
	up := base.Bottom.Opposite()
	var pieces []cubedojo.Piece
	for _, p := range base.State.Pieces() {
		if p.Type() != cubedojo.Center && !p.HasColor(up) {
			pieces = append(pieces, p)
		}
	}
	candidates := pieces
	if onlyVisible {
		candidates = nil
		for _, p := range pieces {
			if cubedojo.IsPieceVisible(p) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			candidates = pieces
		}
	}
	target := candidates[g.rand.IntN(len(candidates))]
	return PieceRecallRound{
		zanshinBase:            base,
		TargetPieceID:          target.ID(),
		TargetPieceDescription: target.Name(),
	}
}

func (g *Generator) stickerSetRecall(base zanshinBase, onlyVisible bool) StickerSetRecallRound {
	stickers := cubedojo.Stickers(base.State)
	if onlyVisible {
		stickers = cubedojo.VisibleStickers(base.State)
	}
	target := cubedojo.Colors[g.rand.IntN(len(cubedojo.Colors))]
	var ids []cubedojo.StickerID
	for _, v := range stickers {
		if v.Color == target {
			ids = append(ids, v.ID)
		}
	}
	return StickerSetRecallRound{
		zanshinBase:      base,
		TargetColor:      target,
		TargetStickerIDs: ids,
	}
}

func (g *Generator) singleStickerRecall(base zanshinBase, onlyVisible bool) SingleStickerRecallRound {
	candidates := cubedojo.Stickers(base.State)
	if onlyVisible {
		if visible := cubedojo.VisibleStickers(base.State); len(visible) > 0 {
			candidates = visible
		}
	}
	hidden := candidates[g.rand.IntN(len(candidates))]
	return SingleStickerRecallRound{
		zanshinBase:        base,
		HiddenStickerID:    hidden.ID,
		HiddenLocation:     hidden.Location(),
		HiddenStickerColor: hidden.Color,
	}
}

// CheckPieceRecallAnswer reports whether pieceID is the target piece.
func CheckPieceRecallAnswer(round PieceRecallRound, pieceID string) bool {
	return pieceID == round.TargetPieceID
}

// StickerSetAnswer is the grading of a sticker set selection.
type StickerSetAnswer struct {
	Correct bool
	Missed  int // target stickers not selected
	Extra   int // selected stickers that are not targets
}

// CheckStickerSetRecallAnswer compares the selection with the target set.
// Duplicate selections count once.
func CheckStickerSetRecallAnswer(round StickerSetRecallRound, selected []cubedojo.StickerID) StickerSetAnswer {
	target := make(map[cubedojo.StickerID]bool, len(round.TargetStickerIDs))
	for _, id := range round.TargetStickerIDs {
		target[id] = true
	}
	chosen := make(map[cubedojo.StickerID]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	var res StickerSetAnswer
	for id := range target {
		if !chosen[id] {
			res.Missed++
		}
	}
	for id := range chosen {
		if !target[id] {
			res.Extra++
		}
	}
	res.Correct = res.Missed == 0 && res.Extra == 0
	return res
}

// CheckSingleStickerRecallAnswer reports whether c is the hidden sticker's
// color.
func CheckSingleStickerRecallAnswer(round SingleStickerRecallRound, c cubedojo.Color) bool {
	return c == round.HiddenStickerColor
}
