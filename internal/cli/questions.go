package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubedojo"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

const (
	colorHint    = "colors: white yellow blue green red orange (or w y b g r o)"
	positionHint = "positions use face letters, e.g. UFR for the up-front-right corner or FL for an edge"
)

func orientationQuestions(g *drill.Generator, s drill.OrientationSettings) questionSource {
	return func() (question, error) {
		return orientationQuestion(g.OrientationRound(s)), nil
	}
}

func orientationQuestion(round drill.OrientationRound) question {
	return question{
		category: round.Target.Relation(),
		prompt:   round.Prompt(),
		hint:     colorHint,
		grade: func(answer string) (verdict, error) {
			c, err := cubedojo.ParseColor(answer)
			if err != nil {
				return verdict{}, err
			}
			return verdict{
				correct:  drill.CheckOrientationAnswer(round, c),
				feedback: fmt.Sprintf("The %s face is %s.", round.Target.Relation(), round.CorrectAnswer),
			}, nil
		},
	}
}

func edgeKataQuestions(g *drill.Generator, s drill.EdgeKataSettings) questionSource {
	return func() (question, error) {
		round, err := g.EdgeKataRound(s)
		if err != nil {
			return question{}, err
		}
		return edgeKataQuestion(round)
	}
}

func edgeKataQuestion(round drill.EdgeKataRound) (question, error) {
	edge, ok := round.State.Piece(round.EdgeID)
	if !ok {
		return question{}, fmt.Errorf("%w: %q", cubedojo.ErrUnknownPiece, round.EdgeID)
	}
	return question{
		category: string(round.Kind),
		prompt: fmt.Sprintf("%s is down and %s is front. Is the highlighted %s edge at %s good or bad?",
			round.Bottom.Title(), round.Front, edge.Name(), cubedojo.LocationName(edge.Position)),
		cube: renderNet(round.State, netOptions{highlight: cellSet(pieceCells(edge))}),
		hint: "answer good or bad (g/b)",
		grade: func(answer string) (verdict, error) {
			good, err := parseGoodBad(answer)
			if err != nil {
				return verdict{}, err
			}
			return verdict{
				correct:  drill.CheckEdgeKataAnswer(round, good),
				feedback: round.Explanation,
			}, nil
		},
	}, nil
}

func innerEyeQuestions(g *drill.Generator, s drill.InnerEyeSettings) questionSource {
	return func() (question, error) {
		round, err := g.InnerEyeRound(s)
		if err != nil {
			return question{}, err
		}
		return innerEyeQuestion(round)
	}
}

func innerEyeQuestion(round drill.InnerEyeRound) (question, error) {
	hidden, ok := round.State.Piece(round.HiddenPieceID)
	if !ok {
		return question{}, fmt.Errorf("%w: %q", cubedojo.ErrUnknownPiece, round.HiddenPieceID)
	}
	return question{
		category: round.Level.String(),
		prompt: fmt.Sprintf("%s down. Which colors are on the hidden %s at %s?",
			round.Bottom.Title(), round.Description, cubedojo.LocationName(hidden.Position)),
		cube: renderNet(round.State, netOptions{hidden: cellSet(pieceCells(hidden))}),
		hint: colorHint + ", separated by spaces or run together as rb",
		grade: func(answer string) (verdict, error) {
			colors, err := parseColors(answer)
			if err != nil {
				return verdict{}, err
			}
			res := drill.CheckInnerEyeAnswer(round, colors)
			return verdict{correct: res.Correct, feedback: res.Explanation}, nil
		},
	}, nil
}

func zanshinQuestions(g *drill.Generator, s drill.ZanshinSettings) questionSource {
	return func() (question, error) {
		round, err := g.ZanshinRound(s)
		if err != nil {
			return question{}, err
		}
		return zanshinQuestion(round, s.FlashDuration)
	}
}

func zanshinQuestion(round drill.ZanshinRound, flash time.Duration) (question, error) {
	state := round.CubeState()
	q := question{
		category: string(round.Type()),
		prompt:   round.Prompt(),
		cube:     renderNet(state, netOptions{}),
		flash:    flash,
	}

	switch r := round.(type) {
	case drill.PieceRecallRound:
		target, _ := state.Piece(r.TargetPieceID)
		q.hint = positionHint
		q.grade = func(answer string) (verdict, error) {
			p, err := pieceAtLocation(state, answer)
			if err != nil {
				return verdict{}, err
			}
			return verdict{
				correct:  drill.CheckPieceRecallAnswer(r, p.ID()),
				feedback: fmt.Sprintf("The %s was at %s.", r.TargetPieceDescription, cubedojo.LocationName(target.Position)),
			}, nil
		}

	case drill.StickerSetRecallRound:
		q.hint = "list sticker positions as <position>-<face>, e.g. UFR-U FR-F U-U"
		q.grade = func(answer string) (verdict, error) {
			var ids []cubedojo.StickerID
			for _, field := range strings.Fields(answer) {
				v, err := cubedojo.StickerAt(state, field)
				if err != nil {
					return verdict{}, err
				}
				ids = append(ids, v.ID)
			}
			res := drill.CheckStickerSetRecallAnswer(r, ids)
			return verdict{
				correct: res.Correct,
				feedback: fmt.Sprintf("%d %s stickers: missed %d, extra %d.",
					len(r.TargetStickerIDs), r.TargetColor, res.Missed, res.Extra),
			}, nil
		}

	case drill.SingleStickerRecallRound:
		loc := r.HiddenLocation
		q.hint = colorHint
		q.grade = func(answer string) (verdict, error) {
			c, err := cubedojo.ParseColor(answer)
			if err != nil {
				return verdict{}, err
			}
			return verdict{
				correct:  drill.CheckSingleStickerRecallAnswer(r, c),
				feedback: fmt.Sprintf("The sticker at %s was %s.", loc, r.HiddenStickerColor),
			}, nil
		}

	default:
		return question{}, fmt.Errorf("unsupported question type %q", round.Type())
	}

	return q, nil
}

func f2lNinjaQuestions(g *drill.Generator, s drill.F2LNinjaSettings) questionSource {
	return func() (question, error) {
		round, err := g.F2LNinjaRound(s)
		if err != nil {
			return question{}, err
		}
		return f2lNinjaQuestion(round), nil
	}
}

func f2lNinjaQuestion(round drill.F2LNinjaRound) question {
	wantUnsolved := false
	for _, p := range round.Pairs {
		if !p.Solved {
			wantUnsolved = true
			break
		}
	}
	prompt := fmt.Sprintf("%s down. Find an F2L pair: enter the corner and edge positions.", round.Bottom.Title())
	if wantUnsolved {
		prompt = fmt.Sprintf("%s down. Find an unsolved F2L pair: enter the corner and edge positions.", round.Bottom.Title())
	}

	return question{
		category: fmt.Sprintf("%d-solved", countSolved(round.Pairs)),
		prompt:   prompt,
		cube:     renderNet(round.State, netOptions{}),
		hint:     "e.g. UFR FL; " + positionHint,
		grade: func(answer string) (verdict, error) {
			fields := strings.Fields(answer)
			if len(fields) != 2 {
				return verdict{}, fmt.Errorf("enter exactly two positions, a corner and an edge")
			}
			corner, err := pieceAtLocation(round.State, fields[0])
			if err != nil {
				return verdict{}, err
			}
			edge, err := pieceAtLocation(round.State, fields[1])
			if err != nil {
				return verdict{}, err
			}
			if corner.Type() == cubedojo.Edge && edge.Type() == cubedojo.Corner {
				corner, edge = edge, corner
			}

			sel, err := drill.CheckPairSelection(round, corner.ID(), edge.ID())
			if err != nil {
				return verdict{}, err
			}
			if !sel.Valid {
				return verdict{feedback: "Those pieces do not form a pair. Pairs: " + describePairs(round.Pairs)}, nil
			}
			state := "unsolved"
			if sel.Pair.Solved {
				state = "solved"
			}
			return verdict{
				correct:  !wantUnsolved || !sel.Pair.Solved,
				feedback: fmt.Sprintf("The %s and %s form a %s pair.", sel.Pair.Corner.Name(), sel.Pair.Edge.Name(), state),
			}, nil
		},
	}
}

// parseGoodBad reads a good/bad call.
func parseGoodBad(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "good", "y", "yes":
		return true, nil
	case "b", "bad", "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("answer good or bad, got %q", s)
	}
}

// parseColors reads color names separated by spaces or commas, or a run of
// single-letter abbreviations such as "rbw".
func parseColors(s string) ([]cubedojo.Color, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 1 {
		if _, err := cubedojo.ParseColor(fields[0]); err != nil {
			fields = strings.Split(fields[0], "")
		}
	}

	var colors []cubedojo.Color
	for _, f := range fields {
		c, err := cubedojo.ParseColor(f)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("enter at least one color")
	}
	return colors, nil
}

// pieceAtLocation returns the piece currently at a named position.
func pieceAtLocation(s cubedojo.CubeState, name string) (cubedojo.Piece, error) {
	pos, err := cubedojo.ParseLocation(name)
	if err != nil {
		return cubedojo.Piece{}, err
	}
	p, ok := s.PieceAt(pos)
	if !ok {
		return cubedojo.Piece{}, fmt.Errorf("no piece at %s", strings.ToUpper(name))
	}
	return p, nil
}

// stickerLocation returns where the sticker with the given identity sits now.
func stickerLocation(s cubedojo.CubeState, id cubedojo.StickerID) string {
	for _, v := range cubedojo.Stickers(s) {
		if v.ID == id {
			return v.Location()
		}
	}
	return string(id)
}

func countSolved(pairs []cubedojo.F2LPair) int {
	n := 0
	for _, p := range pairs {
		if p.Solved {
			n++
		}
	}
	return n
}

func describePairs(pairs []cubedojo.F2LPair) string {
	var parts []string
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s+%s",
			cubedojo.LocationName(p.Corner.Position), cubedojo.LocationName(p.Edge.Position)))
	}
	return strings.Join(parts, ", ")
}
