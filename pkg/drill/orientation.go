package drill

import "github.com/SeamusWaldron/cubedojo"

// OrientationSettings configures color orientation rounds.
type OrientationSettings struct {
	Bottom cubedojo.ColorChoice
}

// OrientationRound asks for the color of one face given two others.
type OrientationRound struct {
	cubedojo.OrientationProblem
}

// OrientationRound builds a color orientation question.
func (g *Generator) OrientationRound(s OrientationSettings) OrientationRound {
	return OrientationRound{OrientationProblem: cubedojo.GenerateOrientationProblem(s.Bottom, g.rand)}
}

// CheckOrientationAnswer reports whether answer is the target face's color.
func CheckOrientationAnswer(round OrientationRound, answer cubedojo.Color) bool {
	return round.CheckAnswer(answer)
}
