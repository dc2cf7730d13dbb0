package cubedojo

import "fmt"

// OrientationProblem asks for the color on one face given two reference
// faces of a held cube.
type OrientationProblem struct {
	Bottom, Front Color
	FaceColors    OrientationColors

	Reference1, Reference2 Face
	Target                 Face

	CorrectAnswer Color
}

// Prompt renders the question in plain language, e.g.
// "Yellow is down and red is front. What color is right?"
func (p OrientationProblem) Prompt() string {
	return fmt.Sprintf("%s is %s and %s is %s. What color is %s?",
		p.FaceColors.Color(p.Reference1).Title(), p.Reference1.Relation(),
		p.FaceColors.Color(p.Reference2), p.Reference2.Relation(),
		p.Target.Relation())
}

// GenerateOrientationProblem builds an orientation question.
//
// With a fixed bottom the first reference is always D, the second is a
// random side face, and the target is another side face. With a random
// bottom the two references are any pair of adjacent faces and the target
// is any other face. A yellow bottom always keeps the standard red front;
// every other bottom gets a random front.
func GenerateOrientationProblem(bottom ColorChoice, r Rand) OrientationProblem {
	var b, front Color
	var ref1, ref2, target Face

	if bottom.Random {
		b, front = RandomValidBottomFront(r)
		if b == Yellow {
			front = Red
		}
		ref1 = Faces[r.IntN(len(Faces))]
		adj := ref1.Adjacent()
		ref2 = adj[r.IntN(len(adj))]
		target = pickFace(r, Faces, ref1, ref2)
	} else {
		b = bottom.Color
		if b == Yellow {
			front = Red
		} else {
			adj := AdjacentColors(b)
			front = adj[r.IntN(len(adj))]
		}
		ref1 = FaceD
		ref2 = SideFaces[r.IntN(len(SideFaces))]
		target = pickFace(r, SideFaces, ref2)
	}

	// b and front are adjacent by construction.
	colors, _ := ComputeOrientationColors(b, front)
	return OrientationProblem{
		Bottom:        b,
		Front:         front,
		FaceColors:    colors,
		Reference1:    ref1,
		Reference2:    ref2,
		Target:        target,
		CorrectAnswer: colors.Color(target),
	}
}

func pickFace(r Rand, from []Face, exclude ...Face) Face {
	candidates := make([]Face, 0, len(from))
outer:
	for _, f := range from {
		for _, e := range exclude {
			if f == e {
				continue outer
			}
		}
		candidates = append(candidates, f)
	}
	return candidates[r.IntN(len(candidates))]
}

// CheckAnswer reports whether answer is the color on the target face.
func (p OrientationProblem) CheckAnswer(answer Color) bool {
	return answer == p.CorrectAnswer
}
