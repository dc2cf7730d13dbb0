package cubedojo

import "testing"

func TestOrientationProblemFixedBottom(t *testing.T) {
	r := newRand()
	for _, bottom := range Colors {
		for i := 0; i < 50; i++ {
			p := GenerateOrientationProblem(Fixed(bottom), r)
			if p.Bottom != bottom {
				t.Fatalf("bottom = %s, want %s", p.Bottom, bottom)
			}
			if p.Reference1 != FaceD {
				t.Errorf("first reference = %s, want D", p.Reference1)
			}
			if p.Reference2 == FaceU || p.Reference2 == FaceD {
				t.Errorf("second reference %s should be a side face", p.Reference2)
			}
			if p.Target == p.Reference2 || p.Target == FaceU || p.Target == FaceD {
				t.Errorf("target %s should be another side face", p.Target)
			}
			if p.CorrectAnswer != p.FaceColors.Color(p.Target) {
				t.Errorf("answer %s != face color %s", p.CorrectAnswer, p.FaceColors.Color(p.Target))
			}
		}
	}
}

func TestOrientationProblemRandomBottom(t *testing.T) {
	r := newRand()
	for i := 0; i < 200; i++ {
		p := GenerateOrientationProblem(RandomColor, r)
		if !IsValidBottomFront(p.Bottom, p.Front) {
			t.Fatalf("invalid pair %s/%s", p.Bottom, p.Front)
		}
		if !p.Reference1.IsAdjacent(p.Reference2) {
			t.Errorf("references %s and %s are not adjacent", p.Reference1, p.Reference2)
		}
		if p.Target == p.Reference1 || p.Target == p.Reference2 {
			t.Errorf("target %s repeats a reference", p.Target)
		}
		oc, err := ComputeOrientationColors(p.Bottom, p.Front)
		if err != nil {
			t.Fatal(err)
		}
		if p.CorrectAnswer != oc.Color(p.Target) {
			t.Errorf("answer %s, face colors say %s", p.CorrectAnswer, oc.Color(p.Target))
		}
		if !p.CheckAnswer(p.CorrectAnswer) || p.CheckAnswer(p.CorrectAnswer.Opposite()) {
			t.Error("CheckAnswer disagrees with CorrectAnswer")
		}
	}
}

func TestOrientationProblemYellowKeepsRedFront(t *testing.T) {
	r := newRand()
	for i := 0; i < 50; i++ {
		p := GenerateOrientationProblem(Fixed(Yellow), r)
		if p.Front != Red {
			t.Fatalf("yellow bottom: front is %s, want red", p.Front)
		}
	}
	for i := 0; i < 300; i++ {
		p := GenerateOrientationProblem(RandomColor, r)
		if p.Bottom == Yellow && p.Front != Red {
			t.Fatalf("random yellow bottom: front is %s, want red", p.Front)
		}
	}

	fronts := make(map[Color]bool)
	for i := 0; i < 100; i++ {
		fronts[GenerateOrientationProblem(Fixed(White), r).Front] = true
	}
	if len(fronts) < 2 {
		t.Errorf("white bottom should vary the front, got %v", fronts)
	}
}

func TestOrientationProblemPrompt(t *testing.T) {
	oc, _ := ComputeOrientationColors(Yellow, Red)
	p := OrientationProblem{
		Bottom: Yellow, Front: Red, FaceColors: oc,
		Reference1: FaceD, Reference2: FaceF, Target: FaceR,
		CorrectAnswer: Blue,
	}
	const want = "Yellow is down and red is front. What color is right?"
	if got := p.Prompt(); got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
}
