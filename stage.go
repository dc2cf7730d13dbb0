package cubedojo

// Stage is how far a cube is from solved in the cross-then-F2L method.
// Stages are ordered, so they can be compared with < and >.
type Stage int

const (
	// StageScrambled means the bottom cross is not solved.
	StageScrambled Stage = iota
	// StageCross means the cross is solved with no F2L pairs.
	StageCross
	// StageF2L1 to StageF2L3 count solved F2L pairs on top of the cross.
	StageF2L1
	StageF2L2
	StageF2L3
	// StageF2L means the first two layers are complete.
	StageF2L
	// StageSolved means every piece is solved.
	StageSolved
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageScrambled:
		return "scrambled"
	case StageCross:
		return "cross"
	case StageF2L1:
		return "f2l_1"
	case StageF2L2:
		return "f2l_2"
	case StageF2L3:
		return "f2l_3"
	case StageF2L:
		return "f2l"
	case StageSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageScrambled:
		return "Scrambled"
	case StageCross:
		return "Cross"
	case StageF2L1:
		return "Cross + 1 Pair"
	case StageF2L2:
		return "Cross + 2 Pairs"
	case StageF2L3:
		return "Cross + 3 Pairs"
	case StageF2L:
		return "First Two Layers"
	case StageSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// DetectStage reports the stage of s for the given bottom color.
func DetectStage(s CubeState, bottom Color) (Stage, error) {
	if IsSolved(s) {
		return StageSolved, nil
	}
	if !IsDCrossSolved(s, bottom) {
		return StageScrambled, nil
	}
	n, err := CountSolvedF2LPairs(s, bottom)
	if err != nil {
		return StageScrambled, err
	}
	return StageCross + Stage(n), nil
}
