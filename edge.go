package cubedojo

import "fmt"

// EdgeKind tells which sticker of an edge decides its orientation.
type EdgeKind string

const (
	// EdgeKindUD edges carry the U or D color; that sticker is important.
	EdgeKindUD EdgeKind = "UD"
	// EdgeKindFB edges carry neither; the F or B colored sticker is important.
	EdgeKindFB EdgeKind = "FB"
)

// EdgeRule selects how an edge is judged good or bad.
type EdgeRule int

const (
	// EdgeRuleImportantSticker judges by the important sticker alone:
	// UD edges are good when it faces U or D, FB edges when it faces F or B.
	EdgeRuleImportantSticker EdgeRule = iota
	// EdgeRuleCurrentLayer judges by where the edge sits now: in the U or D
	// layer the important sticker must face U or D, in the middle layer it
	// must face F or B.
	EdgeRuleCurrentLayer
)

func (r EdgeRule) String() string {
	switch r {
	case EdgeRuleImportantSticker:
		return "important-sticker"
	case EdgeRuleCurrentLayer:
		return "current-layer"
	default:
		return "unknown"
	}
}

// ParseEdgeRule parses the names returned by EdgeRule.String.
func ParseEdgeRule(s string) (EdgeRule, error) {
	switch s {
	case "important-sticker", "":
		return EdgeRuleImportantSticker, nil
	case "current-layer":
		return EdgeRuleCurrentLayer, nil
	default:
		return 0, fmt.Errorf("cubedojo: unknown edge rule %q", s)
	}
}

// EdgeResult is the verdict for one edge.
type EdgeResult struct {
	Kind           EdgeKind
	Good           bool
	ImportantColor Color
	ImportantFace  Face // face the important sticker currently points at
	Explanation    string
}

// IsGoodEdge classifies an edge's orientation relative to oc.
func IsGoodEdge(edge Piece, oc OrientationColors, rule EdgeRule) (EdgeResult, error) {
	if edge.Type() != Edge {
		return EdgeResult{}, fmt.Errorf("%w: %q is a %s", ErrNotEdge, edge.ID(), edge.Type())
	}
	stickers := edge.Stickers()
	if len(stickers) != 2 {
		return EdgeResult{}, fmt.Errorf("%w: %q has %d stickers", ErrNotEdge, edge.ID(), len(stickers))
	}

	res := EdgeResult{Kind: EdgeKindFB}
	important := stickers[1]
	switch {
	case isUDColor(stickers[0].Color, oc):
		res.Kind, important = EdgeKindUD, stickers[0]
	case isUDColor(stickers[1].Color, oc):
		res.Kind = EdgeKindUD
	case isFBColor(stickers[0].Color, oc):
		important = stickers[0]
	}
	res.ImportantColor = important.Color
	res.ImportantFace = edge.StickerFace(important)

	facesUD := res.ImportantFace == FaceU || res.ImportantFace == FaceD
	facesFB := res.ImportantFace == FaceF || res.ImportantFace == FaceB

	if rule == EdgeRuleCurrentLayer {
		inUDLayer := edge.Position.Y != 0
		if inUDLayer {
			res.Good = facesUD
		} else {
			res.Good = facesFB
		}
		res.Explanation = layerExplanation(res, inUDLayer)
		return res, nil
	}

	if res.Kind == EdgeKindUD {
		res.Good = facesUD
		if res.Good {
			res.Explanation = fmt.Sprintf("U/D edge: the %s sticker is facing %s, so Good.", res.ImportantColor, res.ImportantFace)
		} else {
			res.Explanation = fmt.Sprintf("U/D edge: the %s sticker is facing %s (not U/D), so Bad.", res.ImportantColor, res.ImportantFace)
		}
		return res, nil
	}

	res.Good = facesFB
	if res.Good {
		res.Explanation = fmt.Sprintf("Middle edge: the %s sticker is facing %s, so Good.", res.ImportantColor, res.ImportantFace)
	} else {
		res.Explanation = fmt.Sprintf("Middle edge: the %s sticker is facing %s (not F/B), so Bad.", res.ImportantColor, res.ImportantFace)
	}
	return res, nil
}

func layerExplanation(res EdgeResult, inUDLayer bool) string {
	verdict := "Bad"
	if res.Good {
		verdict = "Good"
	}
	if inUDLayer {
		if res.Good {
			return fmt.Sprintf("Edge in the U/D layer: the %s sticker is facing %s, so %s.", res.ImportantColor, res.ImportantFace, verdict)
		}
		return fmt.Sprintf("Edge in the U/D layer: the %s sticker is facing %s (not U/D), so %s.", res.ImportantColor, res.ImportantFace, verdict)
	}
	if res.Good {
		return fmt.Sprintf("Edge in the middle layer: the %s sticker is facing %s, so %s.", res.ImportantColor, res.ImportantFace, verdict)
	}
	return fmt.Sprintf("Edge in the middle layer: the %s sticker is facing %s (not F/B), so %s.", res.ImportantColor, res.ImportantFace, verdict)
}

func isUDColor(c Color, oc OrientationColors) bool {
	return c == oc.U || c == oc.D
}

func isFBColor(c Color, oc OrientationColors) bool {
	return c == oc.F || c == oc.B
}
