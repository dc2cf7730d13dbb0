package cubedojo

import "strings"

// PieceType classifies a piece by its sticker count.
type PieceType int

const (
	Center PieceType = 1 // one sticker
	Edge   PieceType = 2 // two stickers
	Corner PieceType = 3 // three stickers
)

func (t PieceType) String() string {
	switch t {
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Sticker is one colored facelet of a piece.
// Face and Normal describe the template pose and never change;
// use Piece.StickerFace for the face a sticker currently occupies.
type Sticker struct {
	Face   Face  // face of origin in the template solved state
	Color  Color // sticker color
	Normal Vec3  // outward normal in the piece's local frame
}

// pieceDef is the immutable part of a piece, shared by every state.
type pieceDef struct {
	id       string
	index    int
	typ      PieceType
	stickers []Sticker
}

// Piece is one of the 26 visible cubies together with its current pose.
type Piece struct {
	def *pieceDef

	Position    Vec3        // current lattice position
	Orientation Orientation // rotation since the template pose

	// SolvedPosition and SolvedOrientation are the pose this piece has in
	// the solved state for the cube's bottom color.
	SolvedPosition    Vec3
	SolvedOrientation Orientation
}

// ID returns the stable identifier, e.g. "UFR", "UF" or "U".
func (p Piece) ID() string {
	if p.def == nil {
		return ""
	}
	return p.def.id
}

// Type returns whether the piece is a center, edge or corner.
func (p Piece) Type() PieceType {
	if p.def == nil {
		return 0
	}
	return p.def.typ
}

// Stickers returns a copy of the piece's stickers in ID order.
func (p Piece) Stickers() []Sticker {
	if p.def == nil {
		return nil
	}
	out := make([]Sticker, len(p.def.stickers))
	copy(out, p.def.stickers)
	return out
}

// Colors returns the sticker colors in ID order.
func (p Piece) Colors() []Color {
	if p.def == nil {
		return nil
	}
	colors := make([]Color, len(p.def.stickers))
	for i, s := range p.def.stickers {
		colors[i] = s.Color
	}
	return colors
}

// HasColor reports whether any sticker of the piece has color c.
func (p Piece) HasColor(c Color) bool {
	if p.def == nil {
		return false
	}
	for _, s := range p.def.stickers {
		if s.Color == c {
			return true
		}
	}
	return false
}

// StickerNormal returns the current world-space normal of s.
func (p Piece) StickerNormal(s Sticker) (float64, float64, float64) {
	return p.Orientation.Apply(float64(s.Normal.X), float64(s.Normal.Y), float64(s.Normal.Z))
}

// StickerFace returns the face that s currently points towards.
func (p Piece) StickerFace(s Sticker) Face {
	return FaceFromNormal(p.StickerNormal(s))
}

// StickerWithColor returns the sticker of color c.
func (p Piece) StickerWithColor(c Color) (Sticker, bool) {
	if p.def == nil {
		return Sticker{}, false
	}
	for _, s := range p.def.stickers {
		if s.Color == c {
			return s, true
		}
	}
	return Sticker{}, false
}

// Name describes the piece by its colors, e.g. "Red-Green edge".
func (p Piece) Name() string {
	colors := p.Colors()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.Title()
	}
	return strings.Join(names, "-") + " " + p.Type().String()
}

// Solved reports whether the piece is back in its solved position and
// orientation.
func (p Piece) Solved() bool {
	return p.Position == p.SolvedPosition && p.Orientation == p.SolvedOrientation
}

// template colors per face; white on U, red on F.
var templateColors = map[Face]Color{
	FaceU: White,
	FaceD: Yellow,
	FaceF: Red,
	FaceB: Orange,
	FaceL: Green,
	FaceR: Blue,
}

// TemplateColor returns the color of face f in the template scheme
// (U white, D yellow, F red, B orange, L green, R blue).
func TemplateColor(f Face) Color {
	return templateColors[f]
}

// TemplateFace returns the face that carries c in the template scheme.
func TemplateFace(c Color) Face {
	for f, tc := range templateColors {
		if tc == c {
			return f
		}
	}
	return ""
}

var pieceIDs = []string{
	"U", "D", "F", "B", "L", "R",
	"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL",
	"UFR", "UFL", "UBR", "UBL", "DFR", "DFL", "DBR", "DBL",
}

// PieceIDs returns the 26 piece identifiers: centers, edges, then corners.
func PieceIDs() []string {
	out := make([]string, len(pieceIDs))
	copy(out, pieceIDs)
	return out
}

var (
	pieceDefs  [26]*pieceDef
	pieceIndex = make(map[string]int, 26)
)

func init() {
	for i, id := range pieceIDs {
		def := &pieceDef{id: id, index: i, typ: PieceType(len(id))}
		for _, r := range id {
			f := Face(string(r))
			def.stickers = append(def.stickers, Sticker{
				Face:   f,
				Color:  templateColors[f],
				Normal: f.Axis(),
			})
		}
		pieceDefs[i] = def
		pieceIndex[id] = i
	}
}

// templatePiece returns piece i in the template solved pose.
func templatePiece(i int) Piece {
	def := pieceDefs[i]
	var pos Vec3
	for _, s := range def.stickers {
		pos = pos.Add(s.Normal)
	}
	return Piece{
		def:               def,
		Position:          pos,
		Orientation:       Identity,
		SolvedPosition:    pos,
		SolvedOrientation: Identity,
	}
}
