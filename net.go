package cubedojo

import "strings"

// Net is the unfolded sticker layout of a cube state.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with F at the bottom, D from below with F at the
// top, and the side faces from outside with U at the top.
type Net map[Face][9]Color

// FaceletIndex returns where a sticker at pos facing f sits on its face.
func FaceletIndex(f Face, pos Vec3) int {
	var row, col int
	switch f {
	case FaceU:
		row, col = pos.Z+1, pos.X+1
	case FaceD:
		row, col = 1-pos.Z, pos.X+1
	case FaceF:
		row, col = 1-pos.Y, pos.X+1
	case FaceB:
		row, col = 1-pos.Y, 1-pos.X
	case FaceR:
		row, col = 1-pos.Y, 1-pos.Z
	case FaceL:
		row, col = 1-pos.Y, pos.Z+1
	}
	return row*3 + col
}

// Facelets returns the color of every sticker by face and facelet index.
func (s CubeState) Facelets() Net {
	faces := make(map[Face]*[9]Color, len(Faces))
	for _, f := range Faces {
		faces[f] = new([9]Color)
	}
	for _, p := range s.pieces {
		if p.def == nil {
			continue
		}
		for _, st := range p.def.stickers {
			f := p.StickerFace(st)
			faces[f][FaceletIndex(f, p.Position)] = st.Color
		}
	}
	net := make(Net, len(faces))
	for f, cells := range faces {
		net[f] = *cells
	}
	return net
}

// String returns a text representation of the cube as an unfolded net:
// U above, then L F R B side by side, then D.
func (s CubeState) String() string {
	net := s.Facelets()
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(net[f][row*3+col].Short())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
