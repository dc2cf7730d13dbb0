package cubedojo

import (
	"fmt"
	"strings"
)

// StickerID names one sticker as "<piece>-<face of origin>", e.g. "UFR-U".
type StickerID string

// NewStickerID returns the identifier for the sticker of piece pieceID
// originating on face f.
func NewStickerID(pieceID string, f Face) StickerID {
	return StickerID(pieceID + "-" + string(f))
}

// ParseStickerID splits a sticker identifier and validates both parts.
func ParseStickerID(s string) (pieceID string, f Face, err error) {
	pieceID, face, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSticker, s)
	}
	if _, known := pieceIndex[pieceID]; !known {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSticker, s)
	}
	f = Face(face)
	if !f.Valid() || !strings.Contains(pieceID, face) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSticker, s)
	}
	return pieceID, f, nil
}

// DefaultVisibleFaces are the faces seen from the default camera, which
// looks at the cube from the up-front-right diagonal.
var DefaultVisibleFaces = []Face{FaceU, FaceF, FaceR}

// IsVisibleFace reports whether f is seen by the default camera.
func IsVisibleFace(f Face) bool {
	for _, v := range DefaultVisibleFaces {
		if v == f {
			return true
		}
	}
	return false
}

// StickerView is a sticker as it currently sits on the cube.
type StickerView struct {
	ID        StickerID
	PieceID   string
	PieceType PieceType
	Color     Color
	Face      Face // face currently pointed at
	Position  Vec3 // current position of the piece
	Visible   bool // seen by the default camera
}

// Stickers lists all 54 stickers of s with their current faces.
func Stickers(s CubeState) []StickerView {
	views := make([]StickerView, 0, 54)
	for _, p := range s.pieces {
		if p.def == nil {
			continue
		}
		for _, st := range p.def.stickers {
			face := p.StickerFace(st)
			views = append(views, StickerView{
				ID:        NewStickerID(p.def.id, st.Face),
				PieceID:   p.def.id,
				PieceType: p.def.typ,
				Color:     st.Color,
				Face:      face,
				Position:  p.Position,
				Visible:   IsVisibleFace(face),
			})
		}
	}
	return views
}

// VisibleStickers lists the stickers seen by the default camera.
func VisibleStickers(s CubeState) []StickerView {
	var out []StickerView
	for _, v := range Stickers(s) {
		if v.Visible {
			out = append(out, v)
		}
	}
	return out
}

// IsPieceVisible reports whether any sticker of p is seen by the default
// camera.
func IsPieceVisible(p Piece) bool {
	for _, st := range p.Stickers() {
		if IsVisibleFace(p.StickerFace(st)) {
			return true
		}
	}
	return false
}

// IsPieceFullyVisible reports whether every sticker of p is seen by the
// default camera.
func IsPieceFullyVisible(p Piece) bool {
	for _, st := range p.Stickers() {
		if !IsVisibleFace(p.StickerFace(st)) {
			return false
		}
	}
	return len(p.Stickers()) > 0
}

// Location names where the sticker sits now as "<position>-<face>", e.g.
// "UFR-U" for the sticker on the up face of the up-front-right corner slot.
func (v StickerView) Location() string {
	return LocationName(v.Position) + "-" + string(v.Face)
}

// ParseLocation parses a position name such as "UFR", "fl" or "RU" into its
// lattice point. Letters may come in any order; at most one per axis.
func ParseLocation(s string) (Vec3, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return Vec3{}, fmt.Errorf("cubedojo: invalid location %q", s)
	}
	var v Vec3
	var seen [3]bool
	for _, r := range name {
		f := Face(string(r))
		if !f.Valid() {
			return Vec3{}, fmt.Errorf("cubedojo: invalid location %q", s)
		}
		axis := f.Axis()
		idx := 0
		switch {
		case axis.Y != 0:
			idx = 1
		case axis.Z != 0:
			idx = 2
		}
		if seen[idx] {
			return Vec3{}, fmt.Errorf("cubedojo: invalid location %q", s)
		}
		seen[idx] = true
		v = v.Add(axis)
	}
	return v, nil
}

// StickerAt returns the sticker currently at the named location, written as
// "<position>-<face>" like StickerView.Location.
func StickerAt(s CubeState, location string) (StickerView, error) {
	posName, faceName, ok := strings.Cut(strings.TrimSpace(location), "-")
	if !ok {
		return StickerView{}, fmt.Errorf("%w: %q", ErrInvalidSticker, location)
	}
	pos, err := ParseLocation(posName)
	if err != nil {
		return StickerView{}, err
	}
	face := Face(strings.ToUpper(faceName))
	for _, v := range Stickers(s) {
		if v.Position == pos && v.Face == face {
			return v, nil
		}
	}
	return StickerView{}, fmt.Errorf("%w: %q", ErrInvalidSticker, location)
}
