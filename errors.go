package cubedojo

import "errors"

// Sentinel errors for the cubedojo package.
var (
	// Configuration errors
	ErrInvalidColor       = errors.New("cubedojo: invalid color")
	ErrInvalidOrientation = errors.New("cubedojo: front must be adjacent to bottom")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubedojo: invalid move notation")
	ErrInvalidSticker  = errors.New("cubedojo: invalid sticker id")

	// Structural errors
	ErrUnknownPiece = errors.New("cubedojo: unknown piece")
	ErrNotEdge      = errors.New("cubedojo: piece is not an edge")
	ErrPairCount    = errors.New("cubedojo: expected exactly 4 F2L pairs")
)
