package cubedojo

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face in the template scheme
	Yellow Color = 1 // Down face in the template scheme
	Blue   Color = 2 // Right face in the template scheme
	Green  Color = 3 // Left face in the template scheme
	Red    Color = 4 // Front face in the template scheme
	Orange Color = 5 // Back face in the template scheme
)

// Colors lists all six colors in their canonical order.
var Colors = []Color{White, Yellow, Blue, Green, Red, Orange}

// String returns the lowercase color name used in explanations.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Short returns the single-letter abbreviation of the color.
func (c Color) Short() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Title returns the color name with a leading capital, e.g. "Red".
func (c Color) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether c is one of the six cube colors.
func (c Color) Valid() bool {
	return c <= Orange
}

// Opposite returns the color on the opposite face.
// white<->yellow, blue<->green, red<->orange.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Yellow
	case Yellow:
		return White
	case Blue:
		return Green
	case Green:
		return Blue
	case Red:
		return Orange
	case Orange:
		return Red
	default:
		return c
	}
}

// AdjacentColors returns the four colors that can share a piece with c.
func AdjacentColors(c Color) []Color {
	adj := make([]Color, 0, 4)
	for _, o := range Colors {
		if o != c && o != c.Opposite() {
			adj = append(adj, o)
		}
	}
	return adj
}

// ParseColor parses a color name or its single-letter abbreviation.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "yellow", "y":
		return Yellow, nil
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	case "red", "r":
		return Red, nil
	case "orange", "o":
		return Orange, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorChoice is a color setting that is either a fixed color or "random".
type ColorChoice struct {
	Color  Color
	Random bool
}

// RandomColor is the "random" color setting.
var RandomColor = ColorChoice{Random: true}

// Fixed returns a setting pinned to c.
func Fixed(c Color) ColorChoice {
	return ColorChoice{Color: c}
}

// String returns the color name or "random".
func (cc ColorChoice) String() string {
	if cc.Random {
		return "random"
	}
	return cc.Color.String()
}

// Resolve returns the fixed color, or a uniformly random one.
func (cc ColorChoice) Resolve(r Rand) Color {
	if cc.Random {
		return Colors[r.IntN(len(Colors))]
	}
	return cc.Color
}

// ParseColorChoice parses "random" or any value accepted by ParseColor.
func ParseColorChoice(s string) (ColorChoice, error) {
	if strings.EqualFold(strings.TrimSpace(s), "random") {
		return RandomColor, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return ColorChoice{}, err
	}
	return Fixed(c), nil
}

// MarshalText implements encoding.TextMarshaler.
func (cc ColorChoice) MarshalText() ([]byte, error) {
	return []byte(cc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cc *ColorChoice) UnmarshalText(text []byte) error {
	parsed, err := ParseColorChoice(string(text))
	if err != nil {
		return err
	}
	*cc = parsed
	return nil
}

// AreColorsValidTogether reports whether the colors could sit on one piece,
// i.e. no two of them are opposites.
func AreColorsValidTogether(colors []Color) bool {
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if colors[i].Opposite() == colors[j] {
				return false
			}
		}
	}
	return true
}

// ValidColorCombinations returns every physically possible color set for
// an edge (12 sets) or a corner (8 sets). Centers return one set per color.
func ValidColorCombinations(t PieceType) [][]Color {
	var combos [][]Color
	switch t {
	case Center:
		for _, c := range Colors {
			combos = append(combos, []Color{c})
		}
	case Edge:
		for i := 0; i < len(Colors); i++ {
			for j := i + 1; j < len(Colors); j++ {
				if Colors[i].Opposite() != Colors[j] {
					combos = append(combos, []Color{Colors[i], Colors[j]})
				}
			}
		}
	case Corner:
		for i := 0; i < len(Colors); i++ {
			for j := i + 1; j < len(Colors); j++ {
				for k := j + 1; k < len(Colors); k++ {
					set := []Color{Colors[i], Colors[j], Colors[k]}
					if AreColorsValidTogether(set) {
						combos = append(combos, set)
					}
				}
			}
		}
	}
	return combos
}
