package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubedojo"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))
)

var stickerStyles = map[cubedojo.Color]lipgloss.Style{
	cubedojo.White:  stickerStyle("15"),
	cubedojo.Yellow: stickerStyle("11"),
	cubedojo.Blue:   stickerStyle("12"),
	cubedojo.Green:  stickerStyle("10"),
	cubedojo.Red:    stickerStyle("9"),
	cubedojo.Orange: stickerStyle("208"),
}

func stickerStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(bg))
}

// cell is one facelet of the unfolded net.
type cell struct {
	face  cubedojo.Face
	index int
}

// netOptions marks facelets to emphasize or mask.
type netOptions struct {
	highlight map[cell]bool
	hidden    map[cell]bool
}

// pieceCells returns the facelets covered by a piece at its current position.
func pieceCells(p cubedojo.Piece) []cell {
	var cells []cell
	for _, st := range p.Stickers() {
		f := p.StickerFace(st)
		cells = append(cells, cell{face: f, index: cubedojo.FaceletIndex(f, p.Position)})
	}
	return cells
}

func cellSet(cells []cell) map[cell]bool {
	set := make(map[cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

// renderNet draws the cube as a colored net: U above, L F R B side by side,
// then D.
func renderNet(s cubedojo.CubeState, opts netOptions) string {
	net := s.Facelets()
	var b strings.Builder

	writeRow := func(f cubedojo.Face, row int) {
		for col := 0; col < 3; col++ {
			c := cell{face: f, index: row*3 + col}
			color := net[f][c.index]
			switch {
			case opts.hidden[c]:
				b.WriteString(hiddenStyle.Render(" ? "))
			case opts.highlight[c]:
				b.WriteString(stickerStyles[color].Bold(true).Render("[" + color.Short() + "]"))
			default:
				b.WriteString(stickerStyles[color].Render(" " + color.Short() + " "))
			}
		}
	}
	pad := strings.Repeat(" ", 9)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cubedojo.FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []cubedojo.Face{cubedojo.FaceL, cubedojo.FaceF, cubedojo.FaceR, cubedojo.FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(cubedojo.FaceD, row)
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render(pad + "    U\n    L        F        R        B\n" + pad + "    D"))
	b.WriteByte('\n')

	return b.String()
}
