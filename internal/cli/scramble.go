package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedojo"
)

var (
	scrambleMode   string
	scrambleMoves  int
	scrambleBottom string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a scramble and the resulting cube",
	Long: `Generate a scramble and print it with the unfolded net of the scrambled cube.

Modes:
  full   - random face turns
  u      - U layer turns only
  cross  - conjugates that keep the bottom cross solved (--moves counts conjugates)`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().StringVar(&scrambleMode, "mode", "full", "Scramble mode: full, u or cross")
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 20, "Number of turns (conjugates in cross mode)")
	scrambleCmd.Flags().StringVar(&scrambleBottom, "bottom", "white", "Bottom color, or random")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMoves < 0 {
		return fmt.Errorf("--moves must not be negative")
	}
	choice, err := cubedojo.ParseColorChoice(scrambleBottom)
	if err != nil {
		return err
	}
	g := newGenerator()
	bottom := choice.Resolve(g.Rand())

	var moves []cubedojo.Move
	switch scrambleMode {
	case "full":
		moves = cubedojo.RandomMoves(g.Rand(), scrambleMoves)
	case "u":
		moves = cubedojo.ULayerMoves(g.Rand(), scrambleMoves)
	case "cross":
		moves = cubedojo.CrossPreservingMoves(g.Rand(), scrambleMoves)
	default:
		return fmt.Errorf("unknown scramble mode %q (want full, u or cross)", scrambleMode)
	}

	return printScramble(cmd.OutOrStdout(), bottom, cubedojo.SimplifyMoves(moves))
}

func printScramble(w io.Writer, bottom cubedojo.Color, moves []cubedojo.Move) error {
	start, err := cubedojo.NewCubeState(bottom)
	if err != nil {
		return err
	}
	state := cubedojo.ApplyMoves(start, moves...)

	stage, err := cubedojo.DetectStage(state, bottom)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Scramble:"), cubedojo.FormatMoves(moves))
	fmt.Fprintf(w, "Bottom: %s  Moves: %d  Stage: %s\n\n", bottom.Title(), len(moves), stage.DisplayName())
	fmt.Fprint(w, renderNet(state, netOptions{}))
	return nil
}
