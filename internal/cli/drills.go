package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedojo/internal/settings"
	"github.com/SeamusWaldron/cubedojo/internal/storage"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Name the color on a face from two reference faces",
	Long: `Orientation drill: given the colors on two faces of a held cube, name the
color on a third face. Answer with a color name or its first letter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(drill.KindOrientation, func(g *drill.Generator, s settings.Settings) (questionSource, error) {
			return orientationQuestions(g, s.OrientationSettings()), nil
		})
	},
}

var edgeCmd = &cobra.Command{
	Use:   "edge",
	Short: "Edge Kata: call the highlighted edge good or bad",
	Long: `Edge Kata: a scrambled cube is shown with one edge highlighted. Decide
whether the edge is oriented (good) or not (bad) relative to the held
orientation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(drill.KindEdgeKata, func(g *drill.Generator, s settings.Settings) (questionSource, error) {
			es, err := s.EdgeKataSettings()
			if err != nil {
				return nil, err
			}
			return edgeKataQuestions(g, es), nil
		})
	},
}

var innerEyeCmd = &cobra.Command{
	Use:   "innereye",
	Short: "Inner Eye: deduce the colors of a hidden piece",
	Long: `Inner Eye: a cube with a solved cross and some solved F2L pairs is shown with
one piece masked. Deduce the colors of the hidden piece from what remains.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(drill.KindInnerEye, func(g *drill.Generator, s settings.Settings) (questionSource, error) {
			is, err := s.InnerEyeSettings()
			if err != nil {
				return nil, err
			}
			return innerEyeQuestions(g, is), nil
		})
	},
}

var zanshinCmd = &cobra.Command{
	Use:   "zanshin",
	Short: "Zanshin Recall: remember a flashed cube",
	Long: `Zanshin Recall: a scrambled cube is flashed briefly, then hidden. Answer a
question about where a piece was, which stickers had a color, or what color a
sticker was.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(drill.KindZanshin, func(g *drill.Generator, s settings.Settings) (questionSource, error) {
			zs, err := s.ZanshinSettings()
			if err != nil {
				return nil, err
			}
			return zanshinQuestions(g, zs), nil
		})
	},
}

var f2lCmd = &cobra.Command{
	Use:   "f2l",
	Short: "F2L Pair Ninja: spot corner and edge pairs",
	Long: `F2L Pair Ninja: a cube with a solved cross is shown. Find a corner and edge
that belong to the same F2L slot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(drill.KindF2LNinja, func(g *drill.Generator, s settings.Settings) (questionSource, error) {
			fs, err := s.F2LNinjaSettings()
			if err != nil {
				return nil, err
			}
			return f2lNinjaQuestions(g, fs), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(orientCmd, edgeCmd, innerEyeCmd, zanshinCmd, f2lCmd)
}

type sourceBuilder func(*drill.Generator, settings.Settings) (questionSource, error)

// runDrill opens a session and runs the interactive quiz for one drill.
func runDrill(kind drill.Kind, build sourceBuilder) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("%s is interactive and needs a terminal", kind)
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// Log lines would tear the full-screen view, so they go to a file.
	logFile, err := os.OpenFile(logFilePath(db), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logrus.SetOutput(logFile)
	defer logrus.SetOutput(os.Stderr)

	next, err := build(newGenerator(), s)
	if err != nil {
		return err
	}

	snapshot, err := s.Section(kind)
	if err != nil {
		return err
	}
	sessions := storage.NewSessionRepository(db)
	sessionID, err := sessions.Create(string(kind), snapshot)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"drill": kind, "session": sessionID}).Info("session started")

	attempts := storage.NewAttemptRepository(db)
	model := newQuizModel(kind, next, func(a storage.Attempt) error {
		a.SessionID = sessionID
		_, err := attempts.Record(a)
		return err
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	if err := sessions.End(sessionID); err != nil {
		logrus.WithError(err).Warn("failed to end session")
	}
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	if model.err != nil {
		return model.err
	}

	fmt.Println(model.summary())
	return nil
}
