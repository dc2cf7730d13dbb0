// Package cli implements the command-line interface for cubedojo.
package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedojo/internal/settings"
	"github.com/SeamusWaldron/cubedojo/internal/storage"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath       string
	settingsPath string
	seed         uint64
	verbose      bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubedojo",
	Short: "Rubik's cube recognition trainer",
	Long: `cubedojo - drills for the recognition skills behind fast cube solving.

Practice color orientation, edge orientation (Edge Kata), F2L pair deduction
(Inner Eye), short-term recall of a flashed cube (Zanshin Recall) and F2L pair
spotting (F2L Pair Ninja). Every graded answer is kept in a local statistics
database.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubedojo/cubedojo.db)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file path (default: ~/.cubedojo/settings.yaml)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for reproducible rounds (0 picks a random seed)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func configureLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// openDB opens the statistics database from the flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}

// getSettingsPath returns the settings path from flag or default.
func getSettingsPath() (string, error) {
	if settingsPath != "" {
		return settingsPath, nil
	}
	return settings.DefaultPath()
}

func loadSettings() (settings.Settings, error) {
	path, err := getSettingsPath()
	if err != nil {
		return settings.Settings{}, err
	}
	return settings.Load(path)
}

func newGenerator() *drill.Generator {
	opts := []drill.Option{drill.WithLogger(logrus.StandardLogger())}
	if seed != 0 {
		opts = append(opts, drill.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return drill.New(opts...)
}

// logFilePath is where logs go while a full-screen drill owns the terminal.
func logFilePath(db *storage.DB) string {
	return filepath.Join(filepath.Dir(db.Path()), "cubedojo.log")
}
