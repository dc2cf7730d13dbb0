package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedojo/internal/storage"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

var statsCmd = &cobra.Command{
	Use:   "stats [drill]",
	Short: "Show drill statistics",
	Long: `Show accuracy, streaks and response times for one drill, or for every drill
when none is named. Drills: orientation, edge, innereye, zanshin, f2l.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var statsResetCmd = &cobra.Command{
	Use:   "reset <drill>",
	Short: "Delete all statistics of a drill",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatsReset,
}

func init() {
	statsCmd.AddCommand(statsResetCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	kinds := drill.Kinds
	if len(args) == 1 {
		k, err := drill.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []drill.Kind{k}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)
	for i, k := range kinds {
		st, err := repo.Stats(string(k))
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printStats(cmd.OutOrStdout(), k, st)
	}
	return nil
}

func runStatsReset(cmd *cobra.Command, args []string) error {
	k, err := drill.ParseKind(args[0])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewAttemptRepository(db).Reset(string(k)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Statistics for %s reset.\n", k.DisplayName())
	return nil
}

func printStats(w io.Writer, k drill.Kind, st *storage.Stats) {
	fmt.Fprintln(w, titleStyle.Render(k.DisplayName()))
	if st.Attempts == 0 {
		fmt.Fprintln(w, statusStyle.Render("  no attempts yet"))
		return
	}

	fmt.Fprintf(w, "  Attempts:  %d\n", st.Attempts)
	fmt.Fprintf(w, "  Correct:   %d (%.1f%%)\n", st.Correct, 100*st.Accuracy())
	fmt.Fprintf(w, "  Streak:    %d (best %d)\n", st.CurrentStreak, st.BestStreak)
	fmt.Fprintf(w, "  Avg time:  %s\n", formatDuration(st.AvgResponse))
	fmt.Fprintf(w, "  Best time: %s\n", formatDuration(st.BestResponse))
	if n := len(st.RecentTimes); n > 0 {
		var total time.Duration
		for _, d := range st.RecentTimes {
			total += d
		}
		fmt.Fprintf(w, "  Last %d avg: %s\n", n, formatDuration(total/time.Duration(n)))
	}

	if len(st.Categories) > 1 || st.Categories[""].Attempts == 0 {
		names := make([]string, 0, len(st.Categories))
		for name := range st.Categories {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "  By category:")
		for _, name := range names {
			c := st.Categories[name]
			label := name
			if label == "" {
				label = "(none)"
			}
			fmt.Fprintf(w, "    %-20s %d/%d\n", label, c.Correct, c.Attempts)
		}
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
