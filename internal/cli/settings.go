package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedojo/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change drill settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings file",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the settings file.

Keys:
  ` + strings.Join(settings.Keys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	path, err := getSettingsPath()
	if err != nil {
		return err
	}
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	data, err := s.YAML()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), statusStyle.Render("# "+path))
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	path, err := getSettingsPath()
	if err != nil {
		return err
	}
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	if err := s.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := settings.Save(path, s); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}
