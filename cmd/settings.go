package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/knightpath/internal/domain"
)

var errNothingToSet = errors.New("knightpath: set at least one of --size or --max-moves")

var settingsSizeFlag int
var settingsMaxMovesFlag int

// settingsCmd represents the settings command.
var settingsCmd = newSettingsCmd()

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the persisted settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ShowSettings()
		},
	}
	cmd.AddCommand(newSettingsSetCmd(), newSettingsResetCmd())

	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change and save the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("size") && !cmd.Flags().Changed("max-moves") {
				return errNothingToSet
			}

			overrides, err := overridesFromFlags(cmd, settingsSizeFlag, settingsMaxMovesFlag)
			if err != nil {
				return err
			}

			return workflow.UpdateSettings(domain.SettingsArgs{Overrides: overrides})
		},
	}
	cmd.Flags().IntVarP(&settingsSizeFlag, "size", "s", 0, "board dimension (6-16)")
	cmd.Flags().IntVarP(&settingsMaxMovesFlag, "max-moves", "m", 0, "maximum cells in a path (1-5)")

	return cmd
}

func newSettingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore and save the default settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ResetSettings()
		},
	}
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
