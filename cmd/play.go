package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knightpath/internal/domain"
)

var playSizeFlag int
var playMaxMovesFlag int

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive board",
		Long: `Play opens the interactive board. Select a start square, then a target;
the paths between them are listed next to the board.

Keys:
  arrows, hjkl   move the cursor
  enter, space   select the square under the cursor
  r              clear the selection
  R              restore and save the default settings
  + / -          grow or shrink the board
  ] / [          raise or lower the path length bound
  n / p          next or previous page of paths
  q              quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := overridesFromFlags(cmd, playSizeFlag, playMaxMovesFlag)
			if err != nil {
				return err
			}

			return workflow.Play(cmd.Context(), domain.PlayArgs{Overrides: overrides})
		},
	}
	addOverrideFlags(cmd, &playSizeFlag, &playMaxMovesFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}
