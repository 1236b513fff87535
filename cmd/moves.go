package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knightpath/internal/domain"
	m "github.com/mouse-blink/knightpath/internal/model"
)

var movesSizeFlag int

// movesCmd represents the moves command.
var movesCmd = newMovesCmd()

func newMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves CELL",
		Short: "List the knight moves from a square",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := overridesFromFlags(cmd, movesSizeFlag, 0)
			if err != nil {
				return err
			}

			cell, err := m.ParseCell(args[0])
			if err != nil {
				return err
			}

			return workflow.Moves(domain.MovesArgs{Overrides: overrides, Cell: cell})
		},
	}
	cmd.Flags().IntVarP(&movesSizeFlag, "size", "s", 0, "board dimension for this run (6-16)")

	return cmd
}

func init() {
	rootCmd.AddCommand(movesCmd)
}
