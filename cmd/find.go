package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knightpath/internal/domain"
)

var findParallelFlag int
var findSizeFlag int
var findMaxMovesFlag int

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find START TARGET...",
		Short: "Print the knight paths from a start square to each target",
		Long: `Find prints every simple knight path from START to each TARGET that has at
most MaxMoves cells, shortest first. Each target is searched independently.

Examples:
  knightpath find a1 c2
  knightpath find a1 d4 f6 --max-moves 5 --parallel 2
  knightpath find 0,0 3,3 --size 8`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := overridesFromFlags(cmd, findSizeFlag, findMaxMovesFlag)
			if err != nil {
				return err
			}

			cells, err := parseCells(args)
			if err != nil {
				return err
			}

			return workflow.Find(cmd.Context(), domain.FindArgs{
				Overrides: overrides,
				Start:     cells[0],
				Targets:   cells[1:],
				Parallel:  findParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&findParallelFlag, "parallel", "p", 1, "number of targets searched concurrently")
	addOverrideFlags(cmd, &findSizeFlag, &findMaxMovesFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(findCmd)
}
