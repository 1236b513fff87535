package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/knightpath/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text and tables on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOutcomes prints one table of paths per outcome, or a no-paths line.
func (s *SimpleUI) DisplayOutcomes(outcomes []m.Outcome) error {
	for i, out := range outcomes {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("%s\n", outcomeHeading(out))

		switch out.Status {
		case m.StatusPending:
			s.printf("Search still running\n")
			continue
		case m.StatusNoPathFound:
			s.printf("No paths found\n")
			continue
		case m.StatusFound:
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"#", "Moves", "Path"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

		for n, path := range out.Paths {
			table.Append([]string{
				fmt.Sprintf("%d", n+1),
				fmt.Sprintf("%d", path.Moves()),
				path.String(),
			})
		}

		table.SetFooter([]string{"", "Total", fmt.Sprintf("%d paths", len(out.Paths))})
		table.Render()
		s.printf("%s", tableBuffer.String())
	}

	return nil
}

// DisplayMoves prints the legal destinations from a cell.
func (s *SimpleUI) DisplayMoves(cell m.Cell, settings m.Settings, moves []m.Cell) error {
	s.printf("Knight moves from %s on a %dx%d board: %d\n",
		cell, settings.BoardSize, settings.BoardSize, len(moves))

	if len(moves) == 0 {
		return nil
	}

	names := make([]string, 0, len(moves))
	for _, mv := range moves {
		names = append(names, mv.String())
	}

	s.printf("%s\n", strings.Join(names, " "))

	return nil
}

// DisplaySettings prints the settings as a two-column table.
func (s *SimpleUI) DisplaySettings(settings m.Settings, location string) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{"ChessBoardSize", fmt.Sprintf("%d", settings.BoardSize)})
	table.Append([]string{"MaxMoves", fmt.Sprintf("%d", settings.MaxMoves)})
	table.Render()

	s.printf("%s", tableBuffer.String())

	if location != "" {
		s.printf("Stored in %s\n", location)
	}

	return nil
}

// Play is unavailable without a terminal.
func (s *SimpleUI) Play(_ Session, _ SaveSettingsFunc) error {
	return ErrNonInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// outcomeHeading describes the request behind an outcome.
func outcomeHeading(out m.Outcome) string {
	req := out.Request

	return fmt.Sprintf("Paths from %s to %s (board %dx%d, at most %d cells)",
		req.Start, req.Target, req.Dimension, req.Dimension, req.MaxDepth)
}
