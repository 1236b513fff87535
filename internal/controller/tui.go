package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/knightpath/internal/model"
)

// TUI implements UI using lipgloss styled output and a Bubble Tea board.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayOutcomes prints each outcome with its paths numbered.
func (t *TUI) DisplayOutcomes(outcomes []m.Outcome) error {
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder

	for i, out := range outcomes {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(headingStyle.Render("♞ "+outcomeHeading(out)) + "\n")

		switch out.Status {
		case m.StatusPending:
			b.WriteString(summaryStyle.Render("Search still running") + "\n")
		case m.StatusNoPathFound:
			b.WriteString(warnStyle.Render("No paths found") + "\n")
		case m.StatusFound:
			for n, p := range out.Paths {
				b.WriteString(fmt.Sprintf("%s  %s\n",
					countStyle.Render(fmt.Sprintf("%d.", n+1)),
					pathStyle.Render(p.String())))
			}

			b.WriteString(summaryStyle.Render(fmt.Sprintf("%d paths", len(out.Paths))) + "\n")
		}
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayMoves draws the board with the cell and its destinations marked.
func (t *TUI) DisplayMoves(cell m.Cell, settings m.Settings, moves []m.Cell) error {
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	names := make([]string, 0, len(moves))
	marks := make(map[m.Cell]string, len(moves))

	for _, mv := range moves {
		names = append(names, mv.String())
		marks[mv] = "•"
	}

	start := cell
	board := renderBoard(settings.BoardSize, m.NewCell(-1, -1), m.Selection{Start: &start}, marks)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n%s\n",
		headingStyle.Render(fmt.Sprintf("♞ %d knight moves from %s", len(moves), cell)),
		board,
		strings.Join(names, " "))

	return err
}

// DisplaySettings prints the effective settings.
func (t *TUI) DisplaySettings(settings m.Settings, location string) error {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	lines := []string{
		keyStyle.Render("ChessBoardSize") + valueStyle.Render(fmt.Sprintf("%d", settings.BoardSize)),
		keyStyle.Render("MaxMoves") + valueStyle.Render(fmt.Sprintf("%d", settings.MaxMoves)),
	}

	if location != "" {
		lines = append(lines, keyStyle.Render("Stored in")+location)
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// Play runs the interactive board until the user quits.
func (t *TUI) Play(session Session, save SaveSettingsFunc) error {
	model := newBoardModel(session, save)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			model.resizeList()
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
