package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/knightpath/internal/model"
)

const cellWidth = 3

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("250")).Foreground(lipgloss.Color("0"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15"))
	startSquare = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Bold(true)
	goalSquare  = lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Bold(true)
	pathSquare  = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// pathDelegate renders one path per line in the result list.
type pathDelegate struct{}

func (d pathDelegate) Height() int  { return 1 }
func (d pathDelegate) Spacing() int { return 0 }
func (d pathDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d pathDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	p, ok := item.(pathItem)
	if !ok {
		return
	}

	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(4).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		numberStyle = numberStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		pathStyle = pathStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	}

	line := fmt.Sprintf("%s  %s",
		numberStyle.Render(fmt.Sprintf("%d.", p.index+1)),
		pathStyle.Render(truncateToWidth(p.path.String(), lm.Width()-6)),
	)
	_, _ = fmt.Fprint(w, line)
}

// boardModel is the interactive board: pick a start and a target, see paths.
type boardModel struct {
	session  Session
	save     SaveSettingsFunc
	cursor   m.Cell
	width    int
	height   int
	spinner  spinner.Model
	paths    list.Model
	outcome  *m.Outcome
	notice   string
	err      error
	quitting bool
}

func newBoardModel(session Session, save SaveSettingsFunc) boardModel {
	pathList := list.New([]list.Item{}, pathDelegate{}, 48, 10)
	pathList.SetShowPagination(true)
	pathList.SetShowFilter(false)
	pathList.SetFilteringEnabled(false)
	pathList.SetShowHelp(false)
	pathList.SetShowTitle(false)
	pathList.SetShowStatusBar(false)

	return boardModel{
		session: session,
		save:    save,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		paths:   pathList,
	}
}

func (bm boardModel) Init() tea.Cmd {
	return waitForOutcome(bm.session.Outcomes(), bm.session.Done())
}

func (bm boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.resizeList()

		return bm, nil

	case spinner.TickMsg:
		// The spinner stops ticking while idle; selectCursor restarts it.
		if !bm.session.Searching() {
			return bm, nil
		}

		var cmd tea.Cmd

		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd

	case outcomeMsg:
		return bm.handleOutcome(msg.outcome), waitForOutcome(bm.session.Outcomes(), bm.session.Done())

	case settingsSavedMsg:
		if msg.err != nil {
			bm.err = fmt.Errorf("saving settings: %w", msg.err)
		}

		return bm, nil

	case tea.KeyMsg:
		return bm.handleKeyPress(msg)
	}

	return bm, nil
}

// handleOutcome applies an outcome unless a newer selection superseded it.
func (bm boardModel) handleOutcome(out m.Outcome) boardModel {
	if out.Generation != bm.session.Generation() {
		return bm
	}

	bm.outcome = &out

	items := make([]list.Item, 0, len(out.Paths))
	for i, p := range out.Paths {
		items = append(items, pathItem{index: i, path: p})
	}

	bm.paths.SetItems(items)
	bm.paths.Select(0)

	return bm
}

//nolint:cyclop // Key handling requires multiple cases for board navigation
func (bm boardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	settings := bm.session.Settings()
	last := settings.BoardSize - 1

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		bm.quitting = true
		return bm, tea.Quit

	case "up", "k":
		bm.cursor.Row = min(bm.cursor.Row+1, last)
	case "down", "j":
		bm.cursor.Row = max(bm.cursor.Row-1, 0)
	case "right", "l":
		bm.cursor.Col = min(bm.cursor.Col+1, last)
	case "left", "h":
		bm.cursor.Col = max(bm.cursor.Col-1, 0)

	case "enter", " ":
		return bm.selectCursor()

	case "r":
		bm.session.Reset()
		bm = bm.clearOutcome()
		bm.notice = "Selection cleared"

	case "R":
		return bm.configure(m.DefaultSettings())
	case "+", "=":
		return bm.configure(settings.WithBoardSize(settings.BoardSize + 1))
	case "-", "_":
		return bm.configure(settings.WithBoardSize(settings.BoardSize - 1))
	case "]":
		return bm.configure(settings.WithMaxMoves(settings.MaxMoves + 1))
	case "[":
		return bm.configure(settings.WithMaxMoves(settings.MaxMoves - 1))

	case "pgup", "pgdown", "n", "p":
		var cmd tea.Cmd

		bm.paths, cmd = bm.paths.Update(pageKey(msg))

		return bm, cmd
	}

	return bm, nil
}

// pageKey maps n/p onto the list's paging keys.
func pageKey(msg tea.KeyMsg) tea.KeyMsg {
	switch msg.String() {
	case "n":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "p":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	default:
		return msg
	}
}

func (bm boardModel) selectCursor() (boardModel, tea.Cmd) {
	bm.err = nil
	bm.notice = ""

	if err := bm.session.Select(bm.cursor); err != nil {
		bm.err = err
		return bm, nil
	}

	bm = bm.clearOutcome()

	sel := bm.session.Selection()
	if !sel.Complete() {
		return bm, nil
	}

	pending := m.PendingOutcome(m.NewRequest(bm.session.Settings(), *sel.Start, *sel.Target))
	bm.outcome = &pending

	if !bm.session.Searching() {
		return bm, nil
	}

	return bm, bm.spinner.Tick
}

func (bm boardModel) configure(settings m.Settings) (tea.Model, tea.Cmd) {
	bm.err = nil

	if err := bm.session.Configure(settings); err != nil {
		bm.err = err
		return bm, nil
	}

	last := settings.BoardSize - 1
	bm.cursor = m.NewCell(min(bm.cursor.Col, last), min(bm.cursor.Row, last))
	bm = bm.clearOutcome()
	bm.notice = fmt.Sprintf("Board %dx%d, at most %d cells per path",
		settings.BoardSize, settings.BoardSize, settings.MaxMoves)

	return bm, saveSettings(bm.save, settings)
}

func (bm boardModel) clearOutcome() boardModel {
	bm.outcome = nil
	bm.paths.SetItems([]list.Item{})

	return bm
}

func (bm *boardModel) resizeList() {
	boardWidth := (bm.session.Settings().BoardSize + 1) * cellWidth
	listWidth := max(bm.width-boardWidth-6, 24)
	listHeight := max(bm.height-8, 5)

	bm.paths.SetSize(listWidth, listHeight)
}

// highlighted returns the path currently selected in the result list.
func (bm boardModel) highlighted() m.Path {
	if bm.outcome == nil || !bm.outcome.Found() {
		return nil
	}

	item, ok := bm.paths.SelectedItem().(pathItem)
	if !ok {
		return nil
	}

	return item.path
}

func (bm boardModel) View() string {
	if bm.quitting {
		return ""
	}

	settings := bm.session.Settings()
	sel := bm.session.Selection()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	title := titleStyle.Render(fmt.Sprintf("♞ Knight Paths  %dx%d board, at most %d cells",
		settings.BoardSize, settings.BoardSize, settings.MaxMoves))

	board := lipgloss.NewStyle().Margin(1, 2).Render(
		renderBoard(settings.BoardSize, bm.cursor, sel, stepMarks(bm.highlighted())))

	panel := lipgloss.NewStyle().Margin(1, 1).Render(bm.renderPanel(sel))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 2)

	footer := footerStyle.Render(
		"←↓↑→/hjkl move • enter select • r reset • R defaults • +/- size • [/] moves • n/p page • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, board, panel),
		footer,
	)
}

func (bm boardModel) renderPanel(sel m.Selection) string {
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	lines := []string{infoStyle.Render(selectionInfo(sel))}

	if bm.notice != "" {
		lines = append(lines, labelStyle.Render(bm.notice))
	}

	if bm.err != nil {
		lines = append(lines, warn.Render(bm.err.Error()))
	}

	if bm.outcome != nil {
		switch bm.outcome.Status {
		case m.StatusPending:
			lines = append(lines, bm.spinner.View()+" Searching…")
		case m.StatusNoPathFound:
			lines = append(lines, warn.Render("No paths found"))
		case m.StatusFound:
			lines = append(lines,
				accent.Render(fmt.Sprintf("%d paths", len(bm.outcome.Paths))),
				bm.paths.View())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// selectionInfo tells the user what to pick next.
func selectionInfo(sel m.Selection) string {
	switch {
	case sel.Start == nil:
		return "Select the starting position"
	case sel.Target == nil:
		return fmt.Sprintf("Start %s. Select the target position", sel.Start)
	default:
		return fmt.Sprintf("Start %s, target %s", sel.Start, sel.Target)
	}
}

// renderBoard draws the board with rank 1 at the bottom. The start, target,
// marked squares and cursor are highlighted.
func renderBoard(dimension int, cursor m.Cell, sel m.Selection, marks map[m.Cell]string) string {
	var b strings.Builder

	for row := dimension - 1; row >= 0; row-- {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%2d ", row+1)))

		for col := 0; col < dimension; col++ {
			b.WriteString(renderSquare(m.NewCell(col, row), cursor, sel, marks))
		}

		b.WriteString("\n")
	}

	b.WriteString("   ")

	for col := 0; col < dimension; col++ {
		b.WriteString(labelStyle.Render(fmt.Sprintf(" %s ", m.File(col))))
	}

	return b.String()
}

func renderSquare(c, cursor m.Cell, sel m.Selection, marks map[m.Cell]string) string {
	style := darkSquare
	if (c.Col+c.Row)%2 == 1 {
		style = lightSquare
	}

	mark := " "

	if label, ok := marks[c]; ok {
		style = pathSquare
		mark = label
	}

	switch {
	case sel.Start != nil && *sel.Start == c:
		style = startSquare
		mark = "♞"
	case sel.Target != nil && *sel.Target == c:
		style = goalSquare
		mark = "◎"
	}

	if c == cursor {
		return style.Render("[" + mark + "]")
	}

	return style.Render(" " + mark + " ")
}

// stepMarks labels each cell of p with its move number.
func stepMarks(p m.Path) map[m.Cell]string {
	marks := make(map[m.Cell]string, len(p))
	for i, c := range p {
		marks[c] = fmt.Sprintf("%d", i)
	}

	return marks
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
