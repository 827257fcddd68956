package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldColumn  = 18
	fieldWidth   = 20
	diagramRow   = 9
	helpText     = "click a field to edit · enter confirm · ctrl+v paste · ctrl+s save png · ctrl+y copy · ctrl+c quit"
	minDiagramPx = 8
)

// Cell layout of the terminal frontend; rows are counted from the top of
// the view.
var terminalLayout = Layout{
	Horizontal: Rect{X: fieldColumn, Y: 2, W: fieldWidth, H: 1},
	Vertical:   Rect{X: fieldColumn, Y: 3, W: fieldWidth, H: 1},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(fieldColumn)
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type terminalModel struct {
	app    *App
	frame  Frame
	width  int
	height int
}

func newTerminalModel(app *App) terminalModel {
	return terminalModel{app: app, frame: app.Frame(), width: 80, height: 24}
}

func (m terminalModel) Init() tea.Cmd {
	return nil
}

func (m terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg, tea.MouseMsg:
		events := terminalEvents(msg)
		if len(events) == 0 {
			return m, nil
		}
		m.frame = m.app.Step(events...)
		if !m.app.Running() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func terminalEvents(msg tea.Msg) []Event {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Type == tea.MouseLeft {
			return []Event{PointerPress{X: msg.X, Y: msg.Y}}
		}
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return []Event{Quit{}}
		case tea.KeyEnter:
			return []Event{KeyPress{Key: KeyConfirm}}
		case tea.KeyBackspace:
			return []Event{KeyPress{Key: KeyBackspace}}
		case tea.KeyCtrlV:
			return []Event{KeyPress{Key: KeyPaste}}
		case tea.KeyCtrlS:
			return []Event{KeyPress{Key: KeyExport}}
		case tea.KeyCtrlY:
			return []Event{KeyPress{Key: KeyCopy}}
		case tea.KeySpace:
			return []Event{TextInsert{Text: " "}}
		case tea.KeyRunes:
			return []Event{TextInsert{Text: string(msg.Runes)}}
		}
	}
	return nil
}

func (m terminalModel) View() string {
	f := m.frame
	lines := []string{
		titleStyle.Render(windowTitle),
		"",
		labelStyle.Render("Horizontal Force:") + renderField(f.Horizontal, f.Focus == FocusHorizontal),
		labelStyle.Render("Vertical Force:") + renderField(f.Vertical, f.Focus == FocusVertical),
		"",
	}
	if f.Result != nil {
		lines = append(lines, f.Result.MagnitudeText(), f.Result.AngleText())
	} else {
		lines = append(lines, errorStyle.Render(f.Message), "")
	}
	lines = append(lines, statusStyle.Render(f.Status), "")

	if cols, rows := m.diagramCells(); f.Diagram != nil && cols > 0 {
		lines = append(lines, renderHalfBlocks(f.Diagram, cols, rows))
	}
	lines = append(lines, helpStyle.Render(helpText))
	return strings.Join(lines, "\n")
}

// diagramCells sizes the diagram to the space left between the text rows
// and the help line. Half-block pixels are square, so cols == 2*rows.
func (m terminalModel) diagramCells() (cols, rows int) {
	side := min(m.width, 2*(m.height-diagramRow-1))
	if side < minDiagramPx {
		return 0, 0
	}
	return side - side%2, side / 2
}

func renderField(content string, focused bool) string {
	inner := fieldWidth - 2
	runes := []rune(content)
	if len(runes) > inner {
		runes = runes[len(runes)-inner:]
	}
	text := string(runes) + strings.Repeat(" ", inner-len(runes))
	style := fieldStyle
	if focused {
		style = focusStyle
	}
	return "[" + style.Render(text) + "]"
}
