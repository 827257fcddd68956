package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminalModel(t *testing.T) terminalModel {
	t.Helper()
	app := NewApp(terminalLayout, nil, newTestRenderer(t, minDiagramSize), &fakeClipboard{}, nil)
	m := newTerminalModel(app)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(terminalModel)
}

func send(t *testing.T, m terminalModel, msgs ...tea.Msg) (terminalModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(terminalModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTerminalEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want []Event
	}{
		{"click", tea.MouseMsg{X: 20, Y: 3, Type: tea.MouseLeft}, []Event{PointerPress{X: 20, Y: 3}}},
		{"release ignored", tea.MouseMsg{X: 20, Y: 3, Type: tea.MouseRelease}, nil},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Event{KeyPress{Key: KeyConfirm}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Event{KeyPress{Key: KeyBackspace}}},
		{"paste", tea.KeyMsg{Type: tea.KeyCtrlV}, []Event{KeyPress{Key: KeyPaste}}},
		{"export", tea.KeyMsg{Type: tea.KeyCtrlS}, []Event{KeyPress{Key: KeyExport}}},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlY}, []Event{KeyPress{Key: KeyCopy}}},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, []Event{Quit{}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []Event{TextInsert{Text: " "}}},
		{"runes", runes("-4"), []Event{TextInsert{Text: "-4"}}},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyLeft}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terminalEvents(tt.msg))
		})
	}
}

func TestTerminalEditing(t *testing.T) {
	m := newTestTerminalModel(t)
	h, v := terminalLayout.Horizontal, terminalLayout.Vertical

	m, _ = send(t, m,
		tea.MouseMsg{X: h.X + 2, Y: h.Y, Type: tea.MouseLeft}, runes("3"),
		tea.MouseMsg{X: v.X + 2, Y: v.Y, Type: tea.MouseLeft}, runes("4"),
		tea.KeyMsg{Type: tea.KeyEnter}, runes("9"),
	)
	assert.Equal(t, "3", m.frame.Horizontal)
	assert.Equal(t, "4", m.frame.Vertical)

	view := m.View()
	assert.Contains(t, view, "Resultant Force: 5.00")
	assert.Contains(t, view, "Angle: 53.13 degrees")
	assert.Contains(t, view, upperHalfBlock)

	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[h.Y], "Horizontal Force:")
	assert.Contains(t, lines[v.Y], "Vertical Force:")
}

func TestTerminalInvalidInput(t *testing.T) {
	m := newTestTerminalModel(t)
	h := terminalLayout.Horizontal
	m, _ = send(t, m, tea.MouseMsg{X: h.X, Y: h.Y, Type: tea.MouseLeft}, runes("abc"))

	view := m.View()
	assert.Contains(t, view, invalidInputMessage)
	assert.NotContains(t, view, upperHalfBlock)
	assert.NotContains(t, view, "Resultant Force")
}

func TestTerminalQuit(t *testing.T) {
	m := newTestTerminalModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.app.Running())
}

func TestDiagramCells(t *testing.T) {
	m := terminalModel{width: 100, height: 40}
	cols, rows := m.diagramCells()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 30, rows)

	m = terminalModel{width: 30, height: 40}
	cols, rows = m.diagramCells()
	assert.Equal(t, 30, cols)
	assert.Equal(t, 15, rows)

	m = terminalModel{width: 80, height: 12}
	cols, _ = m.diagramCells()
	assert.Zero(t, cols)
}

func TestRenderField(t *testing.T) {
	assert.Equal(t, fieldWidth, len([]rune(stripStyles(renderField("12", false)))))
	long := strings.Repeat("9", 40)
	assert.Contains(t, renderField(long, true), strings.Repeat("9", fieldWidth-2))
}

func stripStyles(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	out := renderHalfBlocks(img, 4, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 4, strings.Count(line, upperHalfBlock))
	}
	assert.Empty(t, renderHalfBlocks(nil, 4, 2))
	assert.Empty(t, renderHalfBlocks(img, 0, 2))
	assert.Equal(t, "#ff0000", hexColor(color.RGBA{255, 0, 0, 255}))
}
