package main

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

func NewApp(layout Layout, config *Config, renderer *Renderer, cb Clipboard, logger *zap.Logger) *App {
	if config == nil {
		config = defaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		horizontal: TextField{Region: layout.Horizontal},
		vertical:   TextField{Region: layout.Vertical},
		focus:      FocusNone,
		running:    true,
		config:     config,
		renderer:   renderer,
		clipboard:  cb,
		logger:     logger,
	}
}

func (a *App) Running() bool {
	return a.running
}

func (a *App) Focus() Focus {
	return a.focus
}

func (a *App) Horizontal() TextField {
	return a.horizontal
}

func (a *App) Vertical() TextField {
	return a.vertical
}

// Focused reports whether field f is the one accepting keystrokes.
func (a *App) Focused(f Focus) bool {
	return f != FocusNone && a.focus == f
}

// Apply consumes one frame's worth of events in the order they occurred.
func (a *App) Apply(events ...Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case PointerPress:
			a.handlePointer(ev.X, ev.Y)
		case KeyPress:
			a.handleKey(ev.Key)
		case TextInsert:
			a.insertText(ev.Text)
		case Quit:
			a.logger.Debug("quit requested")
			a.running = false
		}
	}
}

func (a *App) handlePointer(x, y int) {
	switch {
	case a.horizontal.Region.Contains(x, y):
		a.focus = FocusHorizontal
	case a.vertical.Region.Contains(x, y):
		a.focus = FocusVertical
	default:
		a.focus = FocusNone
	}
}

func (a *App) handleKey(key Key) {
	switch key {
	case KeyExport:
		a.exportDiagram()
		return
	case KeyCopy:
		a.copyResult()
		return
	}

	field := a.focusedField()
	if field == nil {
		return
	}
	switch key {
	case KeyConfirm:
		a.focus = FocusNone
	case KeyBackspace:
		if field.Text != "" {
			_, size := utf8.DecodeLastRuneInString(field.Text)
			field.Text = field.Text[:len(field.Text)-size]
		}
	case KeyPaste:
		a.paste(field)
	}
}

func (a *App) insertText(text string) {
	field := a.focusedField()
	if field == nil {
		return
	}
	field.Text += text
}

func (a *App) focusedField() *TextField {
	switch a.focus {
	case FocusHorizontal:
		return &a.horizontal
	case FocusVertical:
		return &a.vertical
	}
	return nil
}
