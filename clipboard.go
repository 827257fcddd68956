package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	text, err := clipboard.ReadAll()
	return text, errors.Wrap(err, "read clipboard")
}

func (systemClipboard) WriteAll(text string) error {
	return errors.Wrap(clipboard.WriteAll(text), "write clipboard")
}

// cleanClipboardText keeps only what can live on a single-line field.
func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\t' {
			r = ' '
		}
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func (a *App) paste(field *TextField) {
	if a.clipboard == nil {
		return
	}
	text, err := a.clipboard.ReadAll()
	if err != nil {
		a.logger.Warn("paste failed", zap.Error(err))
		a.setStatus("Clipboard unavailable")
		return
	}
	field.Text += cleanClipboardText(text)
}

func (a *App) copyResult() {
	sample, err := a.sample()
	if err != nil {
		a.setStatus(invalidInputMessage)
		return
	}
	if a.clipboard == nil {
		return
	}
	result := Resolve(sample.Horizontal, sample.Vertical)
	if err := a.clipboard.WriteAll(result.String()); err != nil {
		a.logger.Warn("copy failed", zap.Error(err))
		a.setStatus("Clipboard unavailable")
		return
	}
	a.setStatus("Copied result to clipboard")
}
